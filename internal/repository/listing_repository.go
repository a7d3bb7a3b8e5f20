package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/atta-hamamah/MemberShift/internal/model"
	"github.com/atta-hamamah/MemberShift/internal/service"
)

const listingColumns = `id, owner_id, type, category, title, description, condition, price,
	start_date, end_date, contact_info, country, state, city, address_details,
	created_at, updated_at`

type ListingRepository struct {
	DB *sqlx.DB
}

func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{DB: db}
}

// listingRow is the flat database image of a listing. The location
// columns are nullable; they are NULL exactly when the listing is Online.
type listingRow struct {
	ID             string         `db:"id"`
	OwnerID        string         `db:"owner_id"`
	Type           string         `db:"type"`
	Category       string         `db:"category"`
	Title          string         `db:"title"`
	Description    string         `db:"description"`
	Condition      string         `db:"condition"`
	Price          float64        `db:"price"`
	StartDate      *time.Time     `db:"start_date"`
	EndDate        *time.Time     `db:"end_date"`
	ContactInfo    string         `db:"contact_info"`
	Country        sql.NullString `db:"country"`
	State          sql.NullString `db:"state"`
	City           sql.NullString `db:"city"`
	AddressDetails sql.NullString `db:"address_details"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func toRow(l *model.Listing) listingRow {
	row := listingRow{
		ID:          l.ID,
		OwnerID:     l.OwnerID,
		Type:        l.Type,
		Category:    l.Category,
		Title:       l.Title,
		Description: l.Description,
		Condition:   l.Condition,
		Price:       l.Price,
		StartDate:   l.StartDate,
		EndDate:     l.EndDate,
		ContactInfo: l.ContactInfo,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
	if loc := l.Location; loc != nil {
		row.Country = sql.NullString{String: loc.Country, Valid: true}
		row.State = sql.NullString{String: loc.State, Valid: true}
		row.City = sql.NullString{String: loc.City, Valid: true}
		row.AddressDetails = sql.NullString{String: loc.AddressDetails, Valid: true}
	}
	return row
}

func (row listingRow) toModel() model.Listing {
	l := model.Listing{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Type:        row.Type,
		Category:    row.Category,
		Title:       row.Title,
		Description: row.Description,
		Condition:   row.Condition,
		Price:       row.Price,
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		ContactInfo: row.ContactInfo,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.Type == model.TypePhysical {
		l.Location = &model.Location{
			Country:        row.Country.String,
			State:          row.State.String,
			City:           row.City.String,
			AddressDetails: row.AddressDetails.String,
		}
	}
	return l
}

// Создать объявление
func (r *ListingRepository) Insert(ctx context.Context, l *model.Listing) error {
	row := toRow(l)
	_, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO listings
            (id, owner_id, type, category, title, description, condition, price,
             start_date, end_date, contact_info, country, state, city, address_details,
             created_at, updated_at)
        VALUES
            (:id, :owner_id, :type, :category, :title, :description, :condition, :price,
             :start_date, :end_date, :contact_info, :country, :state, :city, :address_details,
             :created_at, :updated_at)
    `, row)
	if err != nil {
		return fmt.Errorf("ListingRepository.Insert: %w", err)
	}
	return nil
}

// Обновить объявление
func (r *ListingRepository) Update(ctx context.Context, id string, l *model.Listing) error {
	row := toRow(l)
	row.ID = id
	res, err := r.DB.NamedExecContext(ctx, `
        UPDATE listings SET
            type            = :type,
            category        = :category,
            title           = :title,
            description     = :description,
            condition       = :condition,
            price           = :price,
            start_date      = :start_date,
            end_date        = :end_date,
            contact_info    = :contact_info,
            country         = :country,
            state           = :state,
            city            = :city,
            address_details = :address_details,
            updated_at      = :updated_at
        WHERE id = :id
    `, row)
	if err != nil {
		return fmt.Errorf("ListingRepository.Update: %w", err)
	}
	return requireRow(res)
}

// Удалить объявление
func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ListingRepository.Delete: %w", err)
	}
	return requireRow(res)
}

// GetOwner returns the owner_id of a listing, or ErrNotFound.
func (r *ListingRepository) GetOwner(ctx context.Context, id string) (string, error) {
	var owner string
	err := r.DB.GetContext(ctx, &owner, `SELECT owner_id FROM listings WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", service.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("ListingRepository.GetOwner: %w", err)
	}
	return owner, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	var row listingRow
	err := r.DB.GetContext(ctx, &row, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.GetByID: %w", err)
	}
	l := row.toModel()
	return &l, nil
}

// Search runs the filter predicates, newest first, capped at 20 rows.
func (r *ListingRepository) Search(ctx context.Context, f model.SearchFilter) ([]model.Listing, error) {
	query, args := renderSearchQuery(BuildPredicates(f))

	var rows []listingRow
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("ListingRepository.Search: %w", err)
	}
	listings := make([]model.Listing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, row.toModel())
	}
	return listings, nil
}

// FindByOwner returns every listing posted by one identity, newest first.
func (r *ListingRepository) FindByOwner(ctx context.Context, ownerID string) ([]model.Listing, error) {
	var rows []listingRow
	err := r.DB.SelectContext(ctx, &rows, `
		SELECT `+listingColumns+` FROM listings
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.FindByOwner: %w", err)
	}
	listings := make([]model.Listing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, row.toModel())
	}
	return listings, nil
}

// requireRow maps "no rows affected" to ErrNotFound so a write racing a
// concurrent delete fails cleanly instead of succeeding silently.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return service.ErrNotFound
	}
	return nil
}
