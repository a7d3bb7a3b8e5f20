package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/atta-hamamah/MemberShift/internal/model"
)

// Store is the persistence collaborator. Implementations return
// ErrNotFound when the targeted listing does not exist; any other error
// is treated as an infrastructure failure.
type Store interface {
	Insert(ctx context.Context, l *model.Listing) error
	Update(ctx context.Context, id string, l *model.Listing) error
	Delete(ctx context.Context, id string) error
	GetOwner(ctx context.Context, id string) (string, error)
	GetByID(ctx context.Context, id string) (*model.Listing, error)
	Search(ctx context.Context, f model.SearchFilter) ([]model.Listing, error)
	FindByOwner(ctx context.Context, ownerID string) ([]model.Listing, error)
}

// Invalidator receives view-invalidation signals after a successful
// mutation. It is fire-and-forget: failures must not affect the result.
type Invalidator interface {
	Invalidate(paths ...string)
}

// ListingService orchestrates create/update/delete of listings:
// authorization, then validation, then persistence, then invalidation.
type ListingService struct {
	store Store
	views Invalidator
	now   func() time.Time
}

// NewListingService constructs a ListingService. views may be nil, in
// which case invalidation signals are dropped.
func NewListingService(store Store, views Invalidator) *ListingService {
	return &ListingService{
		store: store,
		views: views,
		now:   time.Now,
	}
}

// Create validates a submission and persists a new listing owned by
// identity. It returns the new listing's ID.
func (s *ListingService) Create(ctx context.Context, identity string, sub model.Submission) (string, error) {
	if denied := AuthorizeCreate(identity); denied != nil {
		return "", denied
	}

	l, verr := ValidateSubmission(sub)
	if verr != nil {
		return "", verr
	}

	now := s.now().UTC()
	l.ID = uuid.NewString()
	l.OwnerID = identity
	l.CreatedAt = now
	l.UpdatedAt = now

	if err := s.store.Insert(ctx, l); err != nil {
		return "", infraErr("ListingService.Create: insert", err)
	}

	s.invalidate("/", "/listing/"+l.ID)
	return l.ID, nil
}

// Update replaces the mutable fields of an existing listing. Only the
// owner may update; ownership is checked before the submission is
// validated so validation detail never reaches unauthorized callers.
func (s *ListingService) Update(ctx context.Context, identity, id string, sub model.Submission) error {
	owner, err := s.store.GetOwner(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return infraErr("ListingService.Update: get owner", err)
	}

	if denied := AuthorizeOwner(identity, owner); denied != nil {
		return denied
	}

	l, verr := ValidateSubmission(sub)
	if verr != nil {
		return verr
	}
	l.UpdatedAt = s.now().UTC()

	if err := s.store.Update(ctx, id, l); err != nil {
		if errors.Is(err, ErrNotFound) {
			// Removed between the owner read and the write.
			return ErrNotFound
		}
		return infraErr("ListingService.Update: update", err)
	}

	s.invalidate("/my-listings", "/listing/"+id, "/listing/"+id+"/edit")
	return nil
}

// Delete removes a listing permanently. Only the owner may delete.
func (s *ListingService) Delete(ctx context.Context, identity, id string) error {
	owner, err := s.store.GetOwner(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return infraErr("ListingService.Delete: get owner", err)
	}

	if denied := AuthorizeOwner(identity, owner); denied != nil {
		return denied
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return infraErr("ListingService.Delete: delete", err)
	}

	s.invalidate("/", "/my-listings")
	return nil
}

// Get fetches one listing by ID.
func (s *ListingService) Get(ctx context.Context, id string) (*model.Listing, error) {
	l, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, infraErr("ListingService.Get: get by id", err)
	}
	return l, nil
}

// Search returns listings matching the filter, newest first.
func (s *ListingService) Search(ctx context.Context, f model.SearchFilter) ([]model.Listing, error) {
	listings, err := s.store.Search(ctx, f)
	if err != nil {
		return nil, infraErr("ListingService.Search: search", err)
	}
	return listings, nil
}

// MyListings returns every listing owned by the current identity.
func (s *ListingService) MyListings(ctx context.Context, identity string) ([]model.Listing, error) {
	if identity == "" {
		return nil, &AuthorizationError{Reason: DenyUnauthenticated}
	}
	listings, err := s.store.FindByOwner(ctx, identity)
	if err != nil {
		return nil, infraErr("ListingService.MyListings: find by owner", err)
	}
	return listings, nil
}

func (s *ListingService) invalidate(paths ...string) {
	if s.views == nil {
		return
	}
	s.views.Invalidate(paths...)
}
