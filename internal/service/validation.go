package service

import (
	"fmt"
	"math"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/atta-hamamah/MemberShift/internal/model"
)

const dateLayout = "2006-01-02"

// ValidateSubmission normalizes and validates a raw submission.
// Normalization runs first: an Online submission has its location fields
// cleared no matter what was posted. Validation then collects every
// violation instead of stopping at the first one.
func ValidateSubmission(sub model.Submission) (*model.Listing, *ValidationError) {
	// Clear location fields if type is Online, before validating anything.
	if sub.Type == model.TypeOnline {
		sub.Country = ""
		sub.State = ""
		sub.City = ""
		sub.AddressDetails = ""
	}

	fields := FieldErrors{}

	if sub.Type != model.TypeOnline && sub.Type != model.TypePhysical {
		fields.add("type", "type must be Online or Physical")
	}

	if sub.Category == "" {
		fields.add("category", "category is required")
	} else if !knownCategory(sub.Category) {
		fields.add("category", "unknown category: "+sub.Category)
	}

	if n := utf8.RuneCountInString(sub.Title); n < 1 || n > 100 {
		fields.add("title", "title must be between 1 and 100 characters")
	}

	if utf8.RuneCountInString(sub.Description) > 500 {
		fields.add("description", "description must be at most 500 characters")
	}

	if sub.Condition != model.ConditionNew && sub.Condition != model.ConditionPartiallyUsed {
		fields.add("condition", `condition must be "New" or "Partially Used"`)
	}

	price, priceErr := parsePrice(sub.Price)
	if priceErr != "" {
		fields.add("price", priceErr)
	}

	if n := utf8.RuneCountInString(sub.ContactInfo); n < 1 || n > 200 {
		fields.add("contact_info", "contact info must be between 1 and 200 characters")
	}

	startDate := parseDate(sub.StartDate, "start_date", fields)
	endDate := parseDate(sub.EndDate, "end_date", fields)

	if sub.Type == model.TypePhysical {
		for _, loc := range []struct{ name, val string }{
			{"country", sub.Country},
			{"state", sub.State},
			{"city", sub.City},
		} {
			if loc.val == "" {
				fields.add(loc.name, loc.name+" is required for physical listings")
			}
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	l := &model.Listing{
		Type:        sub.Type,
		Category:    sub.Category,
		Title:       sub.Title,
		Description: sub.Description,
		Condition:   sub.Condition,
		Price:       price,
		StartDate:   startDate,
		EndDate:     endDate,
		ContactInfo: sub.ContactInfo,
	}
	if sub.Type == model.TypePhysical {
		l.Location = &model.Location{
			Country:        sub.Country,
			State:          sub.State,
			City:           sub.City,
			AddressDetails: sub.AddressDetails,
		}
	}
	return l, nil
}

func knownCategory(c string) bool {
	for _, known := range model.Categories {
		if c == known {
			return true
		}
	}
	return false
}

func parsePrice(raw string) (float64, string) {
	if raw == "" {
		return 0, "price is required"
	}
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Sprintf("price %q is not a number", raw)
	}
	if p < 0 {
		return 0, "price must not be negative"
	}
	return p, ""
}

// parseDate parses an optional YYYY-MM-DD value, recording a field error
// on failure. Empty input yields nil.
func parseDate(raw, field string, fields FieldErrors) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		fields.add(field, field+" must be a date in YYYY-MM-DD format")
		return nil
	}
	return &t
}
