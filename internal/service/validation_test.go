package service

import (
	"strings"
	"testing"

	"github.com/atta-hamamah/MemberShift/internal/model"
)

func validOnlineSubmission() model.Submission {
	return model.Submission{
		Type:        model.TypeOnline,
		Category:    "Gym",
		Title:       "A",
		Condition:   model.ConditionNew,
		Price:       "10",
		ContactInfo: "a@b.com",
	}
}

func validPhysicalSubmission() model.Submission {
	return model.Submission{
		Type:        model.TypePhysical,
		Category:    "Gym",
		Title:       "Downtown gym membership",
		Condition:   model.ConditionPartiallyUsed,
		Price:       "49.99",
		ContactInfo: "a@b.com",
		Country:     "UK",
		State:       "Greater London",
		City:        "London",
	}
}

func TestValidateOnlineClearsLocation(t *testing.T) {
	sub := validOnlineSubmission()
	// Location fields submitted anyway; they must be dropped, not rejected.
	sub.Country = "UK"
	sub.State = "Greater London"
	sub.City = "London"
	sub.AddressDetails = "12 High St"

	l, verr := ValidateSubmission(sub)
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	if l.Location != nil {
		t.Errorf("online listing has location %+v, want nil", l.Location)
	}
	if l.Type != model.TypeOnline || l.Price != 10 || l.Title != "A" {
		t.Errorf("unexpected entity: %+v", l)
	}
}

func TestValidatePhysicalMissingCity(t *testing.T) {
	sub := validPhysicalSubmission()
	sub.City = ""

	_, verr := ValidateSubmission(sub)
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if _, ok := verr.Fields["city"]; !ok {
		t.Errorf("expected a city field error, got %v", verr.Fields)
	}
	if len(verr.Fields) != 1 {
		t.Errorf("expected only the city error, got %v", verr.Fields)
	}
}

func TestValidatePhysicalValid(t *testing.T) {
	l, verr := ValidateSubmission(validPhysicalSubmission())
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	if l.Location == nil {
		t.Fatal("physical listing has nil location")
	}
	if l.Location.City != "London" || l.Location.Country != "UK" {
		t.Errorf("unexpected location: %+v", l.Location)
	}
	if l.Location.AddressDetails != "" {
		t.Errorf("address details should stay optional, got %q", l.Location.AddressDetails)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	sub := model.Submission{
		Type:      "Hybrid",
		Category:  "Spaceships",
		Title:     "",
		Condition: "Broken",
		Price:     "free",
	}

	_, verr := ValidateSubmission(sub)
	if verr == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"type", "category", "title", "condition", "price", "contact_info"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("missing field error for %q: %v", field, verr.Fields)
		}
	}
}

func TestValidateFieldRules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*model.Submission)
		badField string
	}{
		{"title too long", func(s *model.Submission) { s.Title = strings.Repeat("x", 101) }, "title"},
		{"description too long", func(s *model.Submission) { s.Description = strings.Repeat("x", 501) }, "description"},
		{"contact info too long", func(s *model.Submission) { s.ContactInfo = strings.Repeat("x", 201) }, "contact_info"},
		{"negative price", func(s *model.Submission) { s.Price = "-1" }, "price"},
		{"price not a number", func(s *model.Submission) { s.Price = "ten" }, "price"},
		{"price NaN", func(s *model.Submission) { s.Price = "NaN" }, "price"},
		{"empty price", func(s *model.Submission) { s.Price = "" }, "price"},
		{"bad start date", func(s *model.Submission) { s.StartDate = "next week" }, "start_date"},
		{"bad end date", func(s *model.Submission) { s.EndDate = "2025-13-45" }, "end_date"},
		{"empty category", func(s *model.Submission) { s.Category = "" }, "category"},
		{"missing country", func(s *model.Submission) { s.Type = model.TypePhysical; s.Country = "" }, "country"},
		{"missing state", func(s *model.Submission) { s.Type = model.TypePhysical; s.State = "" }, "state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validPhysicalSubmission()
			tt.mutate(&sub)
			_, verr := ValidateSubmission(sub)
			if verr == nil {
				t.Fatal("expected validation error")
			}
			if _, ok := verr.Fields[tt.badField]; !ok {
				t.Errorf("expected error on %q, got %v", tt.badField, verr.Fields)
			}
		})
	}
}

func TestValidateBoundaryLengths(t *testing.T) {
	sub := validPhysicalSubmission()
	sub.Title = strings.Repeat("x", 100)
	sub.Description = strings.Repeat("x", 500)
	sub.ContactInfo = strings.Repeat("x", 200)

	if _, verr := ValidateSubmission(sub); verr != nil {
		t.Errorf("boundary lengths should validate, got %v", verr)
	}
}

func TestValidateParsesDates(t *testing.T) {
	sub := validOnlineSubmission()
	sub.StartDate = "2025-01-15"
	sub.EndDate = "2025-06-30"

	l, verr := ValidateSubmission(sub)
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	if l.StartDate == nil || l.StartDate.Format("2006-01-02") != "2025-01-15" {
		t.Errorf("start date = %v", l.StartDate)
	}
	if l.EndDate == nil || l.EndDate.Format("2006-01-02") != "2025-06-30" {
		t.Errorf("end date = %v", l.EndDate)
	}
}

func TestValidateZeroPriceAllowed(t *testing.T) {
	sub := validOnlineSubmission()
	sub.Price = "0"
	if _, verr := ValidateSubmission(sub); verr != nil {
		t.Errorf("zero price should validate, got %v", verr)
	}
}
