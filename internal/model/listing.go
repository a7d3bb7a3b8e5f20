package model

import "time"

// Listing types.
const (
	TypeOnline   = "Online"
	TypePhysical = "Physical"
)

// Listing conditions (stored exactly as the form submits them).
const (
	ConditionNew           = "New"
	ConditionPartiallyUsed = "Partially Used"
)

// Categories is the closed set of listing categories.
var Categories = []string{
	"Gym", "Streaming", "Software", "Course", "Club", "Subscription Box", "Other",
}

// Location holds the address fields of a Physical listing. An Online
// listing carries no Location at all, so "location fields are null iff
// type is Online" holds by construction.
type Location struct {
	Country        string `json:"country"`
	State          string `json:"state"`
	City           string `json:"city"`
	AddressDetails string `json:"address_details,omitempty"`
}

// Listing is a sellable membership/subscription posting.
type Listing struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Type        string     `json:"type"` // Online / Physical
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Condition   string     `json:"condition"`
	Price       float64    `json:"price"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	ContactInfo string     `json:"contact_info"`
	Location    *Location  `json:"location,omitempty"` // nil for Online listings
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Submission carries the raw fields of a create/update request.
// Everything arrives as text; the validation layer does all coercion.
type Submission struct {
	Type           string `json:"type" form:"type"`
	Category       string `json:"category" form:"category"`
	Title          string `json:"title" form:"title"`
	Description    string `json:"description" form:"description"`
	Condition      string `json:"condition" form:"condition"`
	Price          string `json:"price" form:"price"`
	StartDate      string `json:"start_date" form:"start_date"`
	EndDate        string `json:"end_date" form:"end_date"`
	ContactInfo    string `json:"contact_info" form:"contact_info"`
	Country        string `json:"country" form:"country"`
	State          string `json:"state" form:"state"`
	City           string `json:"city" form:"city"`
	AddressDetails string `json:"address_details" form:"address_details"`
}

// SearchFilter is the optional-parameter set of a listing search.
// An empty string means the parameter was not supplied.
type SearchFilter struct {
	Query    string
	Type     string
	Category string
	Location string
}
