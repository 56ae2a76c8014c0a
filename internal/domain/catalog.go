package domain

// CatalogService is an offered service on the services page.
type CatalogService struct {
	ID          string
	Title       string
	Description string
	Available   bool
}

// MechanicServiceType is a bookable mechanic service with its static
// estimated cost range. EstimatedCost is a display range, not a computed
// total; unknown or custom services are diagnosed on site.
type MechanicServiceType struct {
	ID            string
	Title         string
	Description   string
	EstimatedCost string
}

// FAQ is a frequently asked question shown on the ordering pages.
type FAQ struct {
	Question string
	Answer   string
}

// Testimonial is a customer testimonial shown on the marketing page.
type Testimonial struct {
	Name     string
	Location string
	Service  string
	Rating   int
	Text     string
}
