package memory

import (
	"context"

	"petroserve/internal/domain"
	"petroserve/internal/repository"
)

// CatalogRepository is an in-memory implementation of
// repository.CatalogRepository holding the static service catalog,
// delivery time slots, FAQ list and testimonials.
type CatalogRepository struct{}

// Ensure interface is satisfied.
var _ repository.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates the static catalog repository.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Services returns the offered services.
func (r *CatalogRepository) Services(ctx context.Context) ([]*domain.CatalogService, error) {
	return []*domain.CatalogService{
		{ID: "order-fuel", Title: "Order Fuel", Description: "Get fuel delivered directly to your location", Available: true},
		{ID: "book-mechanic", Title: "Book Mechanic", Description: "Professional automotive service at your location", Available: true},
		{ID: "track-order", Title: "Track Delivery", Description: "Live status of your current order", Available: true},
		{ID: "service-history", Title: "Service History", Description: "Past orders, invoices and ratings", Available: true},
	}, nil
}

// MechanicServices returns the bookable mechanic service types with their
// static estimated cost ranges.
func (r *CatalogRepository) MechanicServices(ctx context.Context) ([]*domain.MechanicServiceType, error) {
	return []*domain.MechanicServiceType{
		{ID: "general", Title: "General Service", Description: "Regular maintenance and check-up", EstimatedCost: "₹500 - ₹1,500"},
		{ID: "battery", Title: "Battery Issue", Description: "Battery replacement or jump start", EstimatedCost: "₹300 - ₹800"},
		{ID: "tire", Title: "Tire / Puncture", Description: "Tire repair or replacement", EstimatedCost: "₹100 - ₹500"},
		{ID: "breakdown", Title: "Breakdown / Emergency", Description: "Vehicle breakdown assistance", EstimatedCost: "₹200 - ₹1,000"},
		{ID: "carwash", Title: "Car Wash / Detailing", Description: "Professional cleaning service", EstimatedCost: "₹150 - ₹400"},
		{ID: "custom", Title: "Custom Request", Description: "Special service requirements", EstimatedCost: "To be determined"},
	}, nil
}

// TimeSlots returns the delivery time slots.
func (r *CatalogRepository) TimeSlots(ctx context.Context) ([]string, error) {
	return []string{
		"ASAP",
		"9:00 AM - 10:00 AM",
		"10:00 AM - 11:00 AM",
		"11:00 AM - 12:00 PM",
		"12:00 PM - 1:00 PM",
		"2:00 PM - 3:00 PM",
		"3:00 PM - 4:00 PM",
		"4:00 PM - 5:00 PM",
		"5:00 PM - 6:00 PM",
	}, nil
}

// FAQs returns the frequently asked questions.
func (r *CatalogRepository) FAQs(ctx context.Context) ([]*domain.FAQ, error) {
	return []*domain.FAQ{
		{
			Question: "Is fuel delivery safe?",
			Answer:   "Yes, absolutely! Our certified delivery personnel follow strict safety protocols. All equipment is regularly inspected and our staff are trained in safe fuel handling procedures.",
		},
		{
			Question: "How fast is the delivery?",
			Answer:   "Most deliveries arrive within 30-45 minutes of placing the order. You can also schedule a time slot that suits you.",
		},
		{
			Question: "Can I cancel my order?",
			Answer:   "Yes, you can cancel up to 30 minutes after placing your order without any charges. After that, a minimal cancellation fee may apply.",
		},
	}, nil
}

// Testimonials returns the customer testimonials for the marketing page.
func (r *CatalogRepository) Testimonials(ctx context.Context) ([]*domain.Testimonial, error) {
	return []*domain.Testimonial{
		{Name: "Priya Sharma", Location: "Gurgaon", Service: "Fuel Delivery", Rating: 5, Text: "Ran out of petrol on the highway and they reached me in 20 minutes. Lifesaver!"},
		{Name: "Arjun Mehta", Location: "Bangalore", Service: "Mechanic Booking", Rating: 5, Text: "Battery died overnight and the mechanic arrived right on time. Transparent pricing too."},
		{Name: "Sneha Rao", Location: "Mumbai", Service: "Fuel Delivery", Rating: 4, Text: "Diesel for my generator delivered during a power cut. Smooth experience end to end."},
	}, nil
}
