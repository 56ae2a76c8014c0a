package repository

import (
	"context"

	"petroserve/internal/domain"
)

// CatalogRepository serves the static service catalog and marketing content.
type CatalogRepository interface {
	Services(ctx context.Context) ([]*domain.CatalogService, error)
	MechanicServices(ctx context.Context) ([]*domain.MechanicServiceType, error)
	TimeSlots(ctx context.Context) ([]string, error)
	FAQs(ctx context.Context) ([]*domain.FAQ, error)
	Testimonials(ctx context.Context) ([]*domain.Testimonial, error)
}
