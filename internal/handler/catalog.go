package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petroserve/internal/middleware"
	"petroserve/internal/repository"
)

// CatalogHandler serves the static catalog and marketing content.
type CatalogHandler struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogRepo repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalogRepo: catalogRepo}
}

// Dashboard handles GET /v1/dashboard
func (h *CatalogHandler) Dashboard(c *gin.Context) {
	user := middleware.UserFromContext(c)

	services, err := h.catalogRepo.Services(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{
		"user": UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
			Role:  string(user.Role),
		},
		"services": services,
	})
}

// Services handles GET /v1/catalog/services
func (h *CatalogHandler) Services(c *gin.Context) {
	services, err := h.catalogRepo.Services(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, services)
}

// MechanicServices handles GET /v1/catalog/mechanic-services
func (h *CatalogHandler) MechanicServices(c *gin.Context) {
	services, err := h.catalogRepo.MechanicServices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, services)
}

// TimeSlots handles GET /v1/catalog/time-slots
func (h *CatalogHandler) TimeSlots(c *gin.Context) {
	slots, err := h.catalogRepo.TimeSlots(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, slots)
}

// FAQs handles GET /v1/catalog/faqs
func (h *CatalogHandler) FAQs(c *gin.Context) {
	faqs, err := h.catalogRepo.FAQs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, faqs)
}

// Testimonials handles GET /v1/catalog/testimonials
func (h *CatalogHandler) Testimonials(c *gin.Context) {
	testimonials, err := h.catalogRepo.Testimonials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, testimonials)
}

// WhyChoose handles GET /v1/why-choose (public marketing content).
func (h *CatalogHandler) WhyChoose(c *gin.Context) {
	testimonials, err := h.catalogRepo.Testimonials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{
		"headline":     "Fuel and roadside assistance, delivered to you",
		"testimonials": testimonials,
	})
}
