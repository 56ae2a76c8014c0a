package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"petroserve/internal/repository"
	"petroserve/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrMissingRequiredFields),
		errors.Is(err, service.ErrInvalidFuelType),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrQuantityTooLarge),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidOrderID):
		return http.StatusBadRequest

	// Conflict errors - draft or lifecycle state forbids the operation
	case errors.Is(err, service.ErrServiceTypeRequired),
		errors.Is(err, service.ErrAgentEnRoute),
		errors.Is(err, service.ErrOrderAlreadyCancelled),
		errors.Is(err, service.ErrDeliveryCompleted):
		return http.StatusConflict

	// External capability unavailable
	case errors.Is(err, service.ErrLocationUnavailable):
		return http.StatusServiceUnavailable

	// Abandoned requests
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
