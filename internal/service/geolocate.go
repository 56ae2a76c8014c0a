package service

import (
	"context"
	"time"
)

// Position is a one-shot geolocation result.
type Position struct {
	Lat float64
	Lng float64
}

// Geolocator is the device capability that resolves the current position.
type Geolocator interface {
	Locate(ctx context.Context) (Position, error)
}

// locateTimeout bounds the one-shot location query so a dead provider
// never blocks the form.
const locateTimeout = 3 * time.Second

// LocationService wraps the geolocator with a bounded timeout. The result
// is surfaced as a transient message only; coordinates are never written
// into a draft.
type LocationService struct {
	geolocator Geolocator
}

// NewLocationService creates a new LocationService.
func NewLocationService(geolocator Geolocator) *LocationService {
	return &LocationService{geolocator: geolocator}
}

// Detect runs a one-shot location query and returns the user-facing
// notification message.
func (s *LocationService) Detect(ctx context.Context) (string, error) {
	if s.geolocator == nil {
		return "", ErrLocationUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, locateTimeout)
	defer cancel()

	if _, err := s.geolocator.Locate(ctx); err != nil {
		return "", ErrLocationUnavailable
	}

	return "Location detected!", nil
}

// StaticGeolocator resolves a fixed position after a short delay. It stands
// in for the device geolocation API in demo mode and in tests.
type StaticGeolocator struct {
	Position Position
	Delay    time.Duration
	Err      error
}

// Locate returns the configured position, respecting ctx cancellation.
func (g *StaticGeolocator) Locate(ctx context.Context) (Position, error) {
	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return Position{}, ctx.Err()
		case <-timer.C:
		}
	}

	if g.Err != nil {
		return Position{}, g.Err
	}
	return g.Position, nil
}
