package repository

import (
	"context"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
)

// GeometryRepository is the external geometry capability the buffer engine
// delegates to. The core never does planar/geodesic math itself.
type GeometryRepository interface {
	// Buffer offsets the geometry outward by distanceMeters and returns the
	// resulting polygon, or nil when the result is empty/degenerate.
	Buffer(ctx context.Context, geometry domain.DrawnGeometry, distanceMeters float64) (*domain.BufferGeometry, error)
}
