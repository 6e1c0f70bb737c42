package repository

import (
	"context"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
)

// FeatureQueryRepository executes spatial queries against a remote feature
// source. Implementations must convert transport and endpoint errors into
// plain Go errors; they are attributed per layer by the orchestrator.
type FeatureQueryRepository interface {
	// QueryIntersecting asks the endpoint for the attributes of every feature
	// whose geometry intersects the buffer. Geometry payloads are never
	// requested back (returnGeometry=false, outFields=*).
	QueryIntersecting(ctx context.Context, endpoint string, buffer domain.BufferGeometry) (*domain.FeatureQueryResult, error)
}
