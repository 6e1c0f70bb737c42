package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain/repository"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/pkg/errors"
)

// BufferUseCase is the buffer engine: it validates the spec on the caller
// side and delegates the geodesic math to the geometry capability.
type BufferUseCase struct {
	geometryRepo repository.GeometryRepository
	logger       *zap.Logger
}

func NewBufferUseCase(geometryRepo repository.GeometryRepository, logger *zap.Logger) *BufferUseCase {
	return &BufferUseCase{
		geometryRepo: geometryRepo,
		logger:       logger,
	}
}

// Buffer computes the distance buffer around a drawn geometry. A nil result
// with a nil error means "no usable buffer" (degenerate input); callers must
// treat engine errors the same way.
func (uc *BufferUseCase) Buffer(
	ctx context.Context,
	geometry domain.DrawnGeometry,
	spec domain.BufferSpec,
) (*domain.BufferGeometry, error) {
	if !geometry.Kind.Valid() {
		return nil, errors.ErrInvalidGeometryKind
	}
	if !spec.DistanceValid() {
		return nil, errors.ErrInvalidDistance
	}
	// An unrecognized unit is a caller-side failure, never delegated.
	if !spec.Unit.Valid() {
		return nil, errors.ErrInvalidUnit
	}

	buffer, err := uc.geometryRepo.Buffer(ctx, geometry, spec.DistanceMeters())
	if err != nil {
		uc.logger.Error("Geometry engine rejected input",
			zap.String("kind", string(geometry.Kind)),
			zap.Float64("distance", spec.Distance),
			zap.String("unit", string(spec.Unit)),
			zap.Error(err))
		return nil, err
	}

	if buffer == nil {
		uc.logger.Debug("Buffer is degenerate, no usable buffer produced",
			zap.String("kind", string(geometry.Kind)),
			zap.Float64("distance", spec.Distance))
		return nil, nil
	}

	return buffer, nil
}
