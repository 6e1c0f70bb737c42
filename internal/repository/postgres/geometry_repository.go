package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain/repository"
)

type geometryRepository struct {
	db *DB
}

// NewGeometryRepository backs the buffer engine with PostGIS. Distances are
// applied on the geography type, so they are geodesic meters regardless of
// where on the globe the sketch sits.
func NewGeometryRepository(db *DB) repository.GeometryRepository {
	return &geometryRepository{db: db}
}

const bufferQuery = `
SELECT CASE WHEN ST_IsEmpty(b.geom) THEN NULL ELSE ST_AsGeoJSON(b.geom) END AS geojson
FROM (
    SELECT ST_Buffer(
        ST_SetSRID(ST_GeomFromGeoJSON($1), $2)::geography,
        $3
    )::geometry AS geom
) b`

func (r *geometryRepository) Buffer(
	ctx context.Context,
	geometry domain.DrawnGeometry,
	distanceMeters float64,
) (*domain.BufferGeometry, error) {
	srid := geometry.SRID
	if srid == 0 {
		srid = domain.DefaultSRID
	}

	var geojson sql.NullString
	err := r.db.GetContext(ctx, &geojson, bufferQuery, string(geometry.GeoJSON), srid, distanceMeters)
	if err != nil {
		r.db.logger.Error("Buffer computation failed",
			zap.String("kind", string(geometry.Kind)),
			zap.Float64("distance_m", distanceMeters),
			zap.Error(err))
		return nil, fmt.Errorf("failed to buffer geometry: %w", err)
	}

	// Empty result: degenerate input, no usable buffer.
	if !geojson.Valid || geojson.String == "" {
		r.db.logger.Debug("Buffer result is empty",
			zap.String("kind", string(geometry.Kind)),
			zap.Float64("distance_m", distanceMeters))
		return nil, nil
	}

	return &domain.BufferGeometry{
		GeoJSON: json.RawMessage(geojson.String),
		SRID:    srid,
	}, nil
}
