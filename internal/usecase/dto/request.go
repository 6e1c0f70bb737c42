package dto

import (
	"encoding/json"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
)

// BindContextRequest binds (or rebinds) the host map context.
type BindContextRequest struct {
	ID     string       `json:"id" validate:"required"`
	Layers []LayerInput `json:"layers" validate:"dive"`
}

// LayerInput mirrors one raw layer entry from the host map.
type LayerInput struct {
	ID        string `json:"id" validate:"required"`
	Title     string `json:"title"`
	Kind      string `json:"kind" validate:"required"`
	URL       string `json:"url"`
	Queryable bool   `json:"queryable"`
}

// ToMapContext converts the request into the domain map context.
func (r *BindContextRequest) ToMapContext() domain.MapContext {
	layers := make([]domain.MapLayer, len(r.Layers))
	for i, l := range r.Layers {
		layers[i] = domain.MapLayer{
			ID:        l.ID,
			Title:     l.Title,
			Kind:      l.Kind,
			URL:       l.URL,
			Queryable: l.Queryable,
		}
	}
	return domain.MapContext{
		ID:     r.ID,
		Layers: layers,
	}
}

// StartDrawRequest begins a new sketch.
type StartDrawRequest struct {
	Kind string `json:"kind" validate:"required,oneof=point polyline polygon"`
}

// GeometryInput is the finalized shape reported by the drawing surface.
type GeometryInput struct {
	Kind    string          `json:"kind" validate:"required,oneof=point polyline polygon"`
	GeoJSON json.RawMessage `json:"geojson" validate:"required"`
	SRID    int             `json:"srid"`
}

// ToDrawnGeometry converts the input into the domain geometry.
func (g *GeometryInput) ToDrawnGeometry() domain.DrawnGeometry {
	srid := g.SRID
	if srid == 0 {
		srid = domain.DefaultSRID
	}
	return domain.DrawnGeometry{
		Kind:    domain.GeometryKind(g.Kind),
		GeoJSON: g.GeoJSON,
		SRID:    srid,
	}
}

// CompleteDrawRequest is the draw-completion event.
type CompleteDrawRequest struct {
	Token    string        `json:"token" validate:"required,uuid"`
	Geometry GeometryInput `json:"geometry" validate:"required"`
}

// BufferSpecRequest updates the distance/unit pair.
type BufferSpecRequest struct {
	Distance float64 `json:"distance" validate:"gte=0"`
	Unit     string  `json:"unit" validate:"required,oneof=meters kilometers feet miles"`
}

// ToBufferSpec converts the request into the domain spec.
func (r *BufferSpecRequest) ToBufferSpec() domain.BufferSpec {
	return domain.BufferSpec{
		Distance: r.Distance,
		Unit:     domain.Unit(r.Unit),
	}
}
