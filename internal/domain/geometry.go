package domain

import (
	"encoding/json"
	"math"
)

// DefaultSRID is WGS84, the spatial reference the drawing surface reports in.
const DefaultSRID = 4326

// GeometryKind is the shape family the user can sketch.
type GeometryKind string

const (
	GeometryPoint    GeometryKind = "point"
	GeometryPolyline GeometryKind = "polyline"
	GeometryPolygon  GeometryKind = "polygon"
)

// Valid reports whether the kind is one of the recognized sketch kinds.
func (k GeometryKind) Valid() bool {
	switch k {
	case GeometryPoint, GeometryPolyline, GeometryPolygon:
		return true
	}
	return false
}

// DrawnGeometry is the shape produced by the drawing surface. The coordinate
// payload is opaque GeoJSON; the core never interprets it, it only hands it
// to the geometry engine and the remote query endpoints.
type DrawnGeometry struct {
	Kind    GeometryKind    `json:"kind"`
	GeoJSON json.RawMessage `json:"geojson"`
	SRID    int             `json:"srid"`
}

// Unit is a buffer distance unit.
type Unit string

const (
	UnitMeters     Unit = "meters"
	UnitKilometers Unit = "kilometers"
	UnitFeet       Unit = "feet"
	UnitMiles      Unit = "miles"
)

// Valid reports whether the unit is one of the four recognized units.
func (u Unit) Valid() bool {
	switch u {
	case UnitMeters, UnitKilometers, UnitFeet, UnitMiles:
		return true
	}
	return false
}

// Meters returns the conversion factor to meters, or 0 for an unknown unit.
func (u Unit) Meters() float64 {
	switch u {
	case UnitMeters:
		return 1
	case UnitKilometers:
		return 1000
	case UnitFeet:
		return 0.3048
	case UnitMiles:
		return 1609.344
	}
	return 0
}

// BufferSpec is the user-editable distance/unit pair. It is read at the
// moment a draw completes, never at draw start.
type BufferSpec struct {
	Distance float64 `json:"distance"`
	Unit     Unit    `json:"unit"`
}

// DistanceMeters converts the spec distance to meters.
func (s BufferSpec) DistanceMeters() float64 {
	return s.Distance * s.Unit.Meters()
}

// DistanceValid reports whether the distance is finite and non-negative.
// Distance 0 is valid; it yields a degenerate buffer that callers treat as
// "no usable buffer".
func (s BufferSpec) DistanceValid() bool {
	return !math.IsNaN(s.Distance) && !math.IsInf(s.Distance, 0) && s.Distance >= 0
}

// BufferGeometry is the polygon derived from a drawn geometry and a spec.
// At most one live instance exists at a time; it is superseded on a new
// draw or an explicit clear.
type BufferGeometry struct {
	GeoJSON json.RawMessage `json:"geojson"`
	SRID    int             `json:"srid"`
}
