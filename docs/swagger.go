// Package docs Buffer Widget Service API.
//
// Service backing a measured-buffer map widget. The host map binds its
// context to discover queryable feature layers, the user sketches a point,
// polyline or polygon, the sketch is buffered at a configurable distance,
// and the buffer is intersected against every selected layer concurrently.
//
// Main capabilities:
// - Map context binding and layer discovery
// - Sketch lifecycle with draw tokens and clear-wins semantics
// - Geodesic buffering of drawn geometry
// - Concurrent multi-layer intersection runs with per-layer error isolation
// - Asynchronous runs over Redis streams
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
