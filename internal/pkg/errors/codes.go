package errors

import "net/http"

var (
	// ErrNoBuffer is returned when an intersection run is requested before a
	// buffer has been drawn.
	ErrNoBuffer = New(
		"NO_BUFFER",
		"Draw a buffer first",
		http.StatusUnprocessableEntity,
	)

	// ErrNoLayersSelected is returned when an intersection run is requested
	// with an empty layer selection.
	ErrNoLayersSelected = New(
		"NO_LAYERS_SELECTED",
		"Select at least one layer",
		http.StatusUnprocessableEntity,
	)

	ErrNoMapContext = New(
		"NO_MAP_CONTEXT",
		"No map context bound",
		http.StatusConflict,
	)

	ErrNoReport = New(
		"NO_REPORT",
		"No intersection run has completed yet",
		http.StatusNotFound,
	)

	ErrUnknownLayer = New(
		"UNKNOWN_LAYER",
		"Layer is not in the registry",
		http.StatusNotFound,
	)

	ErrInvalidGeometryKind = New(
		"INVALID_GEOMETRY_KIND",
		"Geometry kind must be point, polyline or polygon",
		http.StatusBadRequest,
	)

	ErrInvalidDistance = New(
		"INVALID_DISTANCE",
		"Buffer distance must be a finite, non-negative number",
		http.StatusBadRequest,
	)

	ErrInvalidUnit = New(
		"INVALID_UNIT",
		"Buffer unit must be meters, kilometers, feet or miles",
		http.StatusBadRequest,
	)

	ErrStaleDraw = New(
		"STALE_DRAW",
		"Draw token does not match the in-flight draw",
		http.StatusConflict,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
