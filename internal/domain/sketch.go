package domain

// SketchState is the drawing lifecycle state. HasBuffer is orthogonal and
// carried separately in the snapshot.
type SketchState string

const (
	SketchIdle    SketchState = "idle"
	SketchDrawing SketchState = "drawing"
)

// CursorMode is the interaction cursor signal emitted to the rendering
// surface.
type CursorMode string

const (
	CursorDefault CursorMode = "default"
	CursorDrawing CursorMode = "drawing"
)

// Artifact kinds in the display set.
const (
	ArtifactSketch = "sketch"
	ArtifactBuffer = "buffer"
)

// DisplayArtifact is an add-to-display command target: either the in-progress
// drawn shape or the produced buffer polygon. The rendering surface owns the
// symbology; the core only tracks what should be on screen.
type DisplayArtifact struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	GeoJSON string `json:"geojson,omitempty"`
}

// SketchSnapshot is the read-only presentation view of the controller.
type SketchSnapshot struct {
	State     SketchState       `json:"state"`
	HasBuffer bool              `json:"has_buffer"`
	Cursor    CursorMode        `json:"cursor"`
	Spec      BufferSpec        `json:"spec"`
	Buffer    *BufferGeometry   `json:"buffer,omitempty"`
	Artifacts []DisplayArtifact `json:"artifacts"`
}
