package domain

import "github.com/google/uuid"

// Stream names (must match the host application's consumers)
const (
	StreamIntersectionRun  = "stream:intersection:run"
	StreamIntersectionDone = "stream:intersection:done"
)

// RunRequestedEvent is an async intersection run request. It carries a full
// snapshot of the buffer and the selected layers so workers need no access
// to the interactive sketch state.
type RunRequestedEvent struct {
	RunID  uuid.UUID         `json:"run_id"`
	Buffer BufferGeometry    `json:"buffer"`
	Layers []LayerDescriptor `json:"layers"`
}

// RunCompletedEvent is published once a worker has settled every layer.
type RunCompletedEvent struct {
	RunID  uuid.UUID  `json:"run_id"`
	Report *RunReport `json:"report"`
}

// StreamMessage is a raw message read from a Redis Stream.
type StreamMessage struct {
	ID   string
	Data string
}
