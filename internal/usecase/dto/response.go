package dto

import (
	"github.com/google/uuid"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
)

// LayerView is one selectable layer with its current selection flag.
type LayerView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Endpoint string `json:"endpoint"`
	Selected bool   `json:"selected"`
}

// LayersResponse lists the registry in discovery order.
type LayersResponse struct {
	ContextID string      `json:"context_id"`
	Layers    []LayerView `json:"layers"`
}

// StartDrawResponse carries the draw token the completion event must echo.
type StartDrawResponse struct {
	Token  string                `json:"token"`
	Sketch domain.SketchSnapshot `json:"sketch"`
}

// SketchResponse wraps the controller snapshot.
type SketchResponse struct {
	Sketch domain.SketchSnapshot `json:"sketch"`
}

// RunResponse is the outcome of a synchronous intersection run.
type RunResponse struct {
	Report *domain.RunReport `json:"report"`
}

// AsyncRunResponse acknowledges a queued intersection run.
type AsyncRunResponse struct {
	RunID uuid.UUID `json:"run_id"`
}

// NewLayersResponse builds the view from registry state.
func NewLayersResponse(contextID string, layers []domain.LayerDescriptor, selected map[string]bool) *LayersResponse {
	views := make([]LayerView, len(layers))
	for i, l := range layers {
		views[i] = LayerView{
			ID:       l.ID,
			Title:    l.Title,
			Endpoint: l.Endpoint,
			Selected: selected[l.ID],
		}
	}
	return &LayersResponse{
		ContextID: contextID,
		Layers:    views,
	}
}
