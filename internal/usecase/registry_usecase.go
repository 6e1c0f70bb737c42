package usecase

import (
	"sync"

	"go.uber.org/zap"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/pkg/errors"
)

// RegistryUseCase discovers queryable feature sources from the bound map
// context and tracks the user's selection. The context is single-assignment:
// a rebind replaces the whole registry and selection state.
type RegistryUseCase struct {
	logger *zap.Logger

	mu        sync.Mutex
	contextID string
	bound     bool
	layers    []domain.LayerDescriptor
	selected  map[string]bool
}

func NewRegistryUseCase(logger *zap.Logger) *RegistryUseCase {
	return &RegistryUseCase{
		logger:   logger,
		layers:   make([]domain.LayerDescriptor, 0),
		selected: make(map[string]bool),
	}
}

// BindContext discovers layers from the map context. Only feature-typed
// layers backed by a remote queryable endpoint survive the filter; everything
// else is excluded silently. The initial selection is all discovered layers.
func (uc *RegistryUseCase) BindContext(mapContext domain.MapContext) []domain.LayerDescriptor {
	discovered := make([]domain.LayerDescriptor, 0, len(mapContext.Layers))
	for _, l := range mapContext.Layers {
		if l.Kind != domain.LayerKindFeature || !l.Queryable || l.URL == "" {
			continue
		}
		title := l.Title
		if title == "" {
			title = l.ID
		}
		discovered = append(discovered, domain.LayerDescriptor{
			ID:       l.ID,
			Title:    title,
			Endpoint: l.URL,
		})
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.bound {
		uc.logger.Info("Rebinding map context, replacing registry",
			zap.String("old_context", uc.contextID),
			zap.String("new_context", mapContext.ID))
	}

	uc.contextID = mapContext.ID
	uc.bound = true
	uc.layers = discovered
	uc.selected = make(map[string]bool, len(discovered))
	for _, l := range discovered {
		uc.selected[l.ID] = true
	}

	uc.logger.Info("Layers discovered",
		zap.String("context", mapContext.ID),
		zap.Int("total", len(mapContext.Layers)),
		zap.Int("queryable", len(discovered)))

	return discovered
}

// Toggle flips a layer's selection membership. An unknown id is a defensive
// no-op: the UI only offers discovered ids, so this is not reachable through
// a well-behaved caller.
func (uc *RegistryUseCase) Toggle(layerID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.selected[layerID]; !ok {
		known := false
		for _, l := range uc.layers {
			if l.ID == layerID {
				known = true
				break
			}
		}
		if !known {
			uc.logger.Warn("Toggle for unknown layer ignored", zap.String("layer_id", layerID))
			return errors.ErrUnknownLayer
		}
	}

	uc.selected[layerID] = !uc.selected[layerID]
	return nil
}

// Bound reports whether a map context has been bound.
func (uc *RegistryUseCase) Bound() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.bound
}

// ContextID returns the bound context id.
func (uc *RegistryUseCase) ContextID() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.contextID
}

// Layers returns the registry in discovery order plus the selection flags.
func (uc *RegistryUseCase) Layers() ([]domain.LayerDescriptor, map[string]bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	layers := make([]domain.LayerDescriptor, len(uc.layers))
	copy(layers, uc.layers)

	selected := make(map[string]bool, len(uc.selected))
	for id, sel := range uc.selected {
		selected[id] = sel
	}

	return layers, selected
}

// SelectedLayers snapshots the current selection in registry order. A run
// works off this snapshot; later toggles do not affect it.
func (uc *RegistryUseCase) SelectedLayers() []domain.LayerDescriptor {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	result := make([]domain.LayerDescriptor, 0, len(uc.layers))
	for _, l := range uc.layers {
		if uc.selected[l.ID] {
			result = append(result, l)
		}
	}
	return result
}
