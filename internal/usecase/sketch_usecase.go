package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/pkg/errors"
)

// SketchUseCase is the drawing interaction state machine. Draw completion
// arrives as a separate event from the drawing surface, so every completion
// carries the token returned by StartDraw; a clear or a restart invalidates
// the token and stale completions become side-effect-free.
type SketchUseCase struct {
	bufferUC *BufferUseCase
	logger   *zap.Logger

	mu        sync.Mutex
	state     domain.SketchState
	cursor    domain.CursorMode
	spec      domain.BufferSpec
	buffer    *domain.BufferGeometry
	artifacts []domain.DisplayArtifact
	drawToken uuid.UUID
}

func NewSketchUseCase(bufferUC *BufferUseCase, logger *zap.Logger) *SketchUseCase {
	return &SketchUseCase{
		bufferUC: bufferUC,
		logger:   logger,
		state:    domain.SketchIdle,
		cursor:   domain.CursorDefault,
		spec: domain.BufferSpec{
			Distance: 100,
			Unit:     domain.UnitMeters,
		},
		artifacts: make([]domain.DisplayArtifact, 0),
	}
}

// SetSpec replaces the buffer spec. The value is read again at the moment a
// draw completes, so mid-draw edits always win over the value at draw start.
func (uc *SketchUseCase) SetSpec(spec domain.BufferSpec) error {
	if !spec.DistanceValid() {
		return errors.ErrInvalidDistance
	}
	if !spec.Unit.Valid() {
		return errors.ErrInvalidUnit
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.spec = spec
	return nil
}

// StartDraw begins a new sketch. An existing buffer is discarded from the
// display set first; an in-flight draw is replaced and its token invalidated.
func (uc *SketchUseCase) StartDraw(kind domain.GeometryKind) (uuid.UUID, domain.SketchSnapshot, error) {
	if !kind.Valid() {
		return uuid.Nil, uc.Snapshot(), errors.ErrInvalidGeometryKind
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.buffer != nil {
		uc.logger.Debug("Discarding existing buffer before new draw")
	}
	uc.buffer = nil

	token := uuid.New()
	uc.drawToken = token
	uc.state = domain.SketchDrawing
	uc.cursor = domain.CursorDrawing
	uc.artifacts = []domain.DisplayArtifact{
		{ID: "sketch-" + token.String(), Kind: domain.ArtifactSketch},
	}

	uc.logger.Info("Draw started",
		zap.String("kind", string(kind)),
		zap.String("token", token.String()))

	return token, uc.snapshotLocked(), nil
}

// CompleteDraw handles the draw-completion event. The buffer spec is read
// now, not at draw start. A token that no longer matches the in-flight draw
// is rejected without touching any state.
func (uc *SketchUseCase) CompleteDraw(
	ctx context.Context,
	token uuid.UUID,
	geometry domain.DrawnGeometry,
) (domain.SketchSnapshot, error) {
	uc.mu.Lock()
	if uc.state != domain.SketchDrawing || token != uc.drawToken {
		uc.mu.Unlock()
		uc.logger.Warn("Ignoring stale draw completion",
			zap.String("token", token.String()))
		return uc.Snapshot(), errors.ErrStaleDraw
	}
	spec := uc.spec
	uc.mu.Unlock()

	// Buffer computation runs without the lock; the token check below makes
	// sure a clear() issued meanwhile wins over this completion.
	buffer, err := uc.bufferUC.Buffer(ctx, geometry, spec)
	if err != nil {
		// Non-fatal: logged and treated as "no buffer produced"
		uc.logger.Warn("Buffering failed, draw produced no buffer", zap.Error(err))
		buffer = nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.state != domain.SketchDrawing || token != uc.drawToken {
		uc.logger.Warn("Draw was superseded during buffering, discarding result",
			zap.String("token", token.String()))
		return uc.snapshotLocked(), errors.ErrStaleDraw
	}

	uc.state = domain.SketchIdle
	uc.cursor = domain.CursorDefault
	uc.drawToken = uuid.Nil

	if buffer == nil {
		// Degenerate input: drop the drawn shape, back to idle with no buffer
		uc.buffer = nil
		uc.artifacts = make([]domain.DisplayArtifact, 0)
		return uc.snapshotLocked(), nil
	}

	// The drawn input is discarded and replaced by the buffer in the display set
	uc.buffer = buffer
	uc.artifacts = []domain.DisplayArtifact{
		{
			ID:      "buffer-" + token.String(),
			Kind:    domain.ArtifactBuffer,
			GeoJSON: string(buffer.GeoJSON),
		},
	}

	uc.logger.Info("Buffer produced",
		zap.Float64("distance", spec.Distance),
		zap.String("unit", string(spec.Unit)))

	return uc.snapshotLocked(), nil
}

// Clear discards the buffer and any drawn artifacts from any state.
// Calling it twice is the same as calling it once.
func (uc *SketchUseCase) Clear() domain.SketchSnapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.state = domain.SketchIdle
	uc.cursor = domain.CursorDefault
	uc.buffer = nil
	uc.drawToken = uuid.Nil
	uc.artifacts = make([]domain.DisplayArtifact, 0)

	return uc.snapshotLocked()
}

// Snapshot returns the read-only presentation view.
func (uc *SketchUseCase) Snapshot() domain.SketchSnapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked()
}

// Buffer returns the live buffer geometry as a value, or nil. Runs that
// already snapshotted it are unaffected by later draws or clears.
func (uc *SketchUseCase) Buffer() *domain.BufferGeometry {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.buffer == nil {
		return nil
	}
	copied := *uc.buffer
	return &copied
}

func (uc *SketchUseCase) snapshotLocked() domain.SketchSnapshot {
	artifacts := make([]domain.DisplayArtifact, len(uc.artifacts))
	copy(artifacts, uc.artifacts)

	snap := domain.SketchSnapshot{
		State:     uc.state,
		HasBuffer: uc.buffer != nil,
		Cursor:    uc.cursor,
		Spec:      uc.spec,
		Artifacts: artifacts,
	}
	if uc.buffer != nil {
		copied := *uc.buffer
		snap.Buffer = &copied
	}
	return snap
}
