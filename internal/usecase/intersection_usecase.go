package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain/repository"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/pkg/errors"
)

// IntersectionUseCase orchestrates intersection runs against the live
// sketch and registry state. Each completed run replaces the previous
// report atomically.
type IntersectionUseCase struct {
	executor   *RunExecutor
	sketchUC   *SketchUseCase
	registryUC *RegistryUseCase
	streamRepo repository.StreamRepository
	logger     *zap.Logger

	mu     sync.RWMutex
	latest *domain.RunReport
}

func NewIntersectionUseCase(
	executor *RunExecutor,
	sketchUC *SketchUseCase,
	registryUC *RegistryUseCase,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *IntersectionUseCase {
	return &IntersectionUseCase{
		executor:   executor,
		sketchUC:   sketchUC,
		registryUC: registryUC,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// Run executes a synchronous intersection run. Preconditions are checked
// before any query is issued: a missing buffer and an empty selection are
// distinct validation failures, and the buffer check wins when both hold.
func (uc *IntersectionUseCase) Run(ctx context.Context) (*domain.RunReport, error) {
	buffer, layers, err := uc.snapshotInputs()
	if err != nil {
		return nil, err
	}

	report := uc.executor.Execute(ctx, *buffer, layers)

	uc.mu.Lock()
	uc.latest = report
	uc.mu.Unlock()

	return report, nil
}

// RequestAsync validates the same preconditions and queues the run on the
// intersection stream with a full snapshot of its inputs, so workers never
// reach back into interactive state.
func (uc *IntersectionUseCase) RequestAsync(ctx context.Context) (uuid.UUID, error) {
	buffer, layers, err := uc.snapshotInputs()
	if err != nil {
		return uuid.Nil, err
	}

	if uc.streamRepo == nil {
		return uuid.Nil, errors.ErrInternalServer
	}

	event := domain.RunRequestedEvent{
		RunID:  uuid.New(),
		Buffer: *buffer,
		Layers: layers,
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamIntersectionRun, event); err != nil {
		uc.logger.Error("Failed to queue intersection run", zap.Error(err))
		return uuid.Nil, errors.ErrInternalServer
	}

	uc.logger.Info("Intersection run queued",
		zap.String("run_id", event.RunID.String()),
		zap.Int("layers", len(layers)))

	return event.RunID, nil
}

// LatestReport returns the report of the most recent completed run.
func (uc *IntersectionUseCase) LatestReport() (*domain.RunReport, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.latest == nil {
		return nil, errors.ErrNoReport
	}
	return uc.latest, nil
}

func (uc *IntersectionUseCase) snapshotInputs() (*domain.BufferGeometry, []domain.LayerDescriptor, error) {
	buffer := uc.sketchUC.Buffer()
	if buffer == nil {
		return nil, nil, errors.ErrNoBuffer
	}

	layers := uc.registryUC.SelectedLayers()
	if len(layers) == 0 {
		return nil, nil, errors.ErrNoLayersSelected
	}

	return buffer, layers, nil
}
