package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/config"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain/repository"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/pkg/utils"
)

// RunExecutor fans one spatial query out per selected layer and joins the
// results once every query has settled. It is shared by the synchronous
// orchestrator and the async run worker; it carries no interactive state.
type RunExecutor struct {
	queryRepo     repository.FeatureQueryRepository
	cacheRepo     repository.CacheRepository
	logger        *zap.Logger
	timeout       time.Duration
	maxConcurrent int
	cacheTTL      time.Duration
}

func NewRunExecutor(
	queryRepo repository.FeatureQueryRepository,
	cacheRepo repository.CacheRepository,
	cfg *config.QueryConfig,
	logger *zap.Logger,
) *RunExecutor {
	return &RunExecutor{
		queryRepo:     queryRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
		timeout:       cfg.Timeout,
		maxConcurrent: cfg.MaxConcurrent,
		cacheTTL:      cfg.CacheTTL,
	}
}

// Execute queries every layer concurrently (bounded fan-out), isolates each
// layer's failure to its own outcome, and reassembles the outcomes in
// selection order. One outcome per layer, always — a settle-all join, never
// a first-failure short circuit.
func (e *RunExecutor) Execute(
	ctx context.Context,
	buffer domain.BufferGeometry,
	layers []domain.LayerDescriptor,
) *domain.RunReport {
	startedAt := time.Now()
	runID := uuid.New()
	digest := utils.GeometryDigest(buffer.GeoJSON)

	e.logger.Info("Intersection run started",
		zap.String("run_id", runID.String()),
		zap.Int("layers", len(layers)))

	outcomes := make([]domain.IntersectionOutcome, len(layers))

	var wg sync.WaitGroup
	sem := make(chan struct{}, e.concurrency(len(layers)))

	for i, layer := range layers {
		wg.Add(1)
		go func(i int, layer domain.LayerDescriptor) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			outcomes[i] = e.queryLayer(ctx, buffer, layer, digest)
		}(i, layer)
	}

	wg.Wait()

	report := domain.NewRunReport(runID, outcomes, startedAt, time.Now())

	e.logger.Info("Intersection run finished",
		zap.String("run_id", runID.String()),
		zap.Int("successes", len(report.Successes)),
		zap.Int("failures", len(report.Failures)),
		zap.Bool("is_empty", report.IsEmpty),
		zap.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)))

	return report
}

// queryLayer resolves one layer's outcome. Every failure path ends in a
// per-layer failure outcome with a human-readable reason; raw transport
// errors stay in the log.
func (e *RunExecutor) queryLayer(
	ctx context.Context,
	buffer domain.BufferGeometry,
	layer domain.LayerDescriptor,
	digest string,
) domain.IntersectionOutcome {
	result, cached := e.cachedResult(ctx, layer, digest)

	if result == nil {
		queryCtx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()

		var err error
		result, err = e.queryRepo.QueryIntersecting(queryCtx, layer.Endpoint, buffer)
		if err != nil {
			reason := "query failed"
			if queryCtx.Err() == context.DeadlineExceeded {
				reason = "query timed out"
			}
			e.logger.Warn("Layer query failed",
				zap.String("layer", layer.Title),
				zap.String("endpoint", layer.Endpoint),
				zap.Error(err))
			return domain.IntersectionOutcome{
				LayerID:    layer.ID,
				LayerTitle: layer.Title,
				Status:     domain.OutcomeFailure,
				Reason:     reason,
			}
		}
	}

	if !cached {
		e.storeResult(ctx, layer, digest, result)
	}

	if result.Count == 0 {
		return domain.IntersectionOutcome{
			LayerID:    layer.ID,
			LayerTitle: layer.Title,
			Status:     domain.OutcomeEmpty,
		}
	}

	return domain.IntersectionOutcome{
		LayerID:    layer.ID,
		LayerTitle: layer.Title,
		Status:     domain.OutcomeSuccess,
		Count:      result.Count,
		Records:    result.Records,
	}
}

// cachedResult is a best-effort lookup; cache trouble degrades to a live query.
func (e *RunExecutor) cachedResult(
	ctx context.Context,
	layer domain.LayerDescriptor,
	digest string,
) (*domain.FeatureQueryResult, bool) {
	if e.cacheRepo == nil {
		return nil, false
	}

	data, err := e.cacheRepo.GetQueryResult(ctx, layer.Endpoint, digest)
	if err != nil || data == nil {
		return nil, false
	}

	var result domain.FeatureQueryResult
	if err := json.Unmarshal(data, &result); err != nil {
		e.logger.Warn("Dropping undecodable cached query result",
			zap.String("layer", layer.Title),
			zap.Error(err))
		return nil, false
	}

	return &result, true
}

func (e *RunExecutor) storeResult(
	ctx context.Context,
	layer domain.LayerDescriptor,
	digest string,
	result *domain.FeatureQueryResult,
) {
	if e.cacheRepo == nil || e.cacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := e.cacheRepo.SetQueryResult(ctx, layer.Endpoint, digest, data, e.cacheTTL); err != nil {
		e.logger.Debug("Failed to cache query result",
			zap.String("layer", layer.Title),
			zap.Error(err))
	}
}

func (e *RunExecutor) concurrency(layers int) int {
	n := e.maxConcurrent
	if n <= 0 || n > layers {
		n = layers
	}
	if n == 0 {
		n = 1
	}
	return n
}
