package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/config"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
	apperrors "github.com/hatamimatt/SCDOT-BufferWidget/internal/pkg/errors"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/usecase"
)

type runFixture struct {
	intersectionUC *usecase.IntersectionUseCase
	sketchUC       *usecase.SketchUseCase
	registryUC     *usecase.RegistryUseCase
	mockQuery      *MockFeatureQueryRepository
	mockCache      *MockCacheRepository
	mockStream     *MockStreamRepository
}

func newRunFixture(t *testing.T, cacheTTL time.Duration) *runFixture {
	t.Helper()
	logger := zap.NewNop()

	mockGeo := &MockGeometryRepository{}
	mockGeo.On("Buffer", mock.Anything, mock.Anything, mock.Anything).Return(polygonBuffer(), nil)

	mockQuery := &MockFeatureQueryRepository{}
	mockCache := &MockCacheRepository{}
	mockStream := &MockStreamRepository{}

	bufferUC := usecase.NewBufferUseCase(mockGeo, logger)
	sketchUC := usecase.NewSketchUseCase(bufferUC, logger)
	registryUC := usecase.NewRegistryUseCase(logger)

	executor := usecase.NewRunExecutor(mockQuery, mockCache, &config.QueryConfig{
		Timeout:       5 * time.Second,
		MaxConcurrent: 4,
		CacheTTL:      cacheTTL,
	}, logger)

	return &runFixture{
		intersectionUC: usecase.NewIntersectionUseCase(executor, sketchUC, registryUC, mockStream, logger),
		sketchUC:       sketchUC,
		registryUC:     registryUC,
		mockQuery:      mockQuery,
		mockCache:      mockCache,
		mockStream:     mockStream,
	}
}

// drawBuffer installs a buffer through the normal draw lifecycle.
func (f *runFixture) drawBuffer(t *testing.T) {
	t.Helper()
	token, _, err := f.sketchUC.StartDraw(domain.GeometryPolygon)
	assert.NoError(t, err)
	_, err = f.sketchUC.CompleteDraw(context.Background(), token, pointGeometry())
	assert.NoError(t, err)
}

func (f *runFixture) cacheMiss() {
	f.mockCache.On("GetQueryResult", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
}

func TestIntersectionUseCase_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("mixed success and empty layers", func(t *testing.T) {
		f := newRunFixture(t, 0)
		f.drawBuffer(t)
		f.registryUC.BindContext(sampleContext())
		f.cacheMiss()

		f.mockQuery.On("QueryIntersecting", mock.Anything, "https://gis.example.com/wetlands", mock.Anything).
			Return(&domain.FeatureQueryResult{
				Count:   2,
				Records: []domain.FeatureRecord{{"name": "Swamp A"}, {"name": "Swamp B"}},
			}, nil)
		f.mockQuery.On("QueryIntersecting", mock.Anything, "https://gis.example.com/parcels", mock.Anything).
			Return(&domain.FeatureQueryResult{Count: 0}, nil)

		report, err := f.intersectionUC.Run(ctx)

		assert.NoError(t, err)
		assert.Len(t, report.Outcomes, 2)
		assert.Equal(t, domain.OutcomeSuccess, report.Outcomes[0].Status)
		assert.Equal(t, 2, report.Outcomes[0].Count)
		assert.Equal(t, domain.OutcomeEmpty, report.Outcomes[1].Status)
		assert.False(t, report.IsEmpty)
		assert.Empty(t, report.Failures)
		assert.Equal(t, "Found 2 intersecting features in 1 layer(s)", report.Status)
	})

	t.Run("no buffer fails before any query", func(t *testing.T) {
		f := newRunFixture(t, 0)
		f.registryUC.BindContext(sampleContext())

		report, err := f.intersectionUC.Run(ctx)

		assert.ErrorIs(t, err, apperrors.ErrNoBuffer)
		assert.Nil(t, report)
		f.mockQuery.AssertNotCalled(t, "QueryIntersecting")
	})

	t.Run("missing buffer wins over empty selection", func(t *testing.T) {
		f := newRunFixture(t, 0)

		_, err := f.intersectionUC.Run(ctx)

		assert.ErrorIs(t, err, apperrors.ErrNoBuffer)
	})

	t.Run("empty selection fails before any query", func(t *testing.T) {
		f := newRunFixture(t, 0)
		f.drawBuffer(t)
		f.registryUC.BindContext(sampleContext())
		assert.NoError(t, f.registryUC.Toggle("wetlands"))
		assert.NoError(t, f.registryUC.Toggle("parcels"))

		report, err := f.intersectionUC.Run(ctx)

		assert.ErrorIs(t, err, apperrors.ErrNoLayersSelected)
		assert.Nil(t, report)
		f.mockQuery.AssertNotCalled(t, "QueryIntersecting")
	})

	t.Run("one failing layer does not abort the rest", func(t *testing.T) {
		f := newRunFixture(t, 0)
		f.drawBuffer(t)
		f.registryUC.BindContext(sampleContext())
		f.cacheMiss()

		f.mockQuery.On("QueryIntersecting", mock.Anything, "https://gis.example.com/wetlands", mock.Anything).
			Return(nil, errors.New("503 from upstream"))
		f.mockQuery.On("QueryIntersecting", mock.Anything, "https://gis.example.com/parcels", mock.Anything).
			Return(&domain.FeatureQueryResult{
				Count:   1,
				Records: []domain.FeatureRecord{{"parcel_id": "123"}},
			}, nil)

		report, err := f.intersectionUC.Run(ctx)

		assert.NoError(t, err)
		assert.Len(t, report.Outcomes, 2)
		assert.Equal(t, domain.OutcomeFailure, report.Outcomes[0].Status)
		assert.Equal(t, "query failed", report.Outcomes[0].Reason)
		assert.Equal(t, domain.OutcomeSuccess, report.Outcomes[1].Status)
		assert.Len(t, report.Failures, 1)
		assert.Equal(t, "Query failed for layer: Wetlands", report.Status)

		// Raw transport details never surface in the outcome
		assert.NotContains(t, report.Outcomes[0].Reason, "503")
	})

	t.Run("empty everywhere", func(t *testing.T) {
		f := newRunFixture(t, 0)
		f.drawBuffer(t)
		f.registryUC.BindContext(sampleContext())
		f.cacheMiss()

		f.mockQuery.On("QueryIntersecting", mock.Anything, mock.Anything, mock.Anything).
			Return(&domain.FeatureQueryResult{Count: 0}, nil)

		report, err := f.intersectionUC.Run(ctx)

		assert.NoError(t, err)
		assert.True(t, report.IsEmpty)
		assert.Equal(t, "No intersecting features in any selected layer", report.Status)
	})

	t.Run("outcomes keep selection order", func(t *testing.T) {
		f := newRunFixture(t, 0)
		f.drawBuffer(t)
		f.registryUC.BindContext(sampleContext())
		f.cacheMiss()

		f.mockQuery.On("QueryIntersecting", mock.Anything, mock.Anything, mock.Anything).
			Return(&domain.FeatureQueryResult{Count: 1, Records: []domain.FeatureRecord{{"a": 1}}}, nil)

		report, err := f.intersectionUC.Run(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "wetlands", report.Outcomes[0].LayerID)
		assert.Equal(t, "parcels", report.Outcomes[1].LayerID)
	})

	t.Run("cached result skips the live query", func(t *testing.T) {
		f := newRunFixture(t, time.Minute)
		f.drawBuffer(t)
		f.registryUC.BindContext(sampleContext())
		assert.NoError(t, f.registryUC.Toggle("parcels"))

		cached, err := json.Marshal(&domain.FeatureQueryResult{
			Count:   3,
			Records: []domain.FeatureRecord{{"name": "A"}, {"name": "B"}, {"name": "C"}},
		})
		assert.NoError(t, err)
		f.mockCache.On("GetQueryResult", mock.Anything, "https://gis.example.com/wetlands", mock.Anything).
			Return(cached, nil)

		report, err := f.intersectionUC.Run(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 3, report.Outcomes[0].Count)
		f.mockQuery.AssertNotCalled(t, "QueryIntersecting")
	})
}

func TestIntersectionUseCase_LatestReport(t *testing.T) {
	ctx := context.Background()

	t.Run("no report before the first run", func(t *testing.T) {
		f := newRunFixture(t, 0)

		report, err := f.intersectionUC.LatestReport()

		assert.ErrorIs(t, err, apperrors.ErrNoReport)
		assert.Nil(t, report)
	})

	t.Run("each run replaces the previous report", func(t *testing.T) {
		f := newRunFixture(t, 0)
		f.drawBuffer(t)
		f.registryUC.BindContext(sampleContext())
		f.cacheMiss()

		f.mockQuery.On("QueryIntersecting", mock.Anything, mock.Anything, mock.Anything).
			Return(&domain.FeatureQueryResult{Count: 0}, nil)

		first, err := f.intersectionUC.Run(ctx)
		assert.NoError(t, err)
		second, err := f.intersectionUC.Run(ctx)
		assert.NoError(t, err)

		latest, err := f.intersectionUC.LatestReport()
		assert.NoError(t, err)
		assert.Equal(t, second.ID, latest.ID)
		assert.NotEqual(t, first.ID, latest.ID)
	})
}

func TestIntersectionUseCase_RequestAsync(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes a full input snapshot", func(t *testing.T) {
		f := newRunFixture(t, 0)
		f.drawBuffer(t)
		f.registryUC.BindContext(sampleContext())

		f.mockStream.On("PublishToStream", mock.Anything, domain.StreamIntersectionRun,
			mock.MatchedBy(func(data interface{}) bool {
				event, ok := data.(domain.RunRequestedEvent)
				return ok && event.RunID != uuid.Nil && len(event.Layers) == 2 && len(event.Buffer.GeoJSON) > 0
			})).Return(nil)

		runID, err := f.intersectionUC.RequestAsync(ctx)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, runID)
		f.mockStream.AssertExpectations(t)
		f.mockQuery.AssertNotCalled(t, "QueryIntersecting")
	})

	t.Run("same preconditions as a sync run", func(t *testing.T) {
		f := newRunFixture(t, 0)
		f.registryUC.BindContext(sampleContext())

		_, err := f.intersectionUC.RequestAsync(ctx)

		assert.ErrorIs(t, err, apperrors.ErrNoBuffer)
		f.mockStream.AssertNotCalled(t, "PublishToStream")
	})

	t.Run("publish failure is surfaced", func(t *testing.T) {
		f := newRunFixture(t, 0)
		f.drawBuffer(t)
		f.registryUC.BindContext(sampleContext())

		f.mockStream.On("PublishToStream", mock.Anything, domain.StreamIntersectionRun, mock.Anything).
			Return(errors.New("redis down"))

		runID, err := f.intersectionUC.RequestAsync(ctx)

		assert.ErrorIs(t, err, apperrors.ErrInternalServer)
		assert.Equal(t, uuid.Nil, runID)
	})
}
