package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
)

// MockGeometryRepository is a mock of GeometryRepository
type MockGeometryRepository struct {
	mock.Mock
}

func (m *MockGeometryRepository) Buffer(ctx context.Context, geometry domain.DrawnGeometry, distanceMeters float64) (*domain.BufferGeometry, error) {
	args := m.Called(ctx, geometry, distanceMeters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BufferGeometry), args.Error(1)
}

// MockFeatureQueryRepository is a mock of FeatureQueryRepository
type MockFeatureQueryRepository struct {
	mock.Mock
}

func (m *MockFeatureQueryRepository) QueryIntersecting(ctx context.Context, endpoint string, buffer domain.BufferGeometry) (*domain.FeatureQueryResult, error) {
	args := m.Called(ctx, endpoint, buffer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeatureQueryResult), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetQueryResult(ctx context.Context, endpoint, geometryDigest string) ([]byte, error) {
	args := m.Called(ctx, endpoint, geometryDigest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) SetQueryResult(ctx context.Context, endpoint, geometryDigest string, data []byte, ttl time.Duration) error {
	args := m.Called(ctx, endpoint, geometryDigest, data, ttl)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}
