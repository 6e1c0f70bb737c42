package featureservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/config"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
)

func testBuffer() domain.BufferGeometry {
	return domain.BufferGeometry{
		GeoJSON: json.RawMessage(`{"type":"Polygon","coordinates":[[[-81.04,33.99],[-81.02,33.99],[-81.02,34.01],[-81.04,34.01],[-81.04,33.99]]]}`),
		SRID:    domain.DefaultSRID,
	}
}

func TestClient_QueryIntersecting(t *testing.T) {
	logger := zap.NewNop()
	cfg := &config.QueryConfig{Timeout: 5 * time.Second}

	t.Run("successful query with features", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)

			var req map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "intersects", req["spatialRelationship"])
			assert.Equal(t, false, req["returnGeometry"])
			assert.Equal(t, []interface{}{"*"}, req["outFields"])

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"count": 2,
				"features": []map[string]interface{}{
					{"attributes": map[string]interface{}{"ROUTE_ID": "SC-277", "LANES": 4}},
					{"attributes": map[string]interface{}{"ROUTE_ID": "US-1", "LANES": 2}},
				},
			})
		}))
		defer server.Close()

		client := NewClient(cfg, logger)

		result, err := client.QueryIntersecting(context.Background(), server.URL, testBuffer())
		require.NoError(t, err)
		assert.Equal(t, 2, result.Count)
		assert.Len(t, result.Records, 2)
		assert.Equal(t, "SC-277", result.Records[0]["ROUTE_ID"])
	})

	t.Run("query with zero matches", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"count":0,"features":[]}`))
		}))
		defer server.Close()

		client := NewClient(cfg, logger)

		result, err := client.QueryIntersecting(context.Background(), server.URL, testBuffer())
		require.NoError(t, err)
		assert.Equal(t, 0, result.Count)
		assert.Empty(t, result.Records)
	})

	t.Run("empty endpoint", func(t *testing.T) {
		client := NewClient(cfg, logger)

		result, err := client.QueryIntersecting(context.Background(), "", testBuffer())
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream unavailable"))
		}))
		defer server.Close()

		client := NewClient(cfg, logger)

		result, err := client.QueryIntersecting(context.Background(), server.URL, testBuffer())
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "status 502")
	})

	t.Run("error payload with 200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"Invalid geometry"}}`))
		}))
		defer server.Close()

		client := NewClient(cfg, logger)

		result, err := client.QueryIntersecting(context.Background(), server.URL, testBuffer())
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "Invalid geometry")
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := NewClient(cfg, logger)

		result, err := client.QueryIntersecting(context.Background(), server.URL, testBuffer())
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "decode")
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`{"count":0,"features":[]}`))
		}))
		defer server.Close()

		client := NewClient(cfg, logger)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		result, err := client.QueryIntersecting(ctx, server.URL, testBuffer())
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
