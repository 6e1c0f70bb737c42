package featureservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/config"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates the HTTP client used for all remote spatial queries.
// The per-layer deadline is carried by the caller's context; the transport
// timeout here is only a backstop.
func NewClient(cfg *config.QueryConfig, logger *zap.Logger) repository.FeatureQueryRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// queryRequest is the wire form of one spatial query.
type queryRequest struct {
	Geometry            queryGeometry `json:"geometry"`
	SpatialRelationship string        `json:"spatialRelationship"`
	ReturnGeometry      bool          `json:"returnGeometry"`
	OutFields           []string      `json:"outFields"`
}

type queryGeometry struct {
	GeoJSON json.RawMessage `json:"geojson"`
	SRID    int             `json:"srid"`
}

type queryResponse struct {
	Count    int            `json:"count"`
	Features []queryFeature `json:"features"`
	Error    *queryError    `json:"error,omitempty"`
}

type queryFeature struct {
	Attributes map[string]interface{} `json:"attributes"`
}

type queryError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *client) QueryIntersecting(
	ctx context.Context,
	endpoint string,
	buffer domain.BufferGeometry,
) (*domain.FeatureQueryResult, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("endpoint cannot be empty")
	}

	body, err := json.Marshal(queryRequest{
		Geometry: queryGeometry{
			GeoJSON: buffer.GeoJSON,
			SRID:    buffer.SRID,
		},
		SpatialRelationship: domain.SpatialRelIntersects,
		ReturnGeometry:      false,
		OutFields:           []string{"*"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	c.logger.Debug("Issuing spatial query",
		zap.String("endpoint", endpoint),
		zap.Int("srid", buffer.SRID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request",
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Feature service returned error",
			zap.String("endpoint", endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return nil, fmt.Errorf("feature service error: status %d", resp.StatusCode)
	}

	var queryResp queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&queryResp); err != nil {
		c.logger.Error("Failed to decode response",
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// Some endpoints answer 200 with an error payload
	if queryResp.Error != nil {
		c.logger.Error("Feature service returned error payload",
			zap.String("endpoint", endpoint),
			zap.Int("code", queryResp.Error.Code),
			zap.String("message", queryResp.Error.Message))
		return nil, fmt.Errorf("feature service error: %s", queryResp.Error.Message)
	}

	records := make([]domain.FeatureRecord, 0, len(queryResp.Features))
	for _, f := range queryResp.Features {
		records = append(records, domain.FeatureRecord(f.Attributes))
	}

	count := queryResp.Count
	if count == 0 {
		count = len(records)
	}

	c.logger.Debug("Spatial query completed",
		zap.String("endpoint", endpoint),
		zap.Int("count", count))

	return &domain.FeatureQueryResult{
		Count:   count,
		Records: records,
	}, nil
}
