// Package adapter holds the planner's outbound clients: the success oracle
// and the generative advisor.
package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
)

// OracleConfig holds configuration for the prediction-service client.
type OracleConfig struct {
	// URL is the full predict endpoint, e.g. http://localhost:5001/predict.
	URL string
	// Timeout is the HTTP client timeout. The engine applies its own bound
	// on top via context.
	Timeout time.Duration
}

// OracleClient implements port.SuccessOracle against the HTTP prediction
// service. It returns the raw probability value; normalization is the
// engine's job.
type OracleClient struct {
	cfg    OracleConfig
	client *http.Client
}

// NewOracleClient creates the client.
func NewOracleClient(cfg OracleConfig) *OracleClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &OracleClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// oracleResponse accepts the probability under any of the field names the
// service has used across versions.
type oracleResponse struct {
	SuccessProbability *float64 `json:"success_probability"`
	Probability        *float64 `json:"probability"`
	Score              *float64 `json:"score"`
}

// PredictSuccess posts the feature vector and returns the raw probability.
func (c *OracleClient) PredictSuccess(ctx context.Context, req port.OracleRequest) (float64, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("marshal oracle request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build oracle request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("call oracle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("oracle status %d: %s", resp.StatusCode, string(body))
	}

	var out oracleResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode oracle response: %w", err)
	}

	switch {
	case out.SuccessProbability != nil:
		return *out.SuccessProbability, nil
	case out.Probability != nil:
		return *out.Probability, nil
	case out.Score != nil:
		return *out.Score, nil
	}
	return 0, fmt.Errorf("oracle response carries no probability field")
}
