package ycs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ParthDhengle/YCS-Battery-Simulation/models"
)

// RunSimulation submits the three wizard configurations to POST /simulate
// and returns the solved result.
//
// Exactly one request is issued. A non-2xx response yields an *APIError
// whose Detail is taken from the body's "detail" field when the body is
// parseable JSON, falling back to the HTTP status text.
func (c *Client) RunSimulation(ctx context.Context, simReq *models.SimulationRequest) (*models.SimulationResult, error) {
	body, err := json.Marshal(simReq)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := c.NewRequest(ctx, http.MethodPost, "/simulate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &PayloadError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	var result models.SimulationResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &PayloadError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return &result, nil
}

func newAPIError(statusCode int, body []byte) *APIError {
	var errBody struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Detail != "" {
		return &APIError{StatusCode: statusCode, Detail: errBody.Detail}
	}
	return &APIError{StatusCode: statusCode, Detail: http.StatusText(statusCode)}
}
