// Package prediction calls the external divorce-probability model service.
package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type predictResponse struct {
	DivorceProbability float64 `json:"divorce_probability"`
}

// Client is a thin HTTP client for the Python prediction service.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:5001/predict"
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Predict returns the divorce probability for the given model features, or
// (nil, nil) when no features are available. The model expects the full
// questionnaire feature set; partial profiles simply skip prediction.
func (c *Client) Predict(ctx context.Context, features map[string]float64) (*float64, error) {
	if len(features) == 0 {
		return nil, nil
	}

	payload, err := json.Marshal(features)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prediction service responded with status: %d", res.StatusCode)
	}

	var parsed predictResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}

	return &parsed.DivorceProbability, nil
}
