package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"hotel-booking-predictor/models"
)

// Predictor classifies a booking request
type Predictor interface {
	Predict(ctx context.Context, req models.PredictionRequest) (string, error)
}

// PredictionClient calls the remote prediction service over HTTP
type PredictionClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewPredictionClient creates a client for baseURL. A nil httpClient gets a
// client without a timeout; calls end only through the context.
func NewPredictionClient(baseURL string, httpClient *http.Client) *PredictionClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &PredictionClient{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// Predict posts the request to {baseURL}/predict and returns the label
func (c *PredictionClient) Predict(ctx context.Context, req models.PredictionRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode prediction request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build prediction request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("prediction API error: %s: %s", resp.Status, string(bodyBytes))
	}

	var result models.PredictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode prediction response: %w", err)
	}

	if result.Prediction == nil {
		if result.Error != "" {
			return "", fmt.Errorf("prediction API error: %s", result.Error)
		}
		return "", fmt.Errorf("prediction response has no prediction field")
	}

	return *result.Prediction, nil
}
