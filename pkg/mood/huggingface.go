package mood

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultModelURL is the public inference endpoint for the zero-shot
// model the pipeline uses by default.
const DefaultModelURL = "https://api-inference.huggingface.co/models/facebook/bart-large-mnli"

// HuggingFaceClient calls a hosted zero-shot classification endpoint.
type HuggingFaceClient struct {
	url    string
	token  string
	client *http.Client
}

// NewHuggingFaceClient builds a client for the given endpoint URL. An
// empty url selects DefaultModelURL. The token is sent as a bearer
// credential when non-empty.
func NewHuggingFaceClient(url, token string) *HuggingFaceClient {
	if url == "" {
		url = DefaultModelURL
	}
	return &HuggingFaceClient{
		url:    url,
		token:  token,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// Rank submits text for zero-shot classification and returns the labels
// ordered best-first.
func (h *HuggingFaceClient) Rank(ctx context.Context, text string, labels []string) ([]string, error) {
	body, err := json.Marshal(zeroShotRequest{
		Inputs:     text,
		Parameters: zeroShotParameters{CandidateLabels: labels},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("zero-shot request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("zero-shot endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var out zeroShotResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(out.Labels) == 0 {
		return nil, fmt.Errorf("zero-shot endpoint returned no labels")
	}

	return out.Labels, nil
}
