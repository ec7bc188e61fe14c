package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultModelURL is the public inference endpoint for the default
// sentiment model.
const DefaultModelURL = "https://api-inference.huggingface.co/models/distilbert-base-uncased-finetuned-sst-2-english"

// HuggingFaceClient calls a hosted sentiment-analysis endpoint.
type HuggingFaceClient struct {
	url    string
	token  string
	client *http.Client
}

// NewHuggingFaceClient builds a client for the given endpoint URL. An
// empty url selects DefaultModelURL.
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

type batchRequest struct {
	Inputs []string `json:"inputs"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ClassifyBatch labels each text with its highest-scoring sentiment label.
// The endpoint returns one score list per input, in input order.
func (h *HuggingFaceClient) ClassifyBatch(ctx context.Context, texts []string) ([]string, error) {
	body, err := json.Marshal(batchRequest{Inputs: texts})
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
		return nil, fmt.Errorf("sentiment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sentiment endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var out [][]labelScore
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(out) != len(texts) {
		return nil, fmt.Errorf("sentiment endpoint returned %d results for %d inputs", len(out), len(texts))
	}

	labels := make([]string, len(out))
	for i, scores := range out {
		if len(scores) == 0 {
			return nil, fmt.Errorf("sentiment endpoint returned empty scores for input %d", i)
		}
		best := scores[0]
		for _, s := range scores[1:] {
			if s.Score > best.Score {
				best = s
			}
		}
		labels[i] = best.Label
	}
	return labels, nil
}
