// Package rag proxies health questions to the retrieval sidecar, which runs
// the embedding and generation models.
package rag

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/yourname/wellnessgrid/internal"
)

var ErrNotConfigured = errors.New("rag: service URL not configured")

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	logger     internal.Logger
}

func NewClient(baseURL string, logger internal.Logger) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type askRequest struct {
	Question string `json:"question"`
}

type Answer struct {
	Query   string   `json:"query"`
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

// Ask forwards a health question to the sidecar's /ask endpoint.
func (c *Client) Ask(ctx context.Context, question string) (*Answer, error) {
	if c.BaseURL == "" {
		return nil, ErrNotConfigured
	}
	payload, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/ask", bytes.NewReader(payload))
	if err != nil {
		c.logger.Errorf("rag: failed to create request: %v", err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logger.Errorf("rag: failed to call sidecar: %v", err)
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.logger.Errorf("rag: sidecar returned %d", resp.StatusCode)
		return nil, errors.New("rag: sidecar returned non-200")
	}
	var answer Answer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		c.logger.Errorf("rag: failed to decode answer: %v", err)
		return nil, err
	}
	return &answer, nil
}
