package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/yourname/wellnessgrid/internal"
)

// ErrScoreUnavailable is the typed failure after the retry budget is spent.
// The dashboard renders a zero state with a notice instead of failing.
var ErrScoreUnavailable = errors.New("wellness score unavailable")

const (
	scoreAttempts = 3
	scoreBackoff  = time.Second
)

// ScoreClient fetches the externally computed wellness score. The score is an
// opaque pass-through; this service never computes it.
type ScoreClient struct {
	BaseURL    string
	HTTPClient *http.Client
	backoff    time.Duration
	logger     internal.Logger
}

func NewScoreClient(baseURL string, logger internal.Logger) *ScoreClient {
	return &ScoreClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		backoff:    scoreBackoff,
		logger:     logger,
	}
}

type scoreResponse struct {
	HealthScore float64 `json:"health_score"`
}

// FetchScore retries up to 3 attempts with linear backoff (1s * attempt).
// Deliberately a small bounded loop, not a retry framework.
func (c *ScoreClient) FetchScore(ctx context.Context, userID string) (float64, error) {
	if c.BaseURL == "" {
		return 0, ErrScoreUnavailable
	}
	var lastErr error
	for attempt := 1; attempt <= scoreAttempts; attempt++ {
		score, err := c.fetchOnce(ctx, userID)
		if err == nil {
			return score, nil
		}
		lastErr = err
		c.logger.Warnf("score fetch attempt %d failed: %v", attempt, err)
		if attempt == scoreAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(c.backoff * time.Duration(attempt)):
		}
	}
	c.logger.Errorf("score fetch exhausted retries: %v", lastErr)
	return 0, ErrScoreUnavailable
}

func (c *ScoreClient) fetchOnce(ctx context.Context, userID string) (float64, error) {
	url := fmt.Sprintf("%s/api/health-score?user_id=%s", c.BaseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("score service returned %d", resp.StatusCode)
	}
	var body scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	return body.HealthScore, nil
}
