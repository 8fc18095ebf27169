package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/newsroom-api/internal/config"
)

// maxPostLength is the character cap enforced by the social platform
const maxPostLength = 280

// SocialPoster publishes a short status update to an external platform. The
// returned bool is the explicit posted/not-posted outcome so callers can
// inspect and discard it instead of suppressing a panic path; it must never
// be allowed to fail the publishing workflow.
type SocialPoster interface {
	Post(ctx context.Context, text string) (bool, error)
}

// XClient posts status updates to X via its v2 tweets endpoint
type XClient struct {
	token    string
	endpoint string
	client   *http.Client
}

// NewXClient builds a client from configuration. A missing bearer token is
// not an error; Post becomes a no-op.
func NewXClient(cfg *config.SocialConfig) *XClient {
	return &XClient{
		token:    cfg.BearerToken,
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

// Post submits the text, truncated to the platform cap. Without credentials
// it reports (false, nil) and does nothing.
func (x *XClient) Post(ctx context.Context, text string) (bool, error) {
	if x.token == "" {
		return false, nil
	}

	if runes := []rune(text); len(runes) > maxPostLength {
		text = string(runes[:maxPostLength])
	}

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return false, fmt.Errorf("marshal post payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.endpoint, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+x.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return false, fmt.Errorf("social post rejected: %s", resp.Status)
	}
	return true, nil
}
