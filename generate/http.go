package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/questmaster/questmaster/models"
)

const defaultTimeout = 30 * time.Second

// HTTPProvider calls the quest-generation service: a single POST with
// the JSON task payload, answered by a generated-quest document.
type HTTPProvider struct {
	endpoint string
	client   *http.Client
}

// NewHTTPProvider creates a provider for the given endpoint URL. A
// non-positive timeout falls back to the default.
func NewHTTPProvider(endpoint string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPProvider{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// GenerateQuest posts the request and decodes the response. Transport
// failures and non-success statuses come back as *GenerationError.
func (p *HTTPProvider) GenerateQuest(ctx context.Context, req QuestRequest) (models.GeneratedQuest, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return models.GeneratedQuest{}, fmt.Errorf("failed to encode generation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return models.GeneratedQuest{}, fmt.Errorf("failed to build generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return models.GeneratedQuest{}, &GenerationError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.GeneratedQuest{}, &GenerationError{StatusCode: resp.StatusCode}
	}

	var gen models.GeneratedQuest
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return models.GeneratedQuest{}, &GenerationError{Err: fmt.Errorf("failed to decode generation response: %w", err)}
	}
	return gen, nil
}
