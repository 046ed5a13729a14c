package stylist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gayatrinj/Your-Personal-Stylists/models"
)

// SuggestTimeout is the client-enforced deadline for one generation call
const SuggestTimeout = 60 * time.Second

// Suggester submits compiled filters to a generation service and returns raw
// candidate outfits. Implementations make exactly one call per Suggest and
// never fabricate outfits; an empty list is returned as-is.
type Suggester interface {
	Suggest(ctx context.Context, filters SuggestFilters) ([]models.Outfit, error)
}

// suggestResponse is the wire shape of the generation endpoint
type suggestResponse struct {
	Outfits []models.Outfit `json:"outfits"`
	Error   string          `json:"error,omitempty"`
}

// HTTPSuggester talks to the suggestion endpoint over HTTP/JSON
type HTTPSuggester struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSuggester returns a Suggester posting to {baseURL}/api/gemini/suggest
func NewHTTPSuggester(baseURL string) *HTTPSuggester {
	return &HTTPSuggester{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: SuggestTimeout},
	}
}

func (s *HTTPSuggester) Suggest(ctx context.Context, filters SuggestFilters) ([]models.Outfit, error) {
	body, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to encode suggest request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, SuggestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/api/gemini/suggest", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build suggest request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	rsp, err := s.Client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{Err: err}
		}
		return nil, fmt.Errorf("suggest request failed: %w", err)
	}
	defer rsp.Body.Close()

	raw, err := io.ReadAll(rsp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{Err: err}
		}
		return nil, fmt.Errorf("failed to read suggest response: %w", err)
	}

	if rsp.StatusCode < 200 || rsp.StatusCode > 299 {
		return nil, &ServiceError{Status: rsp.StatusCode, Body: string(raw)}
	}

	var parsed suggestResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	return parsed.Outfits, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
