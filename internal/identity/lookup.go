package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

var ErrLookupFailed = errors.New("identity lookup failed")

// LookupClient fetches public registry data for a tax id. The response is
// an arbitrary JSON object; it is stored verbatim and only ever used for
// display personalization.
type LookupClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[map[string]any]
}

func NewLookupClient(baseURL string, timeout time.Duration) *LookupClient {
	return &LookupClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		breaker: gobreaker.NewCircuitBreaker[map[string]any](gobreaker.Settings{
			Name:    "cpf-lookup",
			Timeout: 30 * time.Second,
		}),
	}
}

// Lookup fetches the record for a cleaned (digits-only) CPF.
func (c *LookupClient) Lookup(ctx context.Context, cpf string) (map[string]any, error) {
	digits := CleanCPF(cpf)
	if digits == "" {
		return nil, fmt.Errorf("%w: empty cpf", ErrLookupFailed)
	}

	data, err := c.breaker.Execute(func() (map[string]any, error) {
		return c.fetch(ctx, digits)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
		}
		return nil, err
	}
	return data, nil
}

func (c *LookupClient) fetch(ctx context.Context, digits string) (map[string]any, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrLookupFailed, resp.StatusCode)
	}

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	return data, nil
}
