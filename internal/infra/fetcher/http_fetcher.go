package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ListingScraper/internal/domain"
	"github.com/ListingScraper/internal/infra/metrics"
	"github.com/sony/gobreaker"
)

const DefaultUserAgent = "ListingScraper/1.0"

type Options struct {
	// Timeout bounds a single request. Zero leaves the caller's context as the
	// only deadline.
	Timeout   time.Duration
	UserAgent string

	// BreakerFailureThreshold is the number of consecutive transport failures
	// that open the circuit. Zero disables the breaker.
	BreakerFailureThreshold uint32
	BreakerOpenTimeout      time.Duration
}

// HTTPFetcher performs a single GET per call. It never retries.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	cb        *gobreaker.CircuitBreaker
}

func NewHTTPFetcher(opts Options) *HTTPFetcher {
	f := &HTTPFetcher{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		userAgent: opts.UserAgent,
	}
	if f.userAgent == "" {
		f.userAgent = DefaultUserAgent
	}

	if opts.BreakerFailureThreshold > 0 {
		threshold := opts.BreakerFailureThreshold
		f.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "page-fetcher",
			MaxRequests: 1,
			Interval:    60 * time.Second,
			Timeout:     opts.BreakerOpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			IsSuccessful: func(err error) bool {
				// A caller giving up says nothing about the upstream site.
				return err == nil || errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				slog.Warn("CircuitBreaker state changed", "name", name, "from", from, "to", to)
			},
		})
	}
	return f
}

// Fetch returns the body of url. Failures are logged once and returned as
// *domain.TransportError or *domain.EmptyBodyError.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()
	body, err := f.execute(ctx, url)
	metrics.FetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		terr := &domain.TransportError{URL: url, Err: err}
		slog.Error(terr.Error(), "url", url)
		return nil, terr
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		eerr := &domain.EmptyBodyError{URL: url}
		slog.Error(eerr.Error(), "url", url)
		return nil, eerr
	}

	return body, nil
}

func (f *HTTPFetcher) execute(ctx context.Context, url string) ([]byte, error) {
	if f.cb == nil {
		return f.get(ctx, url)
	}

	res, err := f.cb.Execute(func() (interface{}, error) {
		return f.get(ctx, url)
	})
	if err != nil {
		return nil, err
	}
	return res.([]byte), nil
}

func (f *HTTPFetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("Failed to close response body", "error", err)
		}
	}()

	// The body is used whatever the status; listing pages are parsed as served.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("Unexpected status code", "url", url, "status_code", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
