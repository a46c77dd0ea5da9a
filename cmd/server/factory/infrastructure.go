// Package factory provides dependency injection constructors for infrastructure components.
package factory

import (
	"log/slog"

	"github.com/ListingScraper/internal/domain"
	"github.com/ListingScraper/internal/infra/document"
	"github.com/ListingScraper/internal/infra/fetcher"
	"github.com/ListingScraper/pkg/config"
)

// NewFetcher creates the upstream page fetcher.
func NewFetcher(cfg *config.Config) domain.Fetcher {
	if cfg.BreakerFailureThreshold > 0 {
		slog.Info("Circuit breaker enabled",
			"failure_threshold", cfg.BreakerFailureThreshold,
			"open_timeout", cfg.BreakerOpenTimeout)
	}

	return fetcher.NewHTTPFetcher(fetcher.Options{
		Timeout:                 cfg.FetchTimeout,
		UserAgent:               cfg.UserAgent,
		BreakerFailureThreshold: cfg.BreakerFailureThreshold,
		BreakerOpenTimeout:      cfg.BreakerOpenTimeout,
	})
}

// NewDocumentParser creates the HTML document parser.
func NewDocumentParser() domain.DocumentParser {
	return document.NewParser()
}
