package factory

import (
	"errors"
	"strings"
	"time"

	"github.com/ListingScraper/internal/app"
	"github.com/ListingScraper/internal/domain"
	"github.com/ListingScraper/internal/infra/extractor"
	"github.com/ListingScraper/internal/infra/pagination"
	transport "github.com/ListingScraper/internal/transport/http"
	"github.com/ListingScraper/pkg/config"
)

const readinessTimeout = 2 * time.Second

// NewEntryExtractor creates the extractor for the configured layout.
func NewEntryExtractor(layout extractor.Layout) (domain.EntryExtractor, error) {
	ex, err := extractor.NewExtractor(layout)
	if err != nil {
		return nil, err
	}
	return ex, nil
}

// NewPaginationResolver creates the resolver using the layout's link selectors.
func NewPaginationResolver(layout extractor.Layout) domain.PaginationResolver {
	return pagination.NewResolver(layout.NextSelector, layout.PrevSelector)
}

// NewListingService creates the listing service with validation.
func NewListingService(
	cfg *config.Config,
	f domain.Fetcher,
	parser domain.DocumentParser,
	ex domain.EntryExtractor,
	pr domain.PaginationResolver,
) (*app.ListingService, error) {
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		return nil, errors.New("base URL must end with /")
	}
	if f == nil {
		return nil, errors.New("fetcher is nil")
	}
	if parser == nil {
		return nil, errors.New("document parser is nil")
	}
	if ex == nil {
		return nil, errors.New("entry extractor is nil")
	}
	if pr == nil {
		return nil, errors.New("pagination resolver is nil")
	}
	return app.NewListingService(cfg.BaseURL, f, parser, ex, pr), nil
}

// NewReadiness creates the upstream readiness check served on /ready.
func NewReadiness(cfg *config.Config) (transport.Readiness, error) {
	checker, err := app.NewReadinessChecker(cfg.BaseURL, readinessTimeout)
	if err != nil {
		return nil, err
	}
	return checker, nil
}

// NewScraper exposes the listing service to the HTTP transport.
func NewScraper(s *app.ListingService) transport.Scraper {
	return s
}
