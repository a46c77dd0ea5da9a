package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ListingScraper/internal/domain"
	"github.com/ListingScraper/internal/infra/metrics"
	"github.com/ListingScraper/internal/pageurl"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	statusSuccess        = "success"
	statusTransportError = "transport_error"
	statusEmptyBody      = "empty_body"
	statusParseError     = "parse_error"
	statusInvalidRequest = "invalid_request"
)

// ListingService scrapes one archive page per call. It holds no per-call
// state, so a single instance serves concurrent requests.
type ListingService struct {
	baseURL    string
	fetcher    domain.Fetcher
	parser     domain.DocumentParser
	extractor  domain.EntryExtractor
	pagination domain.PaginationResolver
}

func NewListingService(
	baseURL string,
	fetcher domain.Fetcher,
	parser domain.DocumentParser,
	extractor domain.EntryExtractor,
	pagination domain.PaginationResolver,
) *ListingService {
	return &ListingService{
		baseURL:    baseURL,
		fetcher:    fetcher,
		parser:     parser,
		extractor:  extractor,
		pagination: pagination,
	}
}

// Scrape fetches the requested page, extracts its entries and resolves the
// adjacent pages. Every failure is returned as an unsuccessful PageResult.
func (s *ListingService) Scrape(ctx context.Context, pageIndex int, reqCtx domain.RequestContext) domain.PageResult {
	tr := otel.Tracer("listing-scraper")
	ctx, span := tr.Start(ctx, "Scrape")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.ScrapeDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := domain.NewPageRequest(s.baseURL, pageIndex)
	if err != nil {
		return s.fail(span, statusInvalidRequest, err)
	}

	currentURL := pageurl.ResolveRequestURL(req.BaseURL, req.PageIndex)
	span.SetAttributes(
		attribute.Int("page.index", req.PageIndex),
		attribute.String("page.url", currentURL),
	)

	// The fetcher logs its own failures.
	body, err := s.fetcher.Fetch(ctx, currentURL)
	if err != nil {
		return s.fail(span, fetchStatus(err), err)
	}

	doc, err := s.parser.Parse(body)
	if err != nil {
		slog.Error("Failed to parse page", "url", currentURL, "error", err)
		return s.fail(span, statusParseError, err)
	}

	entries := s.extractor.Extract(doc)
	pagination := s.pagination.Resolve(doc, reqCtx)

	metrics.ScrapesTotal.WithLabelValues(statusSuccess).Inc()
	metrics.EntriesExtracted.Add(float64(len(entries)))
	span.SetAttributes(attribute.Int("entries", len(entries)))
	slog.Debug("Scraped page", "url", currentURL, "entries", len(entries))

	return Assemble(currentURL, pagination, entries)
}

func (s *ListingService) fail(span trace.Span, status string, err error) domain.PageResult {
	span.RecordError(err)
	span.SetStatus(codes.Error, status)
	metrics.ScrapesTotal.WithLabelValues(status).Inc()
	return AssembleFailure(err)
}

func fetchStatus(err error) string {
	var emptyErr *domain.EmptyBodyError
	if errors.As(err, &emptyErr) {
		return statusEmptyBody
	}
	return statusTransportError
}
