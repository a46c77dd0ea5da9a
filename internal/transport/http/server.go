package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ListingScraper/internal/domain"
	"github.com/ListingScraper/internal/pageurl"
	"github.com/ListingScraper/pkg/config"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Scraper runs one scrape for an inbound request.
type Scraper interface {
	Scrape(ctx context.Context, pageIndex int, reqCtx domain.RequestContext) domain.PageResult
}

// Readiness reports whether the upstream site can currently be reached.
type Readiness interface {
	Check(ctx context.Context) error
}

func NewHTTPServer(cfg *config.Config, scraper Scraper, readiness Readiness) *http.Server {
	return &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: NewRouter(scraper, readiness, cfg.TrustProxyHeaders),
	}
}

func NewRouter(scraper Scraper, readiness Readiness, trustProxyHeaders bool) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)

	h := &scrapeHandler{scraper: scraper, trustProxyHeaders: trustProxyHeaders}
	r.Handle("/", h).Methods("GET")
	r.Handle("/scrape", h).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := fmt.Fprintf(w, "OK"); err != nil {
			// Log error but don't fail health check
			_ = err
		}
	}).Methods("GET")
	r.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := readiness.Check(r.Context()); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, "READY")
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler())

	return r
}

type scrapeHandler struct {
	scraper           Scraper
	trustProxyHeaders bool
}

func (h *scrapeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	pageIndex := pageurl.ParsePageParam(r.URL.Query().Get("page"))
	reqCtx := h.requestContext(r)

	result := h.scraper.Scrape(r.Context(), pageIndex, reqCtx)
	slog.Info("Scrape served",
		"request_id", RequestIDFromContext(r.Context()),
		"page", pageIndex,
		"success", result.Success,
		"entries", len(result.Entries))

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(result); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// requestContext describes the URL this request was served under.
func (h *scrapeHandler) requestContext(r *http.Request) domain.RequestContext {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host

	if h.trustProxyHeaders {
		if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" || proto == "http" {
			scheme = proto
		}
		if fwdHost := r.Header.Get("X-Forwarded-Host"); fwdHost != "" {
			host = fwdHost
		}
	}

	return domain.RequestContext{
		Scheme: scheme,
		Host:   host,
		Path:   r.URL.Path,
	}
}
