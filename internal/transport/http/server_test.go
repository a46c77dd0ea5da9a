package http

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ListingScraper/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockScraper struct {
	mock.Mock
}

func (m *MockScraper) Scrape(ctx context.Context, pageIndex int, reqCtx domain.RequestContext) domain.PageResult {
	args := m.Called(ctx, pageIndex, reqCtx)
	return args.Get(0).(domain.PageResult)
}

type readyStub struct{ err error }

func (r readyStub) Check(context.Context) error { return r.err }

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestScrapeHandler_Success(t *testing.T) {
	next := 3
	scraper := new(MockScraper)
	scraper.On("Scrape", mock.Anything, 2, domain.RequestContext{Scheme: "http", Host: "scraper.local", Path: "/"}).
		Return(domain.PageResult{
			Success:    true,
			CurrentURL: "https://haxnode.net/page/2/",
			Pagination: domain.PaginationInfo{NextIndex: &next},
			Entries:    []domain.Entry{{Title: "Post A"}},
		})

	req := httptest.NewRequest(http.MethodGet, "http://scraper.local/?page=2", nil)
	rec := serve(NewRouter(scraper, readyStub{}, false), req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "https://haxnode.net/page/2/", body["current_url"])
	assert.Equal(t, float64(3), body["next_page_number"])
	assert.Nil(t, body["prev_page_number"])
	assert.Len(t, body["data"], 1)

	scraper.AssertExpectations(t)
}

func TestScrapeHandler_PageParamDefaults(t *testing.T) {
	for _, target := range []string{"/", "/?page=", "/?page=abc", "/?page=-2", "/scrape?page=0"} {
		scraper := new(MockScraper)
		scraper.On("Scrape", mock.Anything, 1, mock.Anything).Return(domain.PageResult{Success: true})

		rec := serve(NewRouter(scraper, readyStub{}, false), httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusOK, rec.Code, target)
		scraper.AssertExpectations(t)
	}
}

func TestScrapeHandler_FailureShape(t *testing.T) {
	scraper := new(MockScraper)
	scraper.On("Scrape", mock.Anything, 1, mock.Anything).
		Return(domain.PageResult{Success: false, Error: "Curl error: connection refused"})

	rec := serve(NewRouter(scraper, readyStub{}, false), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": false, "error": "Curl error: connection refused"}`, rec.Body.String())
}

func TestScrapeHandler_RequestContext(t *testing.T) {
	t.Run("tls", func(t *testing.T) {
		scraper := new(MockScraper)
		scraper.On("Scrape", mock.Anything, 1, domain.RequestContext{Scheme: "https", Host: "secure.local", Path: "/scrape"}).
			Return(domain.PageResult{Success: true})

		req := httptest.NewRequest(http.MethodGet, "https://secure.local/scrape", nil)
		req.TLS = &tls.ConnectionState{}
		serve(NewRouter(scraper, readyStub{}, false), req)

		scraper.AssertExpectations(t)
	})

	t.Run("proxy headers ignored by default", func(t *testing.T) {
		scraper := new(MockScraper)
		scraper.On("Scrape", mock.Anything, 1, domain.RequestContext{Scheme: "http", Host: "internal:8080", Path: "/"}).
			Return(domain.PageResult{Success: true})

		req := httptest.NewRequest(http.MethodGet, "http://internal:8080/", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		req.Header.Set("X-Forwarded-Host", "public.example")
		serve(NewRouter(scraper, readyStub{}, false), req)

		scraper.AssertExpectations(t)
	})

	t.Run("trusted proxy headers", func(t *testing.T) {
		scraper := new(MockScraper)
		scraper.On("Scrape", mock.Anything, 1, domain.RequestContext{Scheme: "https", Host: "public.example", Path: "/"}).
			Return(domain.PageResult{Success: true})

		req := httptest.NewRequest(http.MethodGet, "http://internal:8080/", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		req.Header.Set("X-Forwarded-Host", "public.example")
		serve(NewRouter(scraper, readyStub{}, true), req)

		scraper.AssertExpectations(t)
	})
}

func TestRequestID(t *testing.T) {
	scraper := new(MockScraper)
	scraper.On("Scrape", mock.Anything, 1, mock.Anything).Return(domain.PageResult{Success: true})
	router := NewRouter(scraper, readyStub{}, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", serve(router, req).Header().Get(RequestIDHeader))

	generated := serve(router, httptest.NewRequest(http.MethodGet, "/", nil)).Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestHealthAndMetrics(t *testing.T) {
	router := NewRouter(new(MockScraper), readyStub{}, false)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReady_Unavailable(t *testing.T) {
	router := NewRouter(new(MockScraper), readyStub{err: errors.New("dial tcp: refused")}, false)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "refused")
}
