package domain

import (
	"encoding/json"
	"errors"
)

var ErrInvalidPageIndex = errors.New("page index must be at least 1")

// PageRequest identifies one archive page to scrape.
type PageRequest struct {
	BaseURL   string
	PageIndex int
}

func NewPageRequest(baseURL string, pageIndex int) (PageRequest, error) {
	if pageIndex < 1 {
		return PageRequest{}, ErrInvalidPageIndex
	}
	return PageRequest{BaseURL: baseURL, PageIndex: pageIndex}, nil
}

// RequestContext describes the URL the scrape was served under. It is used to
// build the query-style URLs for adjacent pages.
type RequestContext struct {
	Scheme string
	Host   string
	Path   string
}

// SchemeAndHost returns e.g. "https://example.com".
func (c RequestContext) SchemeAndHost() string {
	return c.Scheme + "://" + c.Host
}

// Entry is a single listing block extracted from the page.
type Entry struct {
	Title    string `json:"Title"`
	Summary  string `json:"Summary"`
	Link     string `json:"Link"`
	Image    string `json:"Image"`
	Category string `json:"Category"`
	Date     string `json:"Date"`
}

// PaginationInfo holds the adjacent page links. Nil fields are absent.
type PaginationInfo struct {
	NextIndex    *int
	NextURL      *string
	NextQueryURL *string
	PrevIndex    *int
	PrevURL      *string
	PrevQueryURL *string
}

// PageResult is the only artifact returned by a scrape.
type PageResult struct {
	Success    bool
	CurrentURL string
	Pagination PaginationInfo
	Entries    []Entry
	Error      string
}

type successPayload struct {
	Success          bool    `json:"success"`
	CurrentURL       string  `json:"current_url"`
	NextPageNumber   *int    `json:"next_page_number"`
	NextPageURL      *string `json:"next_page_url"`
	NextPageQueryURL *string `json:"next_page_query_url"`
	PrevPageNumber   *int    `json:"prev_page_number"`
	PrevPageURL      *string `json:"prev_page_url"`
	PrevPageQueryURL *string `json:"prev_page_query_url"`
	Data             []Entry `json:"data"`
}

type failurePayload struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MarshalJSON emits the success document with every pagination key present
// (null when absent), or the two-field failure document.
func (r PageResult) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(failurePayload{Success: false, Error: r.Error})
	}

	data := r.Entries
	if data == nil {
		data = []Entry{}
	}
	return json.Marshal(successPayload{
		Success:          true,
		CurrentURL:       r.CurrentURL,
		NextPageNumber:   r.Pagination.NextIndex,
		NextPageURL:      r.Pagination.NextURL,
		NextPageQueryURL: r.Pagination.NextQueryURL,
		PrevPageNumber:   r.Pagination.PrevIndex,
		PrevPageURL:      r.Pagination.PrevURL,
		PrevPageQueryURL: r.Pagination.PrevQueryURL,
		Data:             data,
	})
}
