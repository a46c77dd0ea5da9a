package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageRequest(t *testing.T) {
	req, err := NewPageRequest("https://h/", 3)
	require.NoError(t, err)
	assert.Equal(t, PageRequest{BaseURL: "https://h/", PageIndex: 3}, req)

	_, err = NewPageRequest("https://h/", 0)
	assert.ErrorIs(t, err, ErrInvalidPageIndex)
}

func TestPageResult_MarshalJSON_Success(t *testing.T) {
	next := 2
	nextURL := "/page/2/"
	nextQuery := "http://h/?page=2"
	result := PageResult{
		Success:    true,
		CurrentURL: "https://haxnode.net/",
		Pagination: PaginationInfo{NextIndex: &next, NextURL: &nextURL, NextQueryURL: &nextQuery},
		Entries:    []Entry{{Title: "Post A", Category: "News"}},
	}

	payload, err := json.Marshal(result)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"success": true,
		"current_url": "https://haxnode.net/",
		"next_page_number": 2,
		"next_page_url": "/page/2/",
		"next_page_query_url": "http://h/?page=2",
		"prev_page_number": null,
		"prev_page_url": null,
		"prev_page_query_url": null,
		"data": [{"Title":"Post A","Summary":"","Link":"","Image":"","Category":"News","Date":""}]
	}`, string(payload))
}

func TestPageResult_MarshalJSON_EmptyDataIsArray(t *testing.T) {
	payload, err := json.Marshal(PageResult{Success: true, CurrentURL: "u"})
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"data":[]`)
}

func TestPageResult_MarshalJSON_Failure(t *testing.T) {
	payload, err := json.Marshal(PageResult{Error: "Curl error: refused"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": false, "error": "Curl error: refused"}`, string(payload))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "HTML content is empty for URL: https://h/", (&EmptyBodyError{URL: "https://h/"}).Error())
	assert.Contains(t, (&TransportError{Err: assert.AnError}).Error(), "Curl error: ")
	assert.ErrorIs(t, &ParseError{Err: assert.AnError}, assert.AnError)
}
