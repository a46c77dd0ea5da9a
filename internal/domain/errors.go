package domain

import "fmt"

// TransportError reports a low-level fetch failure (connection, DNS, timeout).
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Curl error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// EmptyBodyError reports a successful fetch that returned no content.
type EmptyBodyError struct {
	URL string
}

func (e *EmptyBodyError) Error() string {
	return "HTML content is empty for URL: " + e.URL
}

// ParseError reports that no document tree could be built at all.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Failed to load HTML content into document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
