package domain

import "context"

// Fetcher retrieves the raw bytes of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Node is a single element of a parsed document.
type Node interface {
	// Descendant returns the index-th descendant element with the given tag
	// in document order, or false when there is none.
	Descendant(tag string, index int) (Node, bool)
	Text() string
	Attr(name string) string
}

// Document is a queryable markup tree.
type Document interface {
	QueryByClassSubstring(className string) []Node
	QueryFirst(selector string) (Node, bool)
}

// DocumentParser builds a Document from raw bytes.
type DocumentParser interface {
	Parse(body []byte) (Document, error)
}

// EntryExtractor turns the blocks of a document into entries.
type EntryExtractor interface {
	Extract(doc Document) []Entry
}

// PaginationResolver finds the adjacent page links of a document.
type PaginationResolver interface {
	Resolve(doc Document, reqCtx RequestContext) PaginationInfo
}
