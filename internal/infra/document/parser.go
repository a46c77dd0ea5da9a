// Package document builds queryable trees from listing page markup.
//
// Pages are parsed once with golang.org/x/net/html through goquery. CSS-style
// lookups go through goquery, single-node XPath lookups through htmlquery, both
// against the same tree. The HTML5 parser recovers from malformed markup the
// way browsers do, so only a failure to read the input is a parse error.
package document

import (
	"bytes"
	"io"
	"log/slog"
	"strings"

	"github.com/ListingScraper/internal/domain"
	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(body []byte) (domain.Document, error) {
	doc, err := p.ParseReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseReader returns a *domain.ParseError when no tree can be built.
func (p *Parser) ParseReader(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &domain.ParseError{Err: err}
	}
	return &Document{doc: doc}, nil
}

type Document struct {
	doc *goquery.Document
}

// QueryByClassSubstring returns, in document order, every element whose class
// attribute contains className as a plain substring.
func (d *Document) QueryByClassSubstring(className string) []domain.Node {
	var nodes []domain.Node
	d.doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		if class, ok := s.Attr("class"); ok && strings.Contains(class, className) {
			nodes = append(nodes, &Node{sel: s})
		}
	})
	return nodes
}

// QueryFirst evaluates an XPath expression and returns the first match.
func (d *Document) QueryFirst(selector string) (domain.Node, bool) {
	if len(d.doc.Nodes) == 0 {
		return nil, false
	}

	n, err := htmlquery.Query(d.doc.Nodes[0], selector)
	if err != nil {
		slog.Warn("Invalid selector", "selector", selector, "error", err)
		return nil, false
	}
	if n == nil {
		return nil, false
	}
	return &Node{sel: d.doc.FindNodes(n)}, true
}

type Node struct {
	sel *goquery.Selection
}

func (n *Node) Descendant(tag string, index int) (domain.Node, bool) {
	if index < 0 {
		return nil, false
	}
	match := n.sel.Find(tag).Eq(index)
	if match.Length() == 0 {
		return nil, false
	}
	return &Node{sel: match}, true
}

// Text returns the concatenated text content of the node.
func (n *Node) Text() string {
	return n.sel.Text()
}

// Attr returns the attribute value, or "" when it is not set.
func (n *Node) Attr(name string) string {
	return n.sel.AttrOr(name, "")
}

// StripTags removes anything that tokenizes as markup from s and keeps the
// raw text between tags untouched.
func StripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Raw())
		}
	}
}
