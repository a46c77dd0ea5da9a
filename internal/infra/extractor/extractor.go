package extractor

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ListingScraper/internal/domain"
	"github.com/ListingScraper/internal/infra/document"
	"github.com/ListingScraper/internal/infra/metrics"
)

type Extractor struct {
	layout Layout
}

func NewExtractor(layout Layout) (*Extractor, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout %s: %w", layout.Name, err)
	}
	return &Extractor{layout: layout}, nil
}

func (e *Extractor) Layout() Layout {
	return e.layout
}

// Extract returns one entry per block, in document order. A missing sub-node
// only ever degrades its own field.
func (e *Extractor) Extract(doc domain.Document) []domain.Entry {
	blocks := doc.QueryByClassSubstring(e.layout.BlockClass)

	entries := make([]domain.Entry, 0, len(blocks))
	for i, block := range blocks {
		entries = append(entries, e.extractEntry(i, block))
	}
	return entries
}

func (e *Extractor) extractEntry(position int, block domain.Node) domain.Entry {
	var entry domain.Entry
	for _, rule := range e.layout.Fields {
		value, found := readRule(block, rule)
		if !found {
			value = rule.Default
			if !rule.Optional {
				slog.Warn("Required field missing from listing block",
					"layout", e.layout.Name, "field", rule.Field, "tag", rule.Tag, "index", rule.Index, "block", position)
				metrics.LayoutDefects.WithLabelValues(string(rule.Field)).Inc()
			}
		}
		setField(&entry, rule.Field, value)
	}
	return entry
}

func readRule(block domain.Node, rule FieldRule) (string, bool) {
	node, ok := block.Descendant(rule.Tag, rule.Index)
	if !ok {
		return "", false
	}

	var value string
	if rule.Attr != "" {
		value = node.Attr(rule.Attr)
	} else {
		value = node.Text()
	}

	if rule.Trim {
		value = strings.TrimSpace(value)
	}
	if rule.StripTags {
		value = document.StripTags(value)
	}
	return value, true
}

func setField(entry *domain.Entry, field Field, value string) {
	switch field {
	case FieldTitle:
		entry.Title = value
	case FieldSummary:
		entry.Summary = value
	case FieldLink:
		entry.Link = value
	case FieldImage:
		entry.Image = value
	case FieldCategory:
		entry.Category = value
	case FieldDate:
		entry.Date = value
	}
}
