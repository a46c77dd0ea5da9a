package extractor

import (
	"errors"
	"fmt"
	"os"

	"github.com/antchfx/xpath"
	"gopkg.in/yaml.v3"
)

// Field names an Entry field.
type Field string

const (
	FieldTitle    Field = "title"
	FieldSummary  Field = "summary"
	FieldLink     Field = "link"
	FieldImage    Field = "image"
	FieldCategory Field = "category"
	FieldDate     Field = "date"
)

var knownFields = map[Field]bool{
	FieldTitle:    true,
	FieldSummary:  true,
	FieldLink:     true,
	FieldImage:    true,
	FieldCategory: true,
	FieldDate:     true,
}

// FieldRule selects the Index-th Tag descendant of a block and reads either
// its Attr or, when Attr is empty, its text content.
type FieldRule struct {
	Field     Field  `yaml:"field"`
	Tag       string `yaml:"tag"`
	Index     int    `yaml:"index"`
	Attr      string `yaml:"attr,omitempty"`
	Trim      bool   `yaml:"trim,omitempty"`
	StripTags bool   `yaml:"strip_tags,omitempty"`
	// Optional fields fall back to Default silently. A missing required field
	// also yields Default but is reported as a layout defect.
	Optional bool   `yaml:"optional,omitempty"`
	Default  string `yaml:"default,omitempty"`
}

// Layout describes where listing data lives on a page.
type Layout struct {
	Name         string      `yaml:"name"`
	BlockClass   string      `yaml:"block_class"`
	NextSelector string      `yaml:"next_selector"`
	PrevSelector string      `yaml:"prev_selector"`
	Fields       []FieldRule `yaml:"fields"`
}

const PostInnerLayoutName = "post-inner"

// PostInnerLayout targets the archive layout the scraper was written for.
func PostInnerLayout() Layout {
	return Layout{
		Name:         PostInnerLayoutName,
		BlockClass:   "post-inner",
		NextSelector: "//li[@class='next right']//a",
		PrevSelector: "//li[@class='prev left']//a",
		Fields: []FieldRule{
			{Field: FieldTitle, Tag: "h2", Index: 0, Trim: true, StripTags: true, Optional: true},
			{Field: FieldSummary, Tag: "p", Index: 2, Trim: true, StripTags: true, Optional: true},
			{Field: FieldLink, Tag: "a", Index: 0, Attr: "href"},
			{Field: FieldImage, Tag: "img", Index: 0, Attr: "src"},
			{Field: FieldCategory, Tag: "p", Index: 0},
			{Field: FieldDate, Tag: "time", Index: 0, Attr: "datetime"},
		},
	}
}

// GetLayout returns a registered layout by name.
func GetLayout(name string) (Layout, error) {
	switch name {
	case PostInnerLayoutName:
		return PostInnerLayout(), nil
	default:
		return Layout{}, fmt.Errorf("layout not found: %s", name)
	}
}

// LoadLayout reads and validates a YAML layout file.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}

	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout file: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, fmt.Errorf("invalid layout %s: %w", path, err)
	}
	return layout, nil
}

func (l Layout) Validate() error {
	if l.BlockClass == "" {
		return errors.New("block_class is required")
	}
	for _, sel := range []string{l.NextSelector, l.PrevSelector} {
		if sel == "" {
			return errors.New("next_selector and prev_selector are required")
		}
		if _, err := xpath.Compile(sel); err != nil {
			return fmt.Errorf("invalid selector %q: %w", sel, err)
		}
	}

	seen := make(map[Field]bool)
	for _, rule := range l.Fields {
		if !knownFields[rule.Field] {
			return fmt.Errorf("unknown field %q", rule.Field)
		}
		if seen[rule.Field] {
			return fmt.Errorf("duplicate rule for field %q", rule.Field)
		}
		seen[rule.Field] = true

		if rule.Tag == "" {
			return fmt.Errorf("field %q: tag is required", rule.Field)
		}
		if rule.Index < 0 {
			return fmt.Errorf("field %q: index must not be negative", rule.Field)
		}
	}
	return nil
}
