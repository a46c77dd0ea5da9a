package factory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ListingScraper/internal/infra/extractor"
	"github.com/ListingScraper/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout(t *testing.T) {
	layout, err := NewLayout(&config.Config{LayoutName: "post-inner"})
	require.NoError(t, err)
	assert.Equal(t, extractor.PostInnerLayout(), layout)

	_, err = NewLayout(&config.Config{LayoutName: "nope"})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: custom
block_class: card
next_selector: "//a[@rel='next']"
prev_selector: "//a[@rel='prev']"
fields:
  - field: title
    tag: h3
    optional: true
`), 0o600))

	layout, err = NewLayout(&config.Config{LayoutName: "nope", LayoutFile: path})
	require.NoError(t, err)
	assert.Equal(t, "custom", layout.Name)
	assert.Equal(t, "card", layout.BlockClass)
}

func TestNewListingService_Validation(t *testing.T) {
	cfg := &config.Config{BaseURL: "https://haxnode.net/"}
	layout := extractor.PostInnerLayout()

	f := NewFetcher(cfg)
	ex, err := NewEntryExtractor(layout)
	require.NoError(t, err)
	pr := NewPaginationResolver(layout)

	svc, err := NewListingService(cfg, f, NewDocumentParser(), ex, pr)
	require.NoError(t, err)
	assert.NotNil(t, NewScraper(svc))

	readiness, err := NewReadiness(cfg)
	require.NoError(t, err)
	assert.NotNil(t, readiness)

	_, err = NewListingService(&config.Config{BaseURL: "https://haxnode.net"}, f, NewDocumentParser(), ex, pr)
	assert.ErrorContains(t, err, "must end with /")

	_, err = NewListingService(cfg, nil, NewDocumentParser(), ex, pr)
	assert.ErrorContains(t, err, "fetcher is nil")
}
