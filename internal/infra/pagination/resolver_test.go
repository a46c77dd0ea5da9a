package pagination

import (
	"testing"

	"github.com/ListingScraper/internal/domain"
	"github.com/ListingScraper/internal/infra/document"
	"github.com/ListingScraper/internal/infra/extractor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reqCtx = domain.RequestContext{Scheme: "https", Host: "scraper.example", Path: "/listing"}

func resolve(t *testing.T, markup string) domain.PaginationInfo {
	t.Helper()
	doc, err := document.NewParser().Parse([]byte(markup))
	require.NoError(t, err)

	layout := extractor.PostInnerLayout()
	return NewResolver(layout.NextSelector, layout.PrevSelector).Resolve(doc, reqCtx)
}

func TestResolver_BothLinks(t *testing.T) {
	info := resolve(t, `<ul>
<li class="prev left"><a href="https://haxnode.net/">Prev</a></li>
<li class="next right"><a href="https://haxnode.net/page/3/">Next</a></li>
</ul>`)

	require.NotNil(t, info.NextIndex)
	assert.Equal(t, 3, *info.NextIndex)
	assert.Equal(t, "https://haxnode.net/page/3/", *info.NextURL)
	assert.Equal(t, "https://scraper.example/listing?page=3", *info.NextQueryURL)

	// The first page link carries no digits.
	assert.Nil(t, info.PrevIndex)
	require.NotNil(t, info.PrevURL)
	assert.Equal(t, "https://haxnode.net/", *info.PrevURL)
	assert.Nil(t, info.PrevQueryURL)
}

func TestResolver_NoLinks(t *testing.T) {
	info := resolve(t, `<div class="post-inner"></div>`)

	assert.Equal(t, domain.PaginationInfo{}, info)
}

func TestResolver_ClassMustMatchExactly(t *testing.T) {
	info := resolve(t, `<li class="next right disabled"><a href="/page/2/">Next</a></li>`)

	assert.Nil(t, info.NextURL)
	assert.Nil(t, info.NextIndex)
}

func TestResolver_ZeroIsAPresentIndex(t *testing.T) {
	info := resolve(t, `<li class="next right"><a href="/page/0/">Next</a></li>`)

	require.NotNil(t, info.NextIndex)
	assert.Equal(t, 0, *info.NextIndex)
	require.NotNil(t, info.NextQueryURL)
	assert.Equal(t, "https://scraper.example/listing?page=0", *info.NextQueryURL)
}

func TestResolver_AnchorWithoutHref(t *testing.T) {
	info := resolve(t, `<li class="prev left"><a>Prev</a></li>`)

	require.NotNil(t, info.PrevURL)
	assert.Equal(t, "", *info.PrevURL)
	assert.Nil(t, info.PrevIndex)
	assert.Nil(t, info.PrevQueryURL)
}
