package pagination

import (
	"github.com/ListingScraper/internal/domain"
	"github.com/ListingScraper/internal/pageurl"
)

type Resolver struct {
	nextSelector string
	prevSelector string
}

func NewResolver(nextSelector, prevSelector string) *Resolver {
	return &Resolver{
		nextSelector: nextSelector,
		prevSelector: prevSelector,
	}
}

// Resolve reads the next and previous links of doc. Query URLs point back at
// this service, built from reqCtx, and exist only when an index was derived.
func (r *Resolver) Resolve(doc domain.Document, reqCtx domain.RequestContext) domain.PaginationInfo {
	var info domain.PaginationInfo
	info.NextIndex, info.NextURL, info.NextQueryURL = r.link(doc, r.nextSelector, reqCtx)
	info.PrevIndex, info.PrevURL, info.PrevQueryURL = r.link(doc, r.prevSelector, reqCtx)
	return info
}

func (r *Resolver) link(doc domain.Document, selector string, reqCtx domain.RequestContext) (*int, *string, *string) {
	anchor, ok := doc.QueryFirst(selector)
	if !ok {
		return nil, nil, nil
	}

	href := anchor.Attr("href")
	index := pageurl.DeriveIndex(href)
	if index == nil {
		return nil, &href, nil
	}

	queryURL := pageurl.BuildQueryURL(reqCtx.SchemeAndHost(), reqCtx.Path, *index)
	return index, &href, &queryURL
}
