package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScrapesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scrapes_total",
			Help: "The total number of page scrapes by outcome",
		},
		[]string{"status"},
	)

	ScrapeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scrape_duration_seconds",
			Help:    "Duration of a full fetch, parse and extract run",
			Buckets: prometheus.DefBuckets,
		},
	)

	FetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fetch_duration_seconds",
			Help:    "Duration of upstream page fetches",
			Buckets: prometheus.DefBuckets,
		},
	)

	EntriesExtracted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "entries_extracted_total",
			Help: "The total number of listing entries extracted",
		},
	)

	LayoutDefects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "layout_defects_total",
			Help: "Required fields missing from a listing block",
		},
		[]string{"field"},
	)
)
