package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"feedreader/internal/db"
)

var (
	keywordFrequencyDesc = prometheus.NewDesc(
		"feedreader_keyword_articles",
		"Number of articles carrying each keyword",
		[]string{"keyword"},
		nil,
	)

	toggleCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedreader_toggles_total",
			Help: "Toggle requests by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)
)

// Toggle kinds and outcomes recorded by RecordToggle.
const (
	ToggleRead     = "read"
	ToggleFavorite = "favorite"

	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// KeywordCollector is a custom Prometheus collector that reads keyword
// frequencies from the database on each scrape.
type KeywordCollector struct {
	db    *db.DB
	limit int
}

// Describe sends the metric descriptor to the channel.
func (c *KeywordCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- keywordFrequencyDesc
}

// Collect queries the database for keyword frequencies and emits them as gauges.
func (c *KeywordCollector) Collect(ch chan<- prometheus.Metric) {
	counts, err := c.db.KeywordCounts(context.Background(), c.limit)
	if err != nil {
		slog.Error("failed to collect keyword metrics", "error", err)
		return
	}
	for _, kc := range counts {
		ch <- prometheus.MustNewConstMetric(
			keywordFrequencyDesc,
			prometheus.GaugeValue,
			float64(kc.Count),
			kc.Keyword,
		)
	}
}

var initOnce sync.Once

// Init registers the custom collector and toggle counters.
// Must be called once at startup.
func Init(database *db.DB, keywordLimit int) {
	initOnce.Do(func() {
		prometheus.MustRegister(&KeywordCollector{db: database, limit: keywordLimit})
		prometheus.MustRegister(toggleCounter)
	})
}

// RecordToggle records the outcome of a read or favorite toggle request.
func RecordToggle(kind, outcome string) {
	toggleCounter.WithLabelValues(kind, outcome).Inc()
}
