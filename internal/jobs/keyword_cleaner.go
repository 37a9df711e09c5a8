package jobs

import (
	"context"
	"log"
	"strings"
	"time"

	"feedreader/internal/db"
)

// KeywordCleaner performs background keyword hygiene on stored articles:
// lowercasing, deduplication and removal of stoplisted junk terms that
// HTML-derived keyword extraction leaves behind.
type KeywordCleaner struct {
	db        *db.DB
	interval  time.Duration
	stoplist  map[string]bool
	batchSize int
}

// NewKeywordCleaner creates a new keyword cleaner.
func NewKeywordCleaner(database *db.DB, interval time.Duration, stoplist map[string]bool, batchSize int) *KeywordCleaner {
	if batchSize < 1 {
		batchSize = 200
	}
	return &KeywordCleaner{
		db:        database,
		interval:  interval,
		stoplist:  stoplist,
		batchSize: batchSize,
	}
}

// Start begins the background cleanup loop.
func (k *KeywordCleaner) Start(ctx context.Context) {
	log.Printf("Keyword cleaner started (interval: %v, batch: %d)", k.interval, k.batchSize)

	// Run immediately on start
	k.cleanAll(ctx)

	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Keyword cleaner stopped")
			return
		case <-ticker.C:
			k.cleanAll(ctx)
		}
	}
}

// cleanAll normalizes keywords for one batch of articles.
func (k *KeywordCleaner) cleanAll(ctx context.Context) {
	articles, err := k.db.ListArticlesForCleanup(ctx, k.batchSize)
	if err != nil {
		log.Printf("Keyword cleaner: failed to list articles: %v", err)
		return
	}

	cleaned := 0
	for _, article := range articles {
		select {
		case <-ctx.Done():
			return
		default:
		}

		keywords, changed := NormalizeKeywords(article.Keywords, k.stoplist)
		if !changed {
			continue
		}

		if err := k.db.UpdateArticleKeywords(ctx, article.Link, keywords); err != nil {
			log.Printf("Keyword cleaner: failed to update %s: %v", article.Link, err)
			continue
		}
		cleaned++
	}

	if cleaned > 0 {
		log.Printf("Keyword cleaner: cleaned %d of %d articles", cleaned, len(articles))
	}
}

// NormalizeKeywords lowercases, trims and deduplicates a keyword set and
// drops stoplisted terms, preserving first-seen order. The second return
// value reports whether the result differs from the input.
func NormalizeKeywords(keywords []string, stoplist map[string]bool) ([]string, bool) {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]bool, len(keywords))
	changed := false

	for _, raw := range keywords {
		k := strings.ToLower(strings.TrimSpace(raw))
		if k != raw {
			changed = true
		}
		if k == "" || seen[k] || stoplist[k] {
			changed = true
			continue
		}
		seen[k] = true
		out = append(out, k)
	}

	return out, changed
}
