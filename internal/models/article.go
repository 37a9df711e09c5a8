package models

import "time"

// Article represents a single feed entry. The canonical link URL doubles as
// the primary key; the backend that ingested the article guarantees it is
// unique.
type Article struct {
	Link        string    `json:"link"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Published   time.Time `json:"published"`
	Read        bool      `json:"read"`
	Keywords    []string  `json:"keywords"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PublishedDate formats the publication timestamp as YYYY-MM-DD, the
// normalized form the store keeps.
func (a *Article) PublishedDate() string {
	if a.Published.IsZero() {
		return ""
	}
	return a.Published.Format("2006-01-02")
}

// HasKeyword reports whether the article carries the given keyword.
func (a *Article) HasKeyword(keyword string) bool {
	for _, k := range a.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}
