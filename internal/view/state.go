// Package view derives the article page's effective filter state from request
// parameters and builds the filter URLs the templates link to.
package view

import (
	"fmt"
	"strconv"
	"strings"
)

// Read filter values.
const (
	ReadFilterAll    = "all"
	ReadFilterUnread = "unread"
	ReadFilterRead   = "read"
)

// Sort order values.
const (
	SortDesc = "desc"
	SortAsc  = "asc"
)

// Defaults applied when a parameter is absent or malformed.
const (
	DefaultReadFilter = ReadFilterUnread
	DefaultSort       = SortDesc
	DefaultPage       = 1
)

// State is the normalized filter/sort/page tuple for one request. It is
// constructed fresh per request from query parameters and never persisted
// beyond the URL.
type State struct {
	Keywords   []string // selected keywords, deduplicated, selection order
	ReadFilter string
	Sort       string
	Page       int
}

// Resolve normalizes raw query parameters into a State. Unknown enum values
// fall back to their defaults and a malformed page becomes 1; this is a
// view-layer convenience, not a validated API contract, so Resolve never
// fails.
func Resolve(keywords []string, readFilter, sort, page string) State {
	s := State{
		Keywords:   normalizeKeywords(keywords),
		ReadFilter: DefaultReadFilter,
		Sort:       DefaultSort,
		Page:       DefaultPage,
	}

	switch readFilter {
	case ReadFilterAll, ReadFilterUnread, ReadFilterRead:
		s.ReadFilter = readFilter
	}

	switch sort {
	case SortAsc, SortDesc:
		s.Sort = sort
	}

	if p, err := strconv.Atoi(strings.TrimSpace(page)); err == nil && p >= 1 {
		s.Page = p
	}

	return s
}

// normalizeKeywords trims, lowercases and deduplicates the selection while
// preserving first-seen order. The store keeps all keywords lowercase.
func normalizeKeywords(keywords []string) []string {
	var out []string
	seen := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// Selected reports whether the keyword is part of the current selection.
func (s State) Selected(keyword string) bool {
	for _, k := range s.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}

// ClampPage returns the page clamped into [1, totalPages]. A result set with
// no pages still clamps to 1 so templates always have a valid current page.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Pagination describes the window of articles the current page shows.
type Pagination struct {
	Total      int // articles matching the current filter
	PageSize   int
	Page       int // current page, clamped
	TotalPages int
}

// Paginate computes pagination bounds for the given total and clamps the
// requested page into range.
func Paginate(total, pageSize, page int) Pagination {
	if pageSize < 1 {
		pageSize = 1
	}
	if total < 0 {
		total = 0
	}
	totalPages := (total + pageSize - 1) / pageSize
	return Pagination{
		Total:      total,
		PageSize:   pageSize,
		Page:       ClampPage(page, totalPages),
		TotalPages: totalPages,
	}
}

// Offset returns the zero-based offset of the first article on the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// First returns the one-based index of the first article shown, 0 when the
// result set is empty.
func (p Pagination) First() int {
	if p.Total == 0 {
		return 0
	}
	return p.Offset() + 1
}

// Last returns the one-based index of the last article shown.
func (p Pagination) Last() int {
	last := p.Offset() + p.PageSize
	if last > p.Total {
		last = p.Total
	}
	return last
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }

// PrevPage returns the previous page number, clamped to 1.
func (p Pagination) PrevPage() int { return ClampPage(p.Page-1, p.TotalPages) }

// NextPage returns the next page number, clamped to the last page.
func (p Pagination) NextPage() int { return ClampPage(p.Page+1, p.TotalPages) }

// Pages lists every page number for the pagination footer.
func (p Pagination) Pages() []int {
	pages := make([]int, 0, p.TotalPages)
	for i := 1; i <= p.TotalPages; i++ {
		pages = append(pages, i)
	}
	return pages
}

// Summary returns the footer line, e.g. "Showing articles 1 - 10 of 25 total".
func (p Pagination) Summary() string {
	return fmt.Sprintf("Showing articles %d - %d of %d total", p.First(), p.Last(), p.Total)
}
