package view

import (
	"net/url"
	"strconv"
)

// ToggleKeywordURL returns the article-list URL with the keyword's membership
// in the current selection flipped. Read filter and sort order are preserved;
// the page resets to 1 because the result set changes size.
func ToggleKeywordURL(s State, keyword string) string {
	var keywords []string
	removed := false
	for _, k := range s.Keywords {
		if k == keyword {
			removed = true
			continue
		}
		keywords = append(keywords, k)
	}
	if !removed {
		keywords = append(keywords, keyword)
	}
	return buildURL(keywords, s.ReadFilter, s.Sort, 1)
}

// FilterKeywordURL returns the URL that adds the keyword to the current
// selection. Article-card chips use this add-only link; only the sidebar
// toggles membership.
func FilterKeywordURL(s State, keyword string) string {
	if s.Selected(keyword) {
		return buildURL(s.Keywords, s.ReadFilter, s.Sort, 1)
	}
	keywords := append(append([]string(nil), s.Keywords...), keyword)
	return buildURL(keywords, s.ReadFilter, s.Sort, 1)
}

// PageURL returns the URL for another page of the current filter.
func PageURL(s State, page int) string {
	return buildURL(s.Keywords, s.ReadFilter, s.Sort, page)
}

// ReadFilterURL returns the URL that switches the read filter, keeping the
// keyword selection and sort order. The page resets to 1.
func ReadFilterURL(s State, readFilter string) string {
	return buildURL(s.Keywords, readFilter, s.Sort, 1)
}

// SortURL returns the URL that switches the sort order, keeping the keyword
// selection and read filter. The page resets to 1.
func SortURL(s State, sort string) string {
	return buildURL(s.Keywords, s.ReadFilter, sort, 1)
}

// buildURL encodes the article-list URL for the given filter. Parameters at
// their default value are omitted so equivalent filters produce identical
// URLs.
func buildURL(keywords []string, readFilter, sort string, page int) string {
	q := url.Values{}
	for _, k := range keywords {
		q.Add("keyword", k)
	}
	if readFilter != DefaultReadFilter {
		q.Set("read_filter", readFilter)
	}
	if sort != DefaultSort {
		q.Set("sort", sort)
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}
