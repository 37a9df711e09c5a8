package view

import (
	"net/url"
	"reflect"
	"sort"
	"testing"
)

// parseFilterURL resolves a built URL back into a State, mirroring what the
// server does on the next request.
func parseFilterURL(t *testing.T, raw string) State {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("failed to parse URL %q: %v", raw, err)
	}
	q := u.Query()
	return Resolve(q["keyword"], q.Get("read_filter"), q.Get("sort"), q.Get("page"))
}

func sortedCopy(keywords []string) []string {
	out := append([]string(nil), keywords...)
	sort.Strings(out)
	return out
}

func TestToggleKeywordURL_AddAndRemove(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		keyword  string
		expected []string
	}{
		{"add to empty selection", nil, "ai", []string{"ai"}},
		{"add to existing selection", []string{"news"}, "ai", []string{"ai", "news"}},
		{"remove selected keyword", []string{"ai", "news"}, "ai", []string{"news"}},
		{"remove last keyword", []string{"ai"}, "ai", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{Keywords: tt.selected, ReadFilter: DefaultReadFilter, Sort: DefaultSort, Page: 1}
			got := parseFilterURL(t, ToggleKeywordURL(s, tt.keyword))
			if !reflect.DeepEqual(sortedCopy(got.Keywords), sortedCopy(tt.expected)) {
				t.Errorf("selection = %v, want %v", got.Keywords, tt.expected)
			}
		})
	}
}

func TestToggleKeywordURL_RoundTrip(t *testing.T) {
	// Toggling the same keyword twice returns to the original selection,
	// up to the page reset.
	s := State{
		Keywords:   []string{"ai", "news"},
		ReadFilter: ReadFilterRead,
		Sort:       SortAsc,
		Page:       4,
	}

	once := parseFilterURL(t, ToggleKeywordURL(s, "ai"))
	twice := parseFilterURL(t, ToggleKeywordURL(once, "ai"))

	if !reflect.DeepEqual(sortedCopy(twice.Keywords), sortedCopy(s.Keywords)) {
		t.Errorf("selection after double toggle = %v, want %v", twice.Keywords, s.Keywords)
	}
	if twice.ReadFilter != s.ReadFilter {
		t.Errorf("ReadFilter = %q, want %q", twice.ReadFilter, s.ReadFilter)
	}
	if twice.Sort != s.Sort {
		t.Errorf("Sort = %q, want %q", twice.Sort, s.Sort)
	}
	if twice.Page != 1 {
		t.Errorf("Page = %d, want 1 (filter changes reset the page)", twice.Page)
	}
}

func TestToggleKeywordURL_PreservesFilters(t *testing.T) {
	s := State{
		Keywords:   []string{"news"},
		ReadFilter: ReadFilterAll,
		Sort:       SortAsc,
		Page:       3,
	}

	got := parseFilterURL(t, ToggleKeywordURL(s, "ai"))
	if got.ReadFilter != ReadFilterAll {
		t.Errorf("ReadFilter = %q, want %q", got.ReadFilter, ReadFilterAll)
	}
	if got.Sort != SortAsc {
		t.Errorf("Sort = %q, want %q", got.Sort, SortAsc)
	}
	if got.Page != 1 {
		t.Errorf("Page = %d, want 1", got.Page)
	}
}

func TestToggleKeywordURL_RemoveResetsPage(t *testing.T) {
	// Scenario: selection {ai, news}, clicking "ai" again removes it,
	// leaving {news}, and resets the page.
	s := State{Keywords: []string{"ai", "news"}, ReadFilter: DefaultReadFilter, Sort: DefaultSort, Page: 2}

	got := parseFilterURL(t, ToggleKeywordURL(s, "ai"))
	if !reflect.DeepEqual(got.Keywords, []string{"news"}) {
		t.Errorf("selection = %v, want [news]", got.Keywords)
	}
	if got.Page != 1 {
		t.Errorf("Page = %d, want 1", got.Page)
	}
}

func TestFilterKeywordURL_AddOnly(t *testing.T) {
	s := State{Keywords: []string{"ai"}, ReadFilter: DefaultReadFilter, Sort: DefaultSort, Page: 2}

	// Adding a new keyword extends the selection.
	got := parseFilterURL(t, FilterKeywordURL(s, "news"))
	if !reflect.DeepEqual(sortedCopy(got.Keywords), []string{"ai", "news"}) {
		t.Errorf("selection = %v, want [ai news]", got.Keywords)
	}

	// Clicking a chip for an already-selected keyword never removes it;
	// only the sidebar toggles.
	got = parseFilterURL(t, FilterKeywordURL(s, "ai"))
	if !reflect.DeepEqual(got.Keywords, []string{"ai"}) {
		t.Errorf("selection = %v, want [ai]", got.Keywords)
	}
	if got.Page != 1 {
		t.Errorf("Page = %d, want 1", got.Page)
	}
}

func TestPageURL(t *testing.T) {
	s := State{Keywords: []string{"ai"}, ReadFilter: ReadFilterRead, Sort: SortAsc, Page: 1}

	got := parseFilterURL(t, PageURL(s, 3))
	if got.Page != 3 {
		t.Errorf("Page = %d, want 3", got.Page)
	}
	if !reflect.DeepEqual(got.Keywords, []string{"ai"}) {
		t.Errorf("selection = %v, want [ai]", got.Keywords)
	}
	if got.ReadFilter != ReadFilterRead || got.Sort != SortAsc {
		t.Errorf("filters changed: read_filter=%q sort=%q", got.ReadFilter, got.Sort)
	}
}

func TestReadFilterAndSortURLs(t *testing.T) {
	s := State{Keywords: []string{"ai"}, ReadFilter: DefaultReadFilter, Sort: DefaultSort, Page: 5}

	got := parseFilterURL(t, ReadFilterURL(s, ReadFilterAll))
	if got.ReadFilter != ReadFilterAll {
		t.Errorf("ReadFilter = %q, want %q", got.ReadFilter, ReadFilterAll)
	}
	if got.Page != 1 {
		t.Errorf("Page = %d, want 1", got.Page)
	}

	got = parseFilterURL(t, SortURL(s, SortAsc))
	if got.Sort != SortAsc {
		t.Errorf("Sort = %q, want %q", got.Sort, SortAsc)
	}
	if !reflect.DeepEqual(got.Keywords, []string{"ai"}) {
		t.Errorf("selection = %v, want [ai]", got.Keywords)
	}
}

func TestBuildURL_OmitsDefaults(t *testing.T) {
	s := State{ReadFilter: DefaultReadFilter, Sort: DefaultSort, Page: 1}

	if got := PageURL(s, 1); got != "/" {
		t.Errorf("default state URL = %q, want \"/\"", got)
	}

	// Equivalent filters must produce identical URLs regardless of how the
	// state was reached.
	a := PageURL(State{Keywords: []string{"ai"}, ReadFilter: DefaultReadFilter, Sort: DefaultSort, Page: 9}, 1)
	b := ToggleKeywordURL(State{ReadFilter: DefaultReadFilter, Sort: DefaultSort, Page: 1}, "ai")
	if a != b {
		t.Errorf("equivalent filters produced different URLs: %q vs %q", a, b)
	}
}
