package handlers

import (
	"github.com/gofiber/fiber/v3"

	"feedreader/internal/config"
	"feedreader/internal/db"
	"feedreader/internal/models"
	"feedreader/internal/view"
)

// ArticleHandler renders the article list page.
type ArticleHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(database *db.DB, cfg *config.Config) *ArticleHandler {
	return &ArticleHandler{db: database, cfg: cfg}
}

// articleItem is an article enriched with the chip links the template needs.
type articleItem struct {
	models.Article
	Chips []chipItem
}

// chipItem is one keyword chip on an article card. Chips are add-only filter
// links; only the sidebar toggles membership.
type chipItem struct {
	Keyword string
	URL     string
}

// keywordItem is one sidebar entry with its toggle link.
type keywordItem struct {
	Keyword   string
	Count     int64
	Favorite  bool
	Selected  bool
	ToggleURL string
}

// Index renders the article list with the keyword sidebar.
func (h *ArticleHandler) Index(c fiber.Ctx) error {
	state := resolveState(c)

	filter := db.ArticleFilter{
		Keywords:   state.Keywords,
		ReadFilter: state.ReadFilter,
		SortAsc:    state.Sort == view.SortAsc,
	}

	total, err := h.db.CountArticles(c.Context(), filter)
	if err != nil {
		return err
	}

	// Out-of-range pages clamp to the nearest bound instead of failing.
	pagination := view.Paginate(total, h.cfg.PageSize, state.Page)
	state.Page = pagination.Page

	articles, err := h.db.ListArticles(c.Context(), filter, pagination.PageSize, pagination.Offset())
	if err != nil {
		return err
	}

	counts, err := h.db.KeywordCounts(c.Context(), h.cfg.KeywordLimit)
	if err != nil {
		return err
	}

	items := make([]articleItem, 0, len(articles))
	for _, a := range articles {
		item := articleItem{Article: a}
		for _, k := range a.Keywords {
			item.Chips = append(item.Chips, chipItem{Keyword: k, URL: view.FilterKeywordURL(state, k)})
		}
		items = append(items, item)
	}

	var favorites, all []keywordItem
	for _, kc := range counts {
		item := keywordItem{
			Keyword:   kc.Keyword,
			Count:     kc.Count,
			Favorite:  kc.Favorite,
			Selected:  state.Selected(kc.Keyword),
			ToggleURL: view.ToggleKeywordURL(state, kc.Keyword),
		}
		all = append(all, item)
		if kc.Favorite {
			favorites = append(favorites, item)
		}
	}

	return c.Render("index", MergeBranding(fiber.Map{
		"Articles":        items,
		"Favorites":       favorites,
		"Keywords":        all,
		"State":           state,
		"Pagination":      pagination,
		"HasFilter":       len(state.Keywords) > 0,
		"FilterAllURL":    view.ReadFilterURL(state, view.ReadFilterAll),
		"FilterUnreadURL": view.ReadFilterURL(state, view.ReadFilterUnread),
		"FilterReadURL":   view.ReadFilterURL(state, view.ReadFilterRead),
		"SortDescURL":     view.SortURL(state, view.SortDesc),
		"SortAscURL":      view.SortURL(state, view.SortAsc),
		"PageURLs":        pageURLs(state, pagination),
		"PrevURL":         view.PageURL(state, pagination.PrevPage()),
		"NextURL":         view.PageURL(state, pagination.NextPage()),
	}, h.cfg))
}

// resolveState normalizes the request's query parameters into a view state.
func resolveState(c fiber.Ctx) view.State {
	// keyword is repeatable; fiber's Query only returns the first value.
	var keywords []string
	for _, k := range c.RequestCtx().QueryArgs().PeekMulti("keyword") {
		keywords = append(keywords, string(k))
	}

	return view.Resolve(keywords, c.Query("read_filter"), c.Query("sort"), c.Query("page"))
}

// pageURL pairs a page number with its link for the pagination footer.
type pageURL struct {
	Page    int
	URL     string
	Current bool
}

func pageURLs(state view.State, p view.Pagination) []pageURL {
	urls := make([]pageURL, 0, p.TotalPages)
	for _, n := range p.Pages() {
		urls = append(urls, pageURL{
			Page:    n,
			URL:     view.PageURL(state, n),
			Current: n == p.Page,
		})
	}
	return urls
}
