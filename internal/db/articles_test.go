package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"feedreader/internal/db"
	"feedreader/internal/testutil"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedFilterFixtures(t *testing.T, database *db.DB) {
	t.Helper()
	testutil.CreateTestArticle(t, database, "https://example.org/a", "A", date("2026-08-20"), false, []string{"ai", "news"})
	testutil.CreateTestArticle(t, database, "https://example.org/b", "B", date("2026-08-19"), true, []string{"ai"})
	testutil.CreateTestArticle(t, database, "https://example.org/c", "C", date("2026-08-18"), false, []string{"news"})
	testutil.CreateTestArticle(t, database, "https://example.org/d", "D", date("2026-08-17"), true, []string{"ai", "news", "tech"})
}

func TestListArticles_KeywordAND(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()
	seedFilterFixtures(t, database)

	// An article must carry every selected keyword.
	articles, err := database.ListArticles(context.Background(), db.ArticleFilter{
		Keywords:   []string{"ai", "news"},
		ReadFilter: "all",
	}, 10, 0)
	if err != nil {
		t.Fatalf("ListArticles failed: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}
	for _, a := range articles {
		if !a.HasKeyword("ai") || !a.HasKeyword("news") {
			t.Errorf("article %s does not carry all selected keywords: %v", a.Link, a.Keywords)
		}
	}
}

func TestListArticles_ReadFilter(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()
	seedFilterFixtures(t, database)

	tests := []struct {
		name       string
		readFilter string
		want       int
	}{
		{"unread", db.ReadFilterUnread, 2},
		{"read", db.ReadFilterRead, 2},
		{"all", "all", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articles, err := database.ListArticles(context.Background(), db.ArticleFilter{ReadFilter: tt.readFilter}, 10, 0)
			if err != nil {
				t.Fatalf("ListArticles failed: %v", err)
			}
			if len(articles) != tt.want {
				t.Errorf("got %d articles, want %d", len(articles), tt.want)
			}
		})
	}
}

func TestListArticles_SortAndPaging(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()
	seedFilterFixtures(t, database)

	desc, err := database.ListArticles(context.Background(), db.ArticleFilter{ReadFilter: "all"}, 2, 0)
	if err != nil {
		t.Fatalf("ListArticles failed: %v", err)
	}
	if len(desc) != 2 {
		t.Fatalf("got %d articles, want 2 (limit)", len(desc))
	}
	if desc[0].Link != "https://example.org/a" {
		t.Errorf("first article = %s, want newest", desc[0].Link)
	}

	asc, err := database.ListArticles(context.Background(), db.ArticleFilter{ReadFilter: "all", SortAsc: true}, 2, 0)
	if err != nil {
		t.Fatalf("ListArticles failed: %v", err)
	}
	if asc[0].Link != "https://example.org/d" {
		t.Errorf("first ascending article = %s, want oldest", asc[0].Link)
	}

	page2, err := database.ListArticles(context.Background(), db.ArticleFilter{ReadFilter: "all"}, 2, 2)
	if err != nil {
		t.Fatalf("ListArticles failed: %v", err)
	}
	if len(page2) != 2 || page2[0].Link == desc[0].Link {
		t.Errorf("offset paging returned overlapping results: %v", page2)
	}
}

func TestCountArticles(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()
	seedFilterFixtures(t, database)

	count, err := database.CountArticles(context.Background(), db.ArticleFilter{
		Keywords:   []string{"ai"},
		ReadFilter: db.ReadFilterUnread,
	})
	if err != nil {
		t.Fatalf("CountArticles failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestToggleArticleRead(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	link := testutil.CreateTestArticle(t, database, "https://example.org/toggle", "Toggle", date("2026-08-20"), false, []string{"ai"})

	read, err := database.ToggleArticleRead(context.Background(), link)
	if err != nil {
		t.Fatalf("ToggleArticleRead failed: %v", err)
	}
	if !read {
		t.Error("first toggle should report read=true")
	}

	read, err = database.ToggleArticleRead(context.Background(), link)
	if err != nil {
		t.Fatalf("ToggleArticleRead failed: %v", err)
	}
	if read {
		t.Error("second toggle should report read=false")
	}
}

func TestToggleArticleRead_NotFound(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	_, err := database.ToggleArticleRead(context.Background(), "https://example.org/missing")
	if !errors.Is(err, db.ErrArticleNotFound) {
		t.Errorf("err = %v, want ErrArticleNotFound", err)
	}
}

func TestUpdateArticleKeywords(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	link := testutil.CreateTestArticle(t, database, "https://example.org/kw", "KW", date("2026-08-20"), false, []string{"AI", "href"})

	if err := database.UpdateArticleKeywords(context.Background(), link, []string{"ai"}); err != nil {
		t.Fatalf("UpdateArticleKeywords failed: %v", err)
	}

	a, err := database.GetArticle(context.Background(), link)
	if err != nil {
		t.Fatalf("GetArticle failed: %v", err)
	}
	if len(a.Keywords) != 1 || a.Keywords[0] != "ai" {
		t.Errorf("keywords = %v, want [ai]", a.Keywords)
	}

	err = database.UpdateArticleKeywords(context.Background(), "https://example.org/missing", []string{"x"})
	if !errors.Is(err, db.ErrArticleNotFound) {
		t.Errorf("err = %v, want ErrArticleNotFound", err)
	}
}
