package db

import (
	"context"

	"feedreader/internal/models"
)

// KeywordCounts returns the most frequent article keywords with their
// frequencies, descending by count with alphabetical tiebreak.
func (d *DB) KeywordCounts(ctx context.Context, limit int) ([]models.KeywordCount, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT k.keyword, COUNT(*) AS freq,
		       EXISTS (SELECT 1 FROM favorite_keywords f WHERE f.keyword = k.keyword) AS favorite
		FROM articles, unnest(keywords) AS k(keyword)
		GROUP BY k.keyword
		ORDER BY freq DESC, k.keyword ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.KeywordCount
	for rows.Next() {
		var kc models.KeywordCount
		if err := rows.Scan(&kc.Keyword, &kc.Count, &kc.Favorite); err != nil {
			return nil, err
		}
		counts = append(counts, kc)
	}
	return counts, rows.Err()
}

// FavoriteKeywords returns every favorited keyword.
func (d *DB) FavoriteKeywords(ctx context.Context) ([]string, error) {
	rows, err := d.Pool.Query(ctx, `SELECT keyword FROM favorite_keywords ORDER BY keyword`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keywords = append(keywords, k)
	}
	return keywords, rows.Err()
}

// ToggleFavoriteKeyword flips the keyword's favorite flag and returns the new
// state: true when the keyword is now a favorite.
func (d *DB) ToggleFavoriteKeyword(ctx context.Context, keyword string) (bool, error) {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM favorite_keywords WHERE keyword = $1`, keyword)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	// Not a favorite yet; a concurrent insert is absorbed by the conflict
	// clause and the end state is still "favorited".
	_, err = d.Pool.Exec(ctx, `
		INSERT INTO favorite_keywords (keyword) VALUES ($1)
		ON CONFLICT (keyword) DO NOTHING
	`, keyword)
	if err != nil {
		return false, err
	}
	return true, nil
}
