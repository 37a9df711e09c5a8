package models

// KeywordCount is a keyword label with the number of articles carrying it.
type KeywordCount struct {
	Keyword  string
	Count    int64
	Favorite bool
}
