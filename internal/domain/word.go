package domain

import (
	"strings"
	"time"
)

// Word is a catalog entry shared by all users
type Word struct {
	ID          int64
	Word        string
	Translation string
	CreatedAt   time.Time
}

// UserWord is a user's own copy of a word-translation pair
type UserWord struct {
	ID          int64
	UserID      int64
	Word        string
	Translation string
	CreatedAt   time.Time
}

// WordPair is a bare word-translation pair
type WordPair struct {
	Word        string
	Translation string
}

// DefaultCatalog is seeded into an empty catalog on startup
var DefaultCatalog = []WordPair{
	{Word: "Лес", Translation: "Forest"},
	{Word: "Утро", Translation: "Morning"},
	{Word: "Вечер", Translation: "Evening"},
	{Word: "Небо", Translation: "Sky"},
	{Word: "Солнце", Translation: "Sun"},
	{Word: "Ночь", Translation: "Night"},
	{Word: "Река", Translation: "River"},
	{Word: "Гора", Translation: "Mountain"},
	{Word: "Луна", Translation: "Moon"},
	{Word: "Море", Translation: "Sea"},
}

// CleanWord trims the word and collapses inner whitespace
func CleanWord(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// WordKey returns the normalized form used for catalog uniqueness
func WordKey(s string) string {
	return strings.ToLower(CleanWord(s))
}
