package domain

import "time"

// Bookmark is a user-created reference to a (surah, verse) pair. The surah
// name and verse text are captured at bookmark time and are not kept in sync
// with the upstream source.
type Bookmark struct {
	SurahNumber int    `json:"surahNumber"`
	SurahName   string `json:"surahName"`
	VerseNumber int    `json:"verseNumber"`
	VerseText   string `json:"verseText"`
	Timestamp   int64  `json:"timestamp"`
}

// NewBookmark captures a bookmark with the current creation time.
func NewBookmark(surahNumber int, surahName string, verseNumber int, verseText string) Bookmark {
	return Bookmark{
		SurahNumber: surahNumber,
		SurahName:   surahName,
		VerseNumber: verseNumber,
		VerseText:   verseText,
		Timestamp:   time.Now().UnixMilli(),
	}
}

// Matches reports whether the bookmark refers to the given (surah, verse) key.
func (b Bookmark) Matches(surahNumber, verseNumber int) bool {
	return b.SurahNumber == surahNumber && b.VerseNumber == verseNumber
}
