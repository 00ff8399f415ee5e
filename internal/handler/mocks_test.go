package handler

import (
	"context"

	"quran-reader/internal/domain"
)

// Mock coordinator used by handler package tests.
type mockCoordinator struct {
	surahs       []domain.Surah
	currentSurah *domain.SurahDetail
	loading      bool
	lastError    string
	preferences  domain.Preferences
	bookmarks    []domain.Bookmark

	fetchSurahsErr error
	fetchDetailErr error
	fetchedDetail  int
	fontSizeErr    error
	removeErr      error
}

func newMockCoordinator() *mockCoordinator {
	return &mockCoordinator{preferences: domain.DefaultPreferences(false)}
}

func (m *mockCoordinator) FetchSurahs(ctx context.Context) error {
	return m.fetchSurahsErr
}

func (m *mockCoordinator) FetchSurahDetail(ctx context.Context, number int) error {
	m.fetchedDetail = number
	return m.fetchDetailErr
}

func (m *mockCoordinator) Surahs() []domain.Surah { return m.surahs }

func (m *mockCoordinator) SearchSurahs(query string) []domain.Surah {
	if query == "" {
		return m.surahs
	}
	// Handler tests only care that the query is passed through, not the
	// filter semantics; those live in the service tests.
	return m.surahs[:0]
}

func (m *mockCoordinator) CurrentSurah() *domain.SurahDetail { return m.currentSurah }
func (m *mockCoordinator) Loading() bool                     { return m.loading }
func (m *mockCoordinator) LastError() string                 { return m.lastError }

func (m *mockCoordinator) Preferences() domain.Preferences { return m.preferences }

func (m *mockCoordinator) ToggleDarkMode() domain.Preferences {
	m.preferences.DarkMode = !m.preferences.DarkMode
	return m.preferences
}

func (m *mockCoordinator) SetFontSize(size domain.FontSize) (domain.Preferences, error) {
	if m.fontSizeErr != nil {
		return domain.Preferences{}, m.fontSizeErr
	}
	m.preferences.FontSize = size
	return m.preferences, nil
}

func (m *mockCoordinator) Bookmarks() []domain.Bookmark { return m.bookmarks }

func (m *mockCoordinator) AddBookmark(surahNumber int, surahName string, verseNumber int, verseText string) domain.Bookmark {
	b := domain.NewBookmark(surahNumber, surahName, verseNumber, verseText)
	m.bookmarks = append([]domain.Bookmark{b}, m.bookmarks...)
	return b
}

func (m *mockCoordinator) RemoveBookmark(surahNumber, verseNumber int) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	kept := m.bookmarks[:0]
	for _, b := range m.bookmarks {
		if !b.Matches(surahNumber, verseNumber) {
			kept = append(kept, b)
		}
	}
	m.bookmarks = kept
	return nil
}

func (m *mockCoordinator) IsBookmarked(surahNumber, verseNumber int) bool {
	for _, b := range m.bookmarks {
		if b.Matches(surahNumber, verseNumber) {
			return true
		}
	}
	return false
}
