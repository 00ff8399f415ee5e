package service

import (
	"context"
	"sync"

	"quran-reader/internal/domain"
)

// Notification messages emitted by bookmark mutations.
const (
	msgVerseBookmarked = "Verse bookmarked"
	msgBookmarkRemoved = "Bookmark removed"
)

// QuranService is the process-wide state coordinator: it holds the loaded
// content, the loading/error status, the display preferences and the bookmark
// sequence, and keeps the in-memory state consistent with the persistence
// layer. It is constructed once at startup and injected into consumers.
type QuranService struct {
	gateway  domain.ContentGateway
	store    domain.PreferenceStore
	notifier domain.Notifier
	logger   domain.Logger

	mu           sync.Mutex
	surahs       []domain.Surah
	currentSurah *domain.SurahDetail
	loading      bool
	lastError    string
	preferences  domain.Preferences
	bookmarks    []domain.Bookmark

	// Request generations per logical resource. A response is applied only
	// when its generation still matches the latest issued request, so a slow
	// stale response can never overwrite a newer one.
	listGeneration   uint64
	detailGeneration uint64
}

// NewQuranService creates the coordinator and hydrates preferences and
// bookmarks from the store. Load failures have already degraded to defaults
// inside the store, so construction cannot fail on corrupt local state.
func NewQuranService(
	gateway domain.ContentGateway,
	store domain.PreferenceStore,
	notifier domain.Notifier,
	logger domain.Logger,
) *QuranService {
	prefs, err := store.LoadPreferences()
	if err != nil {
		logger.Warn("Failed to load preferences, using defaults", "error", err)
		prefs = domain.DefaultPreferences(false)
	}
	bookmarks, err := store.LoadBookmarks()
	if err != nil {
		logger.Warn("Failed to load bookmarks, starting empty", "error", err)
		bookmarks = []domain.Bookmark{}
	}

	return &QuranService{
		gateway:     gateway,
		store:       store,
		notifier:    notifier,
		logger:      logger,
		preferences: prefs,
		bookmarks:   bookmarks,
	}
}

// FetchSurahs loads the surah list from the gateway. On failure the previous
// list is left untouched and the error message is recorded; on success the
// list is replaced. Exactly one outcome is applied per invocation.
func (s *QuranService) FetchSurahs(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.listGeneration++
	generation := s.listGeneration
	s.mu.Unlock()

	surahs, err := s.gateway.ListSurahs(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.listGeneration {
		s.logger.Debug("Discarding stale surah list response", "generation", generation)
		return nil
	}
	s.loading = false

	if err != nil {
		s.lastError = err.Error()
		s.notifier.Error(s.lastError)
		return err
	}
	s.surahs = surahs
	return nil
}

// FetchSurahDetail loads one surah with its verses, replacing the previously
// resident detail. The loading/error contract matches FetchSurahs, scoped to
// the current-detail resource.
func (s *QuranService) FetchSurahDetail(ctx context.Context, number int) error {
	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.detailGeneration++
	generation := s.detailGeneration
	s.mu.Unlock()

	detail, err := s.gateway.GetSurahDetail(ctx, number)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.detailGeneration {
		s.logger.Debug("Discarding stale surah detail response", "surah", number, "generation", generation)
		return nil
	}
	s.loading = false

	if err != nil {
		s.lastError = err.Error()
		s.notifier.Error(s.lastError)
		return err
	}
	s.currentSurah = detail
	return nil
}

// Surahs returns the loaded surah list
func (s *QuranService) Surahs() []domain.Surah {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Surah, len(s.surahs))
	copy(out, s.surahs)
	return out
}

// SearchSurahs returns the loaded list filtered by the given query
func (s *QuranService) SearchSurahs(query string) []domain.Surah {
	return FilterSurahs(s.Surahs(), query)
}

// CurrentSurah returns the resident surah detail, or nil when none is loaded
func (s *QuranService) CurrentSurah() *domain.SurahDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentSurah
}

// Loading reports whether a fetch is in flight
func (s *QuranService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the message of the last failed fetch, or "" after a
// successful one
func (s *QuranService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Preferences returns the current display settings
func (s *QuranService) Preferences() domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preferences
}

// ToggleDarkMode flips the dark-mode flag and persists immediately. The new
// settings are returned so the caller can apply them to its theming in the
// same step.
func (s *QuranService) ToggleDarkMode() domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.preferences.DarkMode = !s.preferences.DarkMode
	s.persistPreferences()
	return s.preferences
}

// SetFontSize validates and applies the font-size selector, persisting
// immediately.
func (s *QuranService) SetFontSize(size domain.FontSize) (domain.Preferences, error) {
	if !size.Valid() {
		return domain.Preferences{}, domain.ErrInvalidFontSize
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.preferences.FontSize = size
	s.persistPreferences()
	return s.preferences, nil
}

// Bookmarks returns the bookmark sequence, most recent first
func (s *QuranService) Bookmarks() []domain.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Bookmark, len(s.bookmarks))
	copy(out, s.bookmarks)
	return out
}

// AddBookmark prepends a bookmark for the given verse. The (surah, verse)
// pair is a unique key: adding an already-bookmarked verse is a no-op, so
// duplicates cannot accumulate. Persists immediately and emits a
// user-visible notification.
func (s *QuranService) AddBookmark(surahNumber int, surahName string, verseNumber int, verseText string) domain.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookmarks {
		if b.Matches(surahNumber, verseNumber) {
			s.notifier.Success(msgVerseBookmarked)
			return b
		}
	}

	bookmark := domain.NewBookmark(surahNumber, surahName, verseNumber, verseText)
	s.bookmarks = append([]domain.Bookmark{bookmark}, s.bookmarks...)
	s.persistBookmarks()
	s.notifier.Success(msgVerseBookmarked)
	return bookmark
}

// RemoveBookmark removes every entry matching the (surah, verse) key.
// Persists immediately and emits a user-visible notification.
func (s *QuranService) RemoveBookmark(surahNumber, verseNumber int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.bookmarks[:0]
	removed := false
	for _, b := range s.bookmarks {
		if b.Matches(surahNumber, verseNumber) {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	if !removed {
		return domain.ErrBookmarkNotFound
	}

	s.bookmarks = kept
	s.persistBookmarks()
	s.notifier.Success(msgBookmarkRemoved)
	return nil
}

// IsBookmarked reports whether the (surah, verse) pair is bookmarked. Pure
// lookup, no side effects.
func (s *QuranService) IsBookmarked(surahNumber, verseNumber int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookmarks {
		if b.Matches(surahNumber, verseNumber) {
			return true
		}
	}
	return false
}

// persistPreferences writes the settings record. A storage failure is logged
// and the session continues with in-memory state only.
func (s *QuranService) persistPreferences() {
	if err := s.store.SavePreferences(s.preferences); err != nil {
		s.logger.Error("Failed to persist preferences, continuing in-memory", err)
	}
}

// persistBookmarks writes the bookmark record under the same policy.
func (s *QuranService) persistBookmarks() {
	if err := s.store.SaveBookmarks(s.bookmarks); err != nil {
		s.logger.Error("Failed to persist bookmarks, continuing in-memory", err)
	}
}
