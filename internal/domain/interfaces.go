package domain

import "context"

// ContentGateway is the boundary to the remote Qur'an content API. Both
// operations are idempotent reads; every call re-fetches, there is no cache.
type ContentGateway interface {
	ListSurahs(ctx context.Context) ([]Surah, error)
	GetSurahDetail(ctx context.Context, number int) (*SurahDetail, error)
	VerseAudioURL(verseID int) string
}

// PreferenceStore persists the two device-local records: display settings
// and the bookmark sequence. Saves fully overwrite the prior value; loads
// fall back to defaults when the stored value is absent or fails to parse.
type PreferenceStore interface {
	LoadPreferences() (Preferences, error)
	SavePreferences(prefs Preferences) error
	LoadBookmarks() ([]Bookmark, error)
	SaveBookmarks(bookmarks []Bookmark) error
}

// AudioPlayer is the narrow capability contract over one playback stream.
// Implementations wrap whatever media primitive the target platform offers.
type AudioPlayer interface {
	Play(url string) error
	Pause()
	OnEnded(fn func())
}

// QuranCoordinator is the application state container: loaded content,
// loading/error status, preferences and bookmarks, with every mutation kept
// consistent with the persistence layer.
type QuranCoordinator interface {
	FetchSurahs(ctx context.Context) error
	FetchSurahDetail(ctx context.Context, number int) error
	Surahs() []Surah
	SearchSurahs(query string) []Surah
	CurrentSurah() *SurahDetail
	Loading() bool
	LastError() string

	Preferences() Preferences
	ToggleDarkMode() Preferences
	SetFontSize(size FontSize) (Preferences, error)

	Bookmarks() []Bookmark
	AddBookmark(surahNumber int, surahName string, verseNumber int, verseText string) Bookmark
	RemoveBookmark(surahNumber, verseNumber int) error
	IsBookmarked(surahNumber, verseNumber int) bool
}

// Notifier delivers user-visible notifications emitted by state mutations.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetQuranAPIBaseURL() string
	GetDataPath() string
	GetStoreBackend() string
	GetSupabaseURL() string
	GetSupabaseKey() string
	GetDeviceID() string
	GetPrefersDarkMode() bool
}
