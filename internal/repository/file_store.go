package repository

import (
	"encoding/json"
	"os"
	"path/filepath"

	"quran-reader/internal/domain"
	apperrors "quran-reader/pkg/errors"
)

// Storage keys shared by every store backend.
const (
	settingsKey  = "quran-settings"
	bookmarksKey = "quran-bookmarks"
)

// FilePreferenceStore implements the domain.PreferenceStore interface on top
// of two JSON records in a device-local data directory. Each save fully
// overwrites the prior record; there are no partial writes and no versioning.
type FilePreferenceStore struct {
	dataPath    string
	prefersDark bool
	logger      domain.Logger
}

// NewFilePreferenceStore creates a file-backed preference store
func NewFilePreferenceStore(config domain.Config, logger domain.Logger) domain.PreferenceStore {
	return &FilePreferenceStore{
		dataPath:    config.GetDataPath(),
		prefersDark: config.GetPrefersDarkMode(),
		logger:      logger,
	}
}

// LoadPreferences reads the settings record. A missing or unparseable record
// silently degrades to the defaults; it never surfaces to the user.
func (s *FilePreferenceStore) LoadPreferences() (domain.Preferences, error) {
	defaults := domain.DefaultPreferences(s.prefersDark)

	data, err := os.ReadFile(s.keyPath(settingsKey))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read settings, using defaults", "error", err)
		}
		return defaults, nil
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		s.logger.Warn("Corrupt settings record, using defaults", "error", err)
		return defaults, nil
	}
	if !prefs.FontSize.Valid() {
		s.logger.Warn("Stored font size is invalid, using defaults", "fontSize", prefs.FontSize)
		return defaults, nil
	}
	return prefs, nil
}

// SavePreferences overwrites the settings record
func (s *FilePreferenceStore) SavePreferences(prefs domain.Preferences) error {
	return s.write(settingsKey, prefs)
}

// LoadBookmarks reads the bookmark record, falling back to an empty sequence
func (s *FilePreferenceStore) LoadBookmarks() ([]domain.Bookmark, error) {
	data, err := os.ReadFile(s.keyPath(bookmarksKey))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read bookmarks, starting empty", "error", err)
		}
		return []domain.Bookmark{}, nil
	}

	var bookmarks []domain.Bookmark
	if err := json.Unmarshal(data, &bookmarks); err != nil {
		s.logger.Warn("Corrupt bookmark record, starting empty", "error", err)
		return []domain.Bookmark{}, nil
	}
	return bookmarks, nil
}

// SaveBookmarks overwrites the bookmark record
func (s *FilePreferenceStore) SaveBookmarks(bookmarks []domain.Bookmark) error {
	return s.write(bookmarksKey, bookmarks)
}

func (s *FilePreferenceStore) keyPath(key string) string {
	return filepath.Join(s.dataPath, key+".json")
}

func (s *FilePreferenceStore) write(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return apperrors.NewPersistenceError("failed to encode "+key, err)
	}

	if err := os.MkdirAll(s.dataPath, 0o755); err != nil {
		return apperrors.NewPersistenceError("failed to create data directory", err)
	}
	if err := os.WriteFile(s.keyPath(key), data, 0o644); err != nil {
		return apperrors.NewPersistenceError("failed to write "+key, err)
	}
	return nil
}
