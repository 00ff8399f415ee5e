package repository

import (
	"encoding/json"
	"fmt"

	"quran-reader/internal/domain"
	apperrors "quran-reader/pkg/errors"
)

// SupabasePreferenceStore implements the domain.PreferenceStore interface on
// top of a hosted key-value table, for deployments where the reader state
// should follow a device id instead of living on the local disk. Rows are
// keyed (device_id, key) and hold the same JSON records the file store writes.
type SupabasePreferenceStore struct {
	supabaseClient domain.SupabaseClient
	deviceID       string
	prefersDark    bool
	logger         domain.Logger
}

// NewSupabasePreferenceStore creates a Supabase-backed preference store
func NewSupabasePreferenceStore(supabaseClient domain.SupabaseClient, config domain.Config, logger domain.Logger) domain.PreferenceStore {
	return &SupabasePreferenceStore{
		supabaseClient: supabaseClient,
		deviceID:       config.GetDeviceID(),
		prefersDark:    config.GetPrefersDarkMode(),
		logger:         logger,
	}
}

// LoadPreferences reads the settings record, degrading to defaults on any failure
func (s *SupabasePreferenceStore) LoadPreferences() (domain.Preferences, error) {
	defaults := domain.DefaultPreferences(s.prefersDark)

	raw, err := s.read(settingsKey)
	if err != nil || raw == nil {
		if err != nil {
			s.logger.Warn("Failed to read settings, using defaults", "error", err)
		}
		return defaults, nil
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(raw, &prefs); err != nil || !prefs.FontSize.Valid() {
		s.logger.Warn("Corrupt settings record, using defaults", "device_id", s.deviceID)
		return defaults, nil
	}
	return prefs, nil
}

// SavePreferences overwrites the settings record
func (s *SupabasePreferenceStore) SavePreferences(prefs domain.Preferences) error {
	return s.write(settingsKey, prefs)
}

// LoadBookmarks reads the bookmark record, degrading to an empty sequence on any failure
func (s *SupabasePreferenceStore) LoadBookmarks() ([]domain.Bookmark, error) {
	raw, err := s.read(bookmarksKey)
	if err != nil || raw == nil {
		if err != nil {
			s.logger.Warn("Failed to read bookmarks, starting empty", "error", err)
		}
		return []domain.Bookmark{}, nil
	}

	var bookmarks []domain.Bookmark
	if err := json.Unmarshal(raw, &bookmarks); err != nil {
		s.logger.Warn("Corrupt bookmark record, starting empty", "device_id", s.deviceID)
		return []domain.Bookmark{}, nil
	}
	return bookmarks, nil
}

// SaveBookmarks overwrites the bookmark record
func (s *SupabasePreferenceStore) SaveBookmarks(bookmarks []domain.Bookmark) error {
	return s.write(bookmarksKey, bookmarks)
}

func (s *SupabasePreferenceStore) read(key string) (json.RawMessage, error) {
	client := s.supabaseClient.DB()
	if client == nil {
		return nil, domain.ErrStoreUnavailable
	}

	data, _, err := client.From("device_state").
		Select("value", "", false).
		Eq("device_id", s.deviceID).
		Eq("key", key).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}

	var rows []struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].Value, nil
}

func (s *SupabasePreferenceStore) write(key string, value interface{}) error {
	client := s.supabaseClient.DB()
	if client == nil {
		return apperrors.NewPersistenceError("store unavailable", domain.ErrStoreUnavailable)
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return apperrors.NewPersistenceError("failed to encode "+key, err)
	}

	row := map[string]interface{}{
		"device_id": s.deviceID,
		"key":       key,
		"value":     string(encoded),
	}

	// Upsert on (device_id, key): every save fully overwrites the prior record.
	_, _, err = client.From("device_state").Insert(row, true, "device_id,key", "", "").Execute()
	if err != nil {
		return apperrors.NewPersistenceError("failed to write "+key, err)
	}
	return nil
}
