package handler

import (
	"net/http"

	"quran-reader/internal/config"
	"quran-reader/internal/domain"
)

// fontSizeRequest is the payload for the font-size selector.
type fontSizeRequest struct {
	FontSize string `json:"fontSize" validate:"required,oneof=small medium large"`
}

// PreferenceHandler handles display preference HTTP requests
type PreferenceHandler struct {
	coordinator domain.QuranCoordinator
	logger      domain.Logger
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(container *config.Container, logger domain.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		coordinator: container.QuranService,
		logger:      logger,
	}
}

// GetPreferences handles reading the current display settings
func (h *PreferenceHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.coordinator.Preferences())
}

// ToggleDarkMode flips the dark-mode flag. The new settings are returned so
// the client can re-theme in the same round trip.
func (h *PreferenceHandler) ToggleDarkMode(w http.ResponseWriter, r *http.Request) {
	prefs := h.coordinator.ToggleDarkMode()
	h.logger.Debug("Dark mode toggled", "darkMode", prefs.DarkMode)
	writeJSON(w, http.StatusOK, prefs)
}

// SetFontSize applies the font-size selector
func (h *PreferenceHandler) SetFontSize(w http.ResponseWriter, r *http.Request) {
	var req fontSizeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	prefs, err := h.coordinator.SetFontSize(domain.FontSize(req.FontSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}
