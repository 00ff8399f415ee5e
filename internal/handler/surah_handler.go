package handler

import (
	"net/http"
	"strconv"

	"quran-reader/internal/config"
	"quran-reader/internal/domain"

	"github.com/gorilla/mux"
)

// SurahHandler handles surah list and detail HTTP requests
type SurahHandler struct {
	coordinator domain.QuranCoordinator
	logger      domain.Logger
}

// NewSurahHandler creates a new surah handler
func NewSurahHandler(container *config.Container, logger domain.Logger) *SurahHandler {
	return &SurahHandler{
		coordinator: container.QuranService,
		logger:      logger,
	}
}

// ListSurahs handles listing all surahs, optionally filtered by ?q=
func (h *SurahHandler) ListSurahs(w http.ResponseWriter, r *http.Request) {
	if err := h.coordinator.FetchSurahs(r.Context()); err != nil {
		h.logger.Error("Failed to fetch surah list", err)
		writeAppError(w, err)
		return
	}

	query := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  h.coordinator.SearchSurahs(query),
		"query": query,
	})
}

// GetSurah handles fetching one surah with its verses
func (h *SurahHandler) GetSurah(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "surah number must be an integer")
		return
	}
	if !domain.ValidSurahNumber(number) {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidSurahNum.Error())
		return
	}

	if err := h.coordinator.FetchSurahDetail(r.Context(), number); err != nil {
		h.logger.Error("Failed to fetch surah detail", err, "surah", number)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": h.coordinator.CurrentSurah(),
	})
}
