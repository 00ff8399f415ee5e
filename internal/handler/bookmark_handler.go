package handler

import (
	"errors"
	"net/http"
	"strconv"

	"quran-reader/internal/config"
	"quran-reader/internal/domain"

	"github.com/gorilla/mux"
)

// addBookmarkRequest is the payload for bookmarking a verse.
type addBookmarkRequest struct {
	SurahNumber int    `json:"surahNumber" validate:"required,gte=1,lte=114"`
	SurahName   string `json:"surahName" validate:"required"`
	VerseNumber int    `json:"verseNumber" validate:"required,gte=1"`
	VerseText   string `json:"verseText"`
}

// BookmarkHandler handles bookmark HTTP requests
type BookmarkHandler struct {
	coordinator domain.QuranCoordinator
	logger      domain.Logger
}

// NewBookmarkHandler creates a new bookmark handler
func NewBookmarkHandler(container *config.Container, logger domain.Logger) *BookmarkHandler {
	return &BookmarkHandler{
		coordinator: container.QuranService,
		logger:      logger,
	}
}

// ListBookmarks returns the bookmark sequence, most recent first
func (h *BookmarkHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": h.coordinator.Bookmarks(),
	})
}

// AddBookmark bookmarks a verse
func (h *BookmarkHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	var req addBookmarkRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	bookmark := h.coordinator.AddBookmark(req.SurahNumber, req.SurahName, req.VerseNumber, req.VerseText)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"data":    bookmark,
		"message": "Verse bookmarked",
	})
}

// RemoveBookmark removes every bookmark matching the (surah, verse) key
func (h *BookmarkHandler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	surahNumber, verseNumber, ok := bookmarkKey(w, r)
	if !ok {
		return
	}

	if err := h.coordinator.RemoveBookmark(surahNumber, verseNumber); err != nil {
		if errors.Is(err, domain.ErrBookmarkNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("Failed to remove bookmark", err, "surah", surahNumber, "verse", verseNumber)
		writeError(w, http.StatusInternalServerError, "Failed to remove bookmark")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Bookmark removed"})
}

// IsBookmarked reports whether the (surah, verse) pair is bookmarked
func (h *BookmarkHandler) IsBookmarked(w http.ResponseWriter, r *http.Request) {
	surahNumber, verseNumber, ok := bookmarkKey(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{
		"bookmarked": h.coordinator.IsBookmarked(surahNumber, verseNumber),
	})
}

// bookmarkKey parses the (surah, verse) pair from the route variables.
func bookmarkKey(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	vars := mux.Vars(r)

	surahNumber, err := strconv.Atoi(vars["surah"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "surah number must be an integer")
		return 0, 0, false
	}
	verseNumber, err := strconv.Atoi(vars["verse"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "verse number must be an integer")
		return 0, 0, false
	}
	return surahNumber, verseNumber, true
}
