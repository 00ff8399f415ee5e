package handler

import (
	"errors"
	"fmt"
	"net/http"

	"quran-reader/internal/config"
	"quran-reader/internal/domain"
	"quran-reader/internal/service"
	apperrors "quran-reader/pkg/errors"
)

// DefaultAudioQuality selects the default full-surah reciter variant.
const DefaultAudioQuality = "05"

// playRequest selects what to play: a full surah at a quality variant, or a
// single verse when verseNumber is set.
type playRequest struct {
	SurahNumber int    `json:"surahNumber" validate:"required,gte=1,lte=114"`
	VerseNumber int    `json:"verseNumber" validate:"omitempty,gte=1"`
	Quality     string `json:"quality" validate:"omitempty,len=2,number"`
}

// PlayerHandler handles audio playback HTTP requests. It resolves the stream
// URL and registers it with the audio manager, which enforces the
// one-active-stream policy; the client streams the URL it gets back.
type PlayerHandler struct {
	coordinator domain.QuranCoordinator
	gateway     domain.ContentGateway
	manager     *service.AudioManager
	logger      domain.Logger
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(container *config.Container, logger domain.Logger) *PlayerHandler {
	return &PlayerHandler{
		coordinator: container.QuranService,
		gateway:     container.Gateway,
		manager:     container.AudioManager,
		logger:      logger,
	}
}

// Play starts playback of a surah or a single verse
func (h *PlayerHandler) Play(w http.ResponseWriter, r *http.Request) {
	var req playRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeAppError(w, err)
		return
	}
	if req.Quality == "" {
		req.Quality = DefaultAudioQuality
	}

	url, err := h.resolveURL(r, &req)
	if err != nil {
		h.logger.Error("Failed to resolve audio stream", err, "surah", req.SurahNumber, "verse", req.VerseNumber)
		writeAppError(w, err)
		return
	}

	if err := h.manager.Play(service.NewStatePlayer(), url); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to start playback")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// Stop stops the active stream
func (h *PlayerHandler) Stop(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Stop(); err != nil {
		if errors.Is(err, domain.ErrNothingPlaying) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to stop playback")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Playback stopped"})
}

// NowPlaying reports the active stream, if any
func (h *PlayerHandler) NowPlaying(w http.ResponseWriter, r *http.Request) {
	url, active := h.manager.NowPlaying()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"playing": active,
		"url":     url,
	})
}

// resolveURL maps the play request onto a stream URL. The resident surah
// detail is reused when it matches; anything else costs one gateway fetch.
func (h *PlayerHandler) resolveURL(r *http.Request, req *playRequest) (string, error) {
	detail := h.coordinator.CurrentSurah()
	if detail == nil || detail.Number != req.SurahNumber {
		if err := h.coordinator.FetchSurahDetail(r.Context(), req.SurahNumber); err != nil {
			return "", err
		}
		detail = h.coordinator.CurrentSurah()
	}
	if detail == nil || detail.Number != req.SurahNumber {
		return "", apperrors.NewNotFoundError(fmt.Sprintf("surah %d is not available", req.SurahNumber))
	}

	if req.VerseNumber == 0 {
		url, ok := detail.AudioFull[req.Quality]
		if !ok {
			return "", apperrors.NewNotFoundError(fmt.Sprintf("no audio variant %q for surah %d", req.Quality, req.SurahNumber))
		}
		return url, nil
	}

	for _, verse := range detail.Verses {
		if verse.Number == req.VerseNumber {
			return h.gateway.VerseAudioURL(verse.ID), nil
		}
	}
	return "", apperrors.NewNotFoundError(fmt.Sprintf("surah %d has no verse %d", req.SurahNumber, req.VerseNumber))
}
