package domain

import "errors"

// Domain errors
var (
	ErrSurahNotFound    = errors.New("surah not found")
	ErrInvalidSurahNum  = errors.New("surah number must be between 1 and 114")
	ErrInvalidFontSize  = errors.New("font size must be small, medium or large")
	ErrBookmarkNotFound = errors.New("bookmark not found")
	ErrNothingPlaying   = errors.New("no audio stream is active")
	ErrStoreUnavailable = errors.New("preference store unavailable")
)
