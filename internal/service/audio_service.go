package service

import (
	"sync"

	"quran-reader/internal/domain"
)

// AudioManager enforces the single-active-stream policy: at most one audio
// stream plays at a time, and starting playback stops whichever stream was
// active before. It tracks the current handle explicitly instead of scanning
// live players.
type AudioManager struct {
	mu      sync.Mutex
	current domain.AudioPlayer
	url     string
	logger  domain.Logger
}

// NewAudioManager creates a new audio playback manager
func NewAudioManager(logger domain.Logger) *AudioManager {
	return &AudioManager{logger: logger}
}

// Play starts the given stream, stopping the previously active one first.
func (m *AudioManager) Play(player domain.AudioPlayer, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && m.current != player {
		m.current.Pause()
	}

	if err := player.Play(url); err != nil {
		m.logger.Error("Audio playback failed", err, "url", url)
		return err
	}

	m.current = player
	m.url = url
	player.OnEnded(func() { m.clear(player) })

	m.logger.Debug("Audio playback started", "url", url)
	return nil
}

// Stop pauses the active stream, if any.
func (m *AudioManager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return domain.ErrNothingPlaying
	}
	m.current.Pause()
	m.current = nil
	m.url = ""
	return nil
}

// NowPlaying returns the URL of the active stream and whether one is active.
func (m *AudioManager) NowPlaying() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.url, m.current != nil
}

// clear drops the current handle when the stream it belongs to has ended.
// A stream that was already replaced must not clear its successor.
func (m *AudioManager) clear(player domain.AudioPlayer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == player {
		m.current = nil
		m.url = ""
	}
}

// StatePlayer is the server-side domain.AudioPlayer: the service does not
// render audio itself, it tracks playback state on behalf of a client that
// streams the URL it is handed back.
type StatePlayer struct {
	mu      sync.Mutex
	playing bool
	onEnded func()
}

// NewStatePlayer creates a state-tracking audio player
func NewStatePlayer() *StatePlayer {
	return &StatePlayer{}
}

// Play marks the stream as active
func (p *StatePlayer) Play(url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = true
	return nil
}

// Pause marks the stream as stopped
func (p *StatePlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}

// OnEnded registers the end-of-stream callback
func (p *StatePlayer) OnEnded(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onEnded = fn
}

// Playing reports whether the stream is active
func (p *StatePlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// End signals that the stream finished on its own.
func (p *StatePlayer) End() {
	p.mu.Lock()
	p.playing = false
	fn := p.onEnded
	p.mu.Unlock()

	if fn != nil {
		fn()
	}
}
