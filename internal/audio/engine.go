// Package audio plays the collect cue through the system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/indspenceable/gosu/internal/config"
)

// SampleRate is the rate every sample is stored and mixed at.
const SampleRate = beep.SampleRate(44100)

// Engine owns the speaker. Until Init succeeds every sample plays silently.
type Engine struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	logger      *log.Logger
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewEngine creates an engine; the speaker is not opened until Init.
func NewEngine(cfg config.AudioConfig, logger *log.Logger) *Engine {
	return &Engine{
		cfg:    cfg,
		logger: logger,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker. Disabled audio is not an error.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if !e.cfg.Enabled {
		e.logger.Info("audio disabled")
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(SampleRate, SampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	e.logger.Debug("audio initialized", "rate", int(SampleRate))
	return nil
}

// Close stops all sounds and closes the speaker.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	e.initialized = false
}

// Active reports whether sounds currently reach the speaker.
func (e *Engine) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized && !e.muted
}

// Muted reports whether playback is muted.
func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// ToggleMute flips the mute flag and returns the new value.
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = !e.muted
	return e.muted
}

// play queues a streamer on the mixer.
func (e *Engine) play(s beep.Streamer) {
	if !e.Active() {
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}
