// Package platform holds what the window and terminal front ends share.
package platform

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/indspenceable/gosu/internal/storage"
)

// Muter toggles the sound cue.
type Muter interface {
	ToggleMute() bool
}

// Session follows one player's run so its score can be stored once the
// player leaves, however they leave.
type Session struct {
	mu      sync.Mutex
	store   *storage.Store
	logger  *log.Logger
	run     storage.Run
	started time.Time
	saved   bool
}

// NewSession starts timing a run. store may be nil to play without saving.
func NewSession(store *storage.Store, logger *log.Logger, gameID, source, player string) *Session {
	return &Session{
		store:  store,
		logger: logger,
		run: storage.Run{
			GameID: gameID,
			Source: source,
			Player: player,
		},
		started: time.Now(),
	}
}

// Record notes the latest score.
func (s *Session) Record(score int) {
	s.mu.Lock()
	s.run.Score = score
	s.mu.Unlock()
}

// Score returns the latest recorded score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run.Score
}

// Finish stops the clock and stores the run if it scored. Only the first
// call saves; later calls return the same run. saved reports whether the run
// is in the store.
func (s *Session) Finish() (run storage.Run, saved bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run.Duration == 0 {
		s.run.Duration = time.Since(s.started)
	}
	if s.saved || s.run.Score <= 0 || s.store == nil {
		return s.run, s.saved
	}

	if _, err := s.store.SaveScore(s.run); err != nil {
		s.logger.Warn("could not save score", "error", err, "score", s.run.Score)
		return s.run, false
	}
	s.saved = true
	s.logger.Info("score saved",
		"score", s.run.Score,
		"player", s.run.Player,
		"source", s.run.Source,
		"duration", s.run.Duration.Round(time.Second),
	)
	return s.run, true
}
