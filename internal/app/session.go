package app

import (
	"math/rand/v2"
	"time"

	"conway-life/internal/core"
	"conway-life/internal/life"
)

// Mode identifies which screen the application is on.
type Mode int

const (
	ModeTitle Mode = iota
	ModeRunning
	ModeTerminated
)

// Signal is a state-machine input, decoupled from the key that produced it.
type Signal int

const (
	SignalStart Signal = iota
	SignalRestart
	SignalQuit
)

// Session owns the interactive state machine: the current mode, the board,
// and the generation statistics. It never touches the windowing layer, so it
// runs and tests headlessly.
type Session struct {
	cols, rows int
	deadChance float64

	mode  Mode
	board *life.Board
	rng   *rand.Rand
	stats *Stats
}

// NewSession builds a session from a validated configuration. A zero seed is
// replaced with the current clock.
func NewSession(cfg *Config) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		cols:       cfg.Cols(),
		rows:       cfg.Rows(),
		deadChance: cfg.DeadChance,
		mode:       ModeTitle,
		rng:        core.NewRNG(seed).Source(),
		stats:      NewStats(),
	}
}

// Mode returns the current state-machine mode.
func (s *Session) Mode() Mode { return s.mode }

// Board returns the active board, nil outside a running game.
func (s *Session) Board() *life.Board { return s.board }

// Generation returns how many steps the current game has advanced.
func (s *Session) Generation() int { return s.stats.Generations() }

// Stats exposes the running-game statistics.
func (s *Session) Stats() *Stats { return s.stats }

// Done reports whether the session has terminated.
func (s *Session) Done() bool { return s.mode == ModeTerminated }

// Apply feeds one input signal through the state machine and reports whether
// it changed the session. Signals that do not apply to the current mode are
// ignored.
func (s *Session) Apply(sig Signal) bool {
	switch sig {
	case SignalStart:
		if s.mode != ModeTitle {
			return false
		}
		s.board = life.New(s.cols, s.rows)
		s.board.Seed(s.rng, s.deadChance)
		s.stats.Reset()
		s.mode = ModeRunning
		return true
	case SignalRestart:
		if s.mode != ModeRunning {
			return false
		}
		s.board = nil
		s.mode = ModeTitle
		return true
	case SignalQuit:
		s.mode = ModeTerminated
		return true
	}
	return false
}

// Advance computes the next generation. Outside of a running game it is a
// no-op.
func (s *Session) Advance() {
	if s.mode != ModeRunning {
		return
	}
	s.board.Step()
	s.stats.Record(s.board.Population())
}
