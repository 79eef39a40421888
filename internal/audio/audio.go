// Package audio defines the named sound cues the simulators emit and the
// sinks that receive them. Cues are fire-and-forget: a sink never reports
// back to the simulation.
package audio

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Cue names a sound effect.
type Cue int

const (
	CueJump Cue = iota
	CueCoin
	CuePowerUp
	CueHit
	CueEngine
	CueShoot
	CueBlast
	CueRunnerJump
)

// String returns the cue's name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCoin:
		return "coin"
	case CuePowerUp:
		return "powerup"
	case CueHit:
		return "hit"
	case CueEngine:
		return "engine-tick"
	case CueShoot:
		return "shoot"
	case CueBlast:
		return "blast"
	case CueRunnerJump:
		return "runner-jump"
	default:
		return "unknown"
	}
}

// Sink receives cues. Play must not block the tick loop.
type Sink interface {
	Play(c Cue)
}

// Nop discards every cue.
type Nop struct{}

// Play implements Sink.
func (Nop) Play(Cue) {}

// OrNop returns s, or Nop when s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop{}
	}
	return s
}

// Recorder keeps every cue it receives, in order.
type Recorder struct {
	mu   sync.Mutex
	cues []Cue
}

// Play implements Sink.
func (r *Recorder) Play(c Cue) {
	r.mu.Lock()
	r.cues = append(r.cues, c)
	r.mu.Unlock()
}

// Cues returns a copy of the recorded cues.
func (r *Recorder) Cues() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Cue(nil), r.cues...)
}

// Count returns how many times c was played.
func (r *Recorder) Count(c Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

// Reset forgets all recorded cues.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.cues = r.cues[:0]
	r.mu.Unlock()
}

// Logger writes each cue as a debug log line.
type Logger struct {
	log *log.Logger
}

// NewLogger returns a sink logging to l.
func NewLogger(l *log.Logger) *Logger {
	return &Logger{log: l}
}

// Play implements Sink.
func (s *Logger) Play(c Cue) {
	s.log.Debug("cue", "name", c.String())
}

// Bell rings the terminal bell for the cues worth interrupting the player for.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell returns a sink writing BEL to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play implements Sink.
func (b *Bell) Play(c Cue) {
	switch c {
	case CueHit, CueBlast:
	default:
		return
	}
	b.mu.Lock()
	_, _ = b.w.Write([]byte{'\a'})
	b.mu.Unlock()
}

// Multi fans a cue out to several sinks.
type Multi []Sink

// Play implements Sink.
func (m Multi) Play(c Cue) {
	for _, s := range m {
		s.Play(c)
	}
}
