package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Quit     bool // Whether the game asked the platform to exit
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
}

// Stats holds the lives and raw score shared by every mode of a session.
// Only the active mode simulator writes to it.
type Stats struct {
	Lives int
	Score int
}

// LoseLife removes one life. Losing a life with none left is a programming
// error; simulators freeze once lives reach zero.
func (s *Stats) LoseLife() {
	if s.Lives <= 0 {
		panic("core: LoseLife called with no lives left")
	}
	s.Lives--
}

// Dead reports whether no lives remain.
func (s *Stats) Dead() bool {
	return s.Lives <= 0
}
