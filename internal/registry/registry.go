// Package registry maps game IDs to factories. Games register themselves
// from init(), so the CLI and the SSH server can list and start them
// without importing each one by name.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// Game is a fixed-tick simulation the terminal platform can run.
// Implementations hold no terminal or timing code: the platform maps keys
// to actions, drives Step at the tick rate and calls Render every frame.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// score history key ("chaos", "runner").
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new game. It is called before the first Step and
	// again when the player restarts after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick with the actions held
	// during that tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into a cleared screen.
	Render(dst *core.Screen)

	// State reports score and game over, pause and quit flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id. The title is read from a throwaway
// instance. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: f().Title()}, factory: f}
}

// List returns every registered game, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Lookup returns the description of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
