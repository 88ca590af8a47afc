// Package registry maps game IDs to factories. Games register themselves
// in init() so the CLI, the title menu and the SSH server can build a
// fresh instance per session without importing the game package.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Game is what the terminal platform drives: it steps a game once per tick
// with semantic input and asks it to draw into a character screen.
type Game interface {
	// ID returns a unique identifier, also used as the score table key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new session sized to the terminal.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the score, lives and game-over status.
	State() core.GameState
}

// Factory builds a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
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

// Title returns the display name of a registered game, or the ID itself
// when nothing is registered under it.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := entries[id]; ok {
		return e.title
	}
	return id
}

// Exists reports whether a game is registered under id.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
