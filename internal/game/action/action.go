// Package action provides the hotkey-routed action system: invocable
// units of game logic and the per-turn hotkey registry, plus the built-in
// verbs (move, unlock, interact, take, inventory, help).
package action

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/brr-dev/zenith/internal/game/player"
	"github.com/brr-dev/zenith/internal/game/world"
)

// Game is the engine surface actions work against. The engine implements
// it; tests substitute lighter fakes.
type Game interface {
	world.Interactor
	// Player returns the session player.
	Player() *player.Player
	// SetCurrentRoom moves the player to the room with the given ID.
	// A missing room is a defensive no-op, not an error.
	SetCurrentRoom(id string)
	// Logger returns the engine logger for authoring diagnostics.
	Logger() *zap.Logger
}

// Func is the body of an action, invoked when its hotkey is dispatched.
type Func func(ctx context.Context) error

// Action is a named unit of game logic bound to one or more hotkey
// strings. Actions are constructed fresh each turn and hold no state.
type Action struct {
	hotkeys []string
	run     Func
}

// New builds an Action. Hotkeys are lowercased; matching is exact after
// the engine's input normalization.
func New(run Func, hotkeys ...string) *Action {
	keys := make([]string, len(hotkeys))
	for i, hk := range hotkeys {
		keys[i] = strings.ToLower(hk)
	}
	return &Action{hotkeys: keys, run: run}
}

// Hotkeys returns the hotkeys this action answers to.
func (a *Action) Hotkeys() []string { return a.hotkeys }

// Invoke runs the action body.
func (a *Action) Invoke(ctx context.Context) error { return a.run(ctx) }

// Map is a turn-scoped hotkey lookup, rebuilt every turn. Later
// registrations for the same hotkey silently shadow earlier ones.
type Map struct {
	actions map[string]*Action
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{actions: make(map[string]*Action)}
}

// Register binds every hotkey of the action, shadowing prior bindings.
func (m *Map) Register(a *Action) {
	for _, hk := range a.Hotkeys() {
		m.actions[hk] = a
	}
}

// Get looks up the action bound to a hotkey.
func (m *Map) Get(hotkey string) (*Action, bool) {
	a, ok := m.actions[hotkey]
	return a, ok
}

// Len returns the number of bound hotkeys.
func (m *Map) Len() int { return len(m.actions) }

// ForRoom aggregates the actions the current room offers: per exit a move
// (plus unlock while locked), per feature an interact (plus unlock while
// locked), per item a take. Colliding hotkeys resolve to the later
// registration; avoiding collisions is an authoring concern.
func ForRoom(g Game) *Map {
	m := NewMap()
	room := g.CurrentRoom()
	for _, exit := range room.Exits {
		m.Register(Move(g, exit))
		if exit.Lock.Locked {
			m.Register(Unlock(g, exit))
		}
	}
	for _, f := range room.Features {
		m.Register(Interact(g, f))
		if f.Lock.Locked {
			m.Register(Unlock(g, f))
		}
	}
	for _, item := range room.Items {
		m.Register(Take(g, item))
	}
	return m
}
