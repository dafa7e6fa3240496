// Package engine runs the turn loop for one game session: entry
// narration, input normalization, hotkey dispatch, and zone transitions.
// One Engine serves one player over one console.
package engine

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brr-dev/zenith/internal/console"
	"github.com/brr-dev/zenith/internal/game/action"
	"github.com/brr-dev/zenith/internal/game/player"
	"github.com/brr-dev/zenith/internal/game/world"
	"github.com/brr-dev/zenith/internal/scripting"
)

// Engine owns a single game session. It implements action.Game, so every
// verb reaches world state and the console exclusively through it.
type Engine struct {
	sessionID uuid.UUID
	console   console.Console
	logger    *zap.Logger
	player    *player.Player

	loader        *world.ZoneLoader
	zoneID        int
	zone          *world.Zone
	currentRoomID string

	// performing blocks re-entrant dispatch while an action is running.
	performing atomic.Bool

	disc *Disc
}

var _ action.Game = (*Engine)(nil)

// New creates an Engine over the given console. The session starts with
// an empty inventory and no loaded disc.
//
// Precondition: c and logger must be non-nil.
func New(c console.Console, logger *zap.Logger) *Engine {
	sessionID := uuid.New()
	return &Engine{
		sessionID: sessionID,
		console:   c,
		logger:    logger.With(zap.String("session", sessionID.String())),
		player:    player.New(),
	}
}

// SessionID returns the unique ID of this session.
func (e *Engine) SessionID() uuid.UUID { return e.sessionID }

// AttachScripts points a script manager's state callbacks at this
// session, so zone Lua hooks can query and mutate player state.
func (e *Engine) AttachScripts(m *scripting.Manager) {
	m.HasCondition = e.player.HasCondition
	m.SetCondition = e.player.SetCondition
	m.HasItem = e.player.HasItem
	m.Visited = func(roomID string) bool {
		room, ok := e.Room(roomID)
		return ok && room.Visited()
	}
	m.CurrentRoom = func() string { return e.currentRoomID }
}

// LoadGame installs a disc, loads its first zone, and plays the welcome
// screen. It must run before the turn loop.
//
// Postcondition: On success the player stands in zone 0's start room.
func (e *Engine) LoadGame(ctx context.Context, disc *Disc) error {
	if disc == nil {
		return fmt.Errorf("load game: no disc")
	}
	e.disc = disc
	e.loader = world.NewZoneLoader(disc.Zones)

	if err := e.LoadZone(ctx, 0); err != nil {
		return err
	}

	c := e.console
	c.Clear()
	if disc.Title != "" {
		c.Print(console.Title(disc.Title), console.Break())
	}
	if disc.Description != "" {
		c.Print(console.TextLines(disc.Description)...)
		c.Print(console.Break())
	}
	for _, line := range disc.Welcome {
		c.Print(console.TextLines(line)...)
		c.Print(console.Break())
	}
	c.Print(console.Break())
	return console.Pause(ctx, c)
}

// LoadZone loads the zone with the given ID and places the player in its
// start room. Failures are configuration errors and fatal to the session.
func (e *Engine) LoadZone(ctx context.Context, id int) error {
	if e.loader == nil {
		return fmt.Errorf("load zone %d: no zone loader configured", id)
	}
	zone, err := e.loader.LoadZone(ctx, id)
	if err != nil {
		return err
	}
	e.zone = zone
	e.zoneID = id
	e.currentRoomID = zone.StartRoom
	e.logger.Info("zone loaded",
		zap.Int("zone", id),
		zap.String("name", zone.Name),
		zap.String("start_room", zone.StartRoom),
	)
	return nil
}

// LoadNextZone advances to the zone after the resident one. Zone IDs are
// sequential by convention; discs order their zones accordingly.
func (e *Engine) LoadNextZone(ctx context.Context) error {
	return e.LoadZone(ctx, e.zoneID+1)
}

// Run drives the session: narrate the room, read input, dispatch, repeat.
// It returns when the context is canceled or the console closes.
func (e *Engine) Run(ctx context.Context) error {
	for {
		line, err := e.GameStep(ctx)
		if err != nil {
			return err
		}
		for {
			advanced, err := e.HandleInput(ctx, line)
			if err != nil {
				return err
			}
			if advanced {
				break
			}
			line, err = e.console.Input(ctx)
			if err != nil {
				return err
			}
		}
	}
}

// GameStep starts a turn: clears the screen, prints the current room's
// entry narration, and prompts. Returns the player's raw input line.
func (e *Engine) GameStep(ctx context.Context) (string, error) {
	room, ok := e.zoneRoom(e.currentRoomID)
	if !ok {
		return "", fmt.Errorf("game step: room %q not found in zone %d", e.currentRoomID, e.zoneID)
	}

	c := e.console
	c.Clear()
	c.Print(room.OnEnter(e)...)
	c.Print(console.Break())

	return console.Prompt(ctx, c,
		[]console.Fragment{console.Text(console.DefaultPromptText)},
		console.PromptOptions{},
	)
}

// HandleInput normalizes and dispatches one input line against the
// actions the current room offers. advanced reports whether an action ran
// and the turn should restart with fresh narration; unrecognized input
// keeps the turn open for another line.
func (e *Engine) HandleInput(ctx context.Context, raw string) (advanced bool, err error) {
	if e.performing.Load() || e.console.WaitingForInput() {
		return false, nil
	}

	normalized := Normalize(raw)
	if normalized == "" {
		return false, nil
	}

	actions := action.ForRoom(e)
	actions.Register(action.ViewInventory(e))
	actions.Register(action.Help(e))

	a, ok := actions.Get(normalized)
	if !ok {
		e.logger.Debug("unrecognized input", zap.String("input", normalized))
		if err := console.Pause(ctx, e.console, console.Text("You're not sure how you'd do that...")); err != nil {
			return false, err
		}
		e.console.ResetInputPrefix()
		return false, nil
	}

	e.performing.Store(true)
	defer e.performing.Store(false)
	if err := a.Invoke(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Normalize lowercases input and collapses runs of whitespace to single
// spaces, so "  Go   North " dispatches as "go north".
func Normalize(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// zoneRoom looks up a room in the resident zone.
func (e *Engine) zoneRoom(id string) (*world.Room, bool) {
	if e.zone == nil {
		return nil, false
	}
	return e.zone.Room(id)
}

// CurrentRoom returns the room the player occupies, or nil before a zone
// is loaded. Actions only run between a successful GameStep and the next,
// so they always observe a resident room.
func (e *Engine) CurrentRoom() *world.Room {
	room, _ := e.zoneRoom(e.currentRoomID)
	return room
}

// CurrentRoomID returns the ID of the room the player occupies.
func (e *Engine) CurrentRoomID() string { return e.currentRoomID }

// Room looks up a room by ID within the resident zone.
func (e *Engine) Room(id string) (*world.Room, bool) { return e.zoneRoom(id) }

// SetCurrentRoom moves the player. An unknown room ID is an authoring
// bug: it is logged and the player stays put.
func (e *Engine) SetCurrentRoom(id string) {
	if _, ok := e.zoneRoom(id); !ok {
		e.logger.Warn("move to unknown room ignored",
			zap.String("room", id),
			zap.Int("zone", e.zoneID),
		)
		return
	}
	e.currentRoomID = id
}

// HasCondition reports a player condition flag.
func (e *Engine) HasCondition(name string) bool { return e.player.HasCondition(name) }

// HasItem reports whether the player carries an item by name.
func (e *Engine) HasItem(name string) bool { return e.player.HasItem(name) }

// Console returns the session console.
func (e *Engine) Console() console.Console { return e.console }

// Player returns the session player.
func (e *Engine) Player() *player.Player { return e.player }

// Logger returns the session logger.
func (e *Engine) Logger() *zap.Logger { return e.logger }
