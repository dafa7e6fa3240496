// Package world provides the game world model: zones, rooms, exits,
// features, items, and the lock subsystem shared by exits and features.
package world

import (
	"strings"

	"github.com/brr-dev/zenith/internal/console"
)

// GameState is the read-only view of engine state offered to text rules
// and block predicates.
type GameState interface {
	// CurrentRoom returns the room the player occupies.
	CurrentRoom() *Room
	// Room looks up a room by ID within the resident zone.
	Room(id string) (*Room, bool)
	// HasCondition reports a player condition flag; unset flags are false.
	HasCondition(name string) bool
	// HasItem reports whether the player inventory holds an item by name.
	HasItem(name string) bool
}

// Interactor is the view of the engine offered to feature behaviors: game
// state plus the console port for multi-step interactions.
type Interactor interface {
	GameState
	Console() console.Console
}

// TextRule produces narration lazily from game context. Rules are built at
// zone-load time as closures over their entity; evaluation happens on each
// use, so text can change with world state.
type TextRule func(g GameState) string

// PagesRule produces a sequence of narration pages, each gated by an
// acknowledgment when played.
type PagesRule func(g GameState) []string

// BlockRule decides per-attempt whether an exit is blocked, optionally with
// custom narration. It is re-evaluated on every move attempt, never cached.
type BlockRule func(g GameState) (blocked bool, narration string)

// StaticText builds a TextRule returning a fixed string.
func StaticText(s string) TextRule {
	return func(GameState) string { return s }
}

// StaticPages builds a PagesRule returning fixed pages.
func StaticPages(pages ...string) PagesRule {
	return func(GameState) []string { return pages }
}

// LockType discriminates how a lock opens.
type LockType string

// Supported lock types.
const (
	// LockKey opens with a matching key item from the player inventory.
	LockKey LockType = "key"
	// LockPin opens by typing the exact code at a prompt.
	LockPin LockType = "pin"
)

// Lock is the shared lock shape used by Exit and Feature.
type Lock struct {
	// Locked reports whether the lock currently bars interaction.
	Locked bool
	// Type is how the lock opens. Defaults to LockKey when configured
	// without an explicit type.
	Type LockType
	// Code is the key code or pin code, matched by exact string equality.
	Code string
	// Discovered is set once the player has bumped into the lock.
	Discovered bool
}

// NewLock builds a locked Lock, defaulting the type to LockKey.
func NewLock(lockType LockType, code string) Lock {
	if lockType == "" {
		lockType = LockKey
	}
	return Lock{Locked: true, Type: lockType, Code: code}
}

// Unlock opens the lock.
func (l *Lock) Unlock() { l.Locked = false }

// Lockable is the capability shared by anything that can be locked.
// Exit and Feature implement it; the unlock action works purely through
// this interface.
type Lockable interface {
	// DisplayName is the name used in the "unlock <name>" hotkey.
	DisplayName() string
	// LockNoun is the noun used in lock narration ("door" for exits,
	// the feature name otherwise).
	LockNoun() string
	// LockState exposes the mutable lock.
	LockState() *Lock
	// UnlockNarration returns author-supplied unlock text, or "" for the
	// generic fallback.
	UnlockNarration(g GameState) string
}

// Substitution tags recognized in narration templates.
const (
	// NameTag is replaced with an entity's name in room/discover text.
	NameTag = "$NAME$"
	// DirTag is replaced with an exit's direction in display text.
	DirTag = "$DIR$"
)

// Default narration templates.
const (
	// DefaultRoomTextTemplate announces an entity's presence in a room.
	DefaultRoomTextTemplate = "You see a $NAME$."
	// DefaultDiscoverTemplate announces an entity revealed by discovery.
	DefaultDiscoverTemplate = "You find a $NAME$."
	// DefaultExitTemplate announces an exit when no display text is set.
	DefaultExitTemplate = "You can go $DIR$."
)

// ExpandTag splits template on tag and interleaves a highlighted Tag
// fragment carrying replacement. Newlines inside text parts become breaks.
func ExpandTag(template, tag, replacement string) []console.Fragment {
	parts := strings.Split(template, tag)
	var frags []console.Fragment
	for i, part := range parts {
		if i > 0 {
			frags = append(frags, console.Tag(replacement))
		}
		if part != "" {
			frags = append(frags, console.TextLines(part)...)
		}
	}
	if len(frags) == 0 {
		frags = append(frags, console.Text(""))
	}
	return frags
}

// ReplaceTag substitutes tag in template as plain text, for contexts that
// do not render fragments.
func ReplaceTag(template, tag, replacement string) string {
	return strings.ReplaceAll(template, tag, replacement)
}
