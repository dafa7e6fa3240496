package world

import (
	"context"

	"github.com/brr-dev/zenith/internal/console"
)

// Behavior customizes how a feature interacts, replacing subclassing with
// a pluggable strategy. A nil Behavior gets the default interaction flow
// (play pages, reveal contents, discover into the room).
type Behavior interface {
	// ExtraHotkeys returns additional interact hotkeys beyond the
	// defaults ("look at X", "look X", "inspect X", "examine X").
	ExtraHotkeys(f *Feature) []string
	// Interact runs the feature's interaction. Implementations own the
	// whole flow, including calling Room.DiscoverFrom when contents
	// should surface.
	Interact(ctx context.Context, g Interactor, f *Feature) error
}

// Feature is a non-takeable interactable that may contain nested items and
// features, revealed on interaction ("discovery"). A feature exclusively
// owns its nested contents until discovery transfers them to the room.
type Feature struct {
	// Name is the display name and hotkey fragment ("look at <name>").
	Name string
	// Lock optionally bars interaction until unlocked.
	Lock Lock
	// RoomText is the room-presence rule. nil means "say nothing".
	RoomText TextRule
	// Interaction produces the interaction narration pages.
	Interaction PagesRule
	// UnlockText is the author-supplied unlock narration. nil = generic.
	UnlockText TextRule
	// DiscoverText is the resolved discovery template; empty = silent.
	DiscoverText string
	// Items are nested items owned until discovery.
	Items []*Item
	// Features are nested features owned until discovery.
	Features []*Feature
	// Behavior optionally replaces the default interaction flow.
	Behavior Behavior
}

var _ Lockable = (*Feature)(nil)

// DisplayName returns the feature name for the unlock hotkey.
func (f *Feature) DisplayName() string { return f.Name }

// LockNoun returns the feature name for lock narration.
func (f *Feature) LockNoun() string { return f.Name }

// LockState exposes the feature's lock.
func (f *Feature) LockState() *Lock { return &f.Lock }

// UnlockNarration returns the author-supplied unlock text, or "".
func (f *Feature) UnlockNarration(g GameState) string {
	if f.UnlockText == nil {
		return ""
	}
	return f.UnlockText(g)
}

// InteractHotkeys returns every hotkey that triggers the interaction,
// defaults first, then behavior extras.
func (f *Feature) InteractHotkeys() []string {
	hotkeys := []string{
		"look at " + f.Name,
		"look " + f.Name,
		"inspect " + f.Name,
		"examine " + f.Name,
	}
	if f.Behavior != nil {
		hotkeys = append(hotkeys, f.Behavior.ExtraHotkeys(f)...)
	}
	return hotkeys
}

// RoomNarration renders the room-presence text with the name as a typeable
// tag. ok is false when the feature says nothing in the room.
func (f *Feature) RoomNarration(g GameState) (frags []console.Fragment, ok bool) {
	if f.RoomText == nil {
		return nil, false
	}
	text := f.RoomText(g)
	if text == "" {
		return nil, false
	}
	return ExpandTag(text, NameTag, f.Name), true
}

// DiscoverNarration renders the discovery text. ok is false when the
// feature is revealed silently.
func (f *Feature) DiscoverNarration() (frags []console.Fragment, ok bool) {
	if f.DiscoverText == "" {
		return nil, false
	}
	return ExpandTag(f.DiscoverText, NameTag, f.Name), true
}

// InteractionPages evaluates the interaction narration. A nil rule yields
// no pages.
func (f *Feature) InteractionPages(g GameState) []string {
	if f.Interaction == nil {
		return nil
	}
	return f.Interaction(g)
}

// ContentNarration collects the discover narration of nested items and
// features, in order, skipping silent entries. Interaction flows print
// this alongside the final page.
func (f *Feature) ContentNarration() []console.Fragment {
	var frags []console.Fragment
	first := true
	appendEntry := func(entry []console.Fragment) {
		if !first {
			frags = append(frags, console.Break())
		}
		frags = append(frags, entry...)
		first = false
	}
	for _, nested := range f.Features {
		if entry, ok := nested.DiscoverNarration(); ok {
			appendEntry(entry)
		}
	}
	for _, item := range f.Items {
		if entry, ok := item.DiscoverNarration(); ok {
			appendEntry(entry)
		}
	}
	return frags
}
