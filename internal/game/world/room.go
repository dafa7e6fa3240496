package world

import (
	"fmt"

	"github.com/brr-dev/zenith/internal/console"
)

// Room is a node in the world graph owning items, features, and exits.
// Rooms live exactly as long as their zone; discovery and item pickup
// mutate them at runtime.
type Room struct {
	// ID uniquely identifies this room within its zone.
	ID string
	// Enter is the entry-narration rule.
	Enter TextRule
	// Exits are the passages out, in authored order.
	Exits []*Exit
	// Features are the interactables present, in authored order.
	Features []*Feature
	// Items are the takeable items present, in authored order.
	Items []*Item

	visited bool
}

// Visited reports whether the room has been entered at least once.
func (r *Room) Visited() bool { return r.visited }

// OnEnter assembles the full entry narration: the room's own entry text,
// each feature's room presence, each item's room presence, then each
// exit's listing. A section contributes a blank-line separator only when
// non-empty. Marks the room visited as the final step, so visited state
// never affects the narration it is about to produce.
func (r *Room) OnEnter(g GameState) []console.Fragment {
	var frags []console.Fragment
	if r.Enter != nil {
		frags = append(frags, console.TextLines(r.Enter(g))...)
	}

	var featureFrags [][]console.Fragment
	for _, f := range r.Features {
		if entry, ok := f.RoomNarration(g); ok {
			featureFrags = append(featureFrags, entry)
		}
	}
	if len(featureFrags) > 0 {
		frags = append(frags, console.Break())
		for _, entry := range featureFrags {
			frags = append(frags, console.Break())
			frags = append(frags, entry...)
		}
	}

	if len(r.Items) > 0 {
		frags = append(frags, console.Break())
		for _, item := range r.Items {
			frags = append(frags, console.Break())
			frags = append(frags, item.RoomNarration()...)
		}
	}

	if len(r.Exits) > 0 {
		frags = append(frags, console.Break())
		for _, exit := range r.Exits {
			frags = append(frags, console.Break())
			frags = append(frags, exit.DisplayFragments(g)...)
		}
	}

	// Visited flips only after the narration is assembled.
	r.visited = true

	return frags
}

// DiscoverFrom moves all of feature's nested items and features into the
// room. Newly revealed features are inserted immediately after the
// discovering feature's own position, or appended when the feature is not
// itself in the room's list (a feature discovering contents nested inside
// itself). The ordering keeps revealed sub-features adjacent to their
// discovery point in later narration.
func (r *Room) DiscoverFrom(feature *Feature) {
	r.Items = append(r.Items, feature.Items...)
	feature.Items = nil

	revealed := feature.Features
	feature.Features = nil
	if len(revealed) == 0 {
		return
	}

	at := len(r.Features)
	for i, f := range r.Features {
		if f == feature {
			at = i + 1
			break
		}
	}

	updated := make([]*Feature, 0, len(r.Features)+len(revealed))
	updated = append(updated, r.Features[:at]...)
	updated = append(updated, revealed...)
	updated = append(updated, r.Features[at:]...)
	r.Features = updated
}

// RemoveItem removes the item from the room, preserving the order of the
// remaining items. Returns false when the item is not present.
func (r *Room) RemoveItem(item *Item) bool {
	for i, it := range r.Items {
		if it == item {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Exit returns the exit matching the given direction.
//
// Postcondition: Returns a non-nil exit, or an error naming the room and
// direction. A missing exit here is an authoring bug, not player error.
func (r *Room) Exit(direction string) (*Exit, error) {
	for _, e := range r.Exits {
		if e.Direction == direction {
			return e, nil
		}
	}
	return nil, fmt.Errorf("no exit %q in room %q", direction, r.ID)
}
