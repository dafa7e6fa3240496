// Package player holds the player's inventory and condition flags.
package player

import "github.com/brr-dev/zenith/internal/game/world"

// Player is the single per-session player: an ordered inventory (insertion
// order = pickup order) and a condition map. The player persists across
// zone transitions.
type Player struct {
	inventory  []*world.Item
	conditions map[string]bool
}

// New creates an empty Player.
func New() *Player {
	return &Player{conditions: make(map[string]bool)}
}

// Take appends an item to the inventory. The caller is responsible for
// removing it from its previous owner first; ownership moves, never copies.
func (p *Player) Take(item *world.Item) {
	p.inventory = append(p.inventory, item)
}

// Remove drops an item from the inventory, preserving the order of the
// remaining items. Returns false when the item is not held.
func (p *Player) Remove(item *world.Item) bool {
	for i, it := range p.inventory {
		if it == item {
			p.inventory = append(p.inventory[:i], p.inventory[i+1:]...)
			return true
		}
	}
	return false
}

// Inventory returns the held items in pickup order. The slice is shared;
// callers must not mutate it.
func (p *Player) Inventory() []*world.Item {
	return p.inventory
}

// HasItem reports whether an item with the given name is held.
func (p *Player) HasItem(name string) bool {
	for _, it := range p.inventory {
		if it.Name == name {
			return true
		}
	}
	return false
}

// HasCondition reports a condition flag. Unset flags are false.
func (p *Player) HasCondition(name string) bool {
	return p.conditions[name]
}

// SetCondition sets or clears a condition flag.
func (p *Player) SetCondition(name string, state bool) {
	p.conditions[name] = state
}
