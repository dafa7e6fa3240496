package world

import "github.com/brr-dev/zenith/internal/console"

// Item is a takeable object. An item is owned by exactly one of room,
// feature, or player inventory at a time; taking it is a move, never a copy.
type Item struct {
	// Name is the display name and hotkey fragment ("take <name>").
	Name string
	// Description is the inventory description.
	Description string
	// RoomText is the room-presence template; NameTag is substituted.
	RoomText string
	// DiscoverText is the resolved discovery template. Empty means the
	// item is revealed silently.
	DiscoverText string
	// KeyCode, when non-empty, makes the item a key that opens key-type
	// locks with a matching code.
	KeyCode string
}

// IsKey reports whether the item can open key-type locks.
func (i *Item) IsKey() bool { return i.KeyCode != "" }

// MatchesLock reports whether this key opens a lock with the given code.
// Comparison is exact string equality.
func (i *Item) MatchesLock(code string) bool {
	return i.IsKey() && i.KeyCode == code
}

// RoomNarration renders the room-presence text with the item name as a
// typeable tag.
func (i *Item) RoomNarration() []console.Fragment {
	return ExpandTag(i.RoomText, NameTag, i.Name)
}

// DiscoverNarration renders the discovery text. ok is false when the item
// is revealed silently.
func (i *Item) DiscoverNarration() (frags []console.Fragment, ok bool) {
	if i.DiscoverText == "" {
		return nil, false
	}
	return ExpandTag(i.DiscoverText, NameTag, i.Name), true
}

// InventoryText is the one-line inventory listing for the item.
func (i *Item) InventoryText() string {
	return i.Name + " => " + i.Description
}
