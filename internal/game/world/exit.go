package world

import "github.com/brr-dev/zenith/internal/console"

// Exit is a directional link from one room to another, optionally blocked
// or locked. The target room is referenced by ID, not owned.
type Exit struct {
	// Direction is the direction label and display name ("north", "up").
	Direction string
	// TargetRoom is the ID of the destination room.
	TargetRoom string
	// Lock optionally bars traversal until unlocked.
	Lock Lock
	// DisplayText is the exit's room listing rule; the result may contain
	// DirTag, substituted with the direction as a typeable tag.
	DisplayText TextRule
	// LockedText is the narration shown on the first locked attempt,
	// before the lock counts as discovered. nil = generic progression.
	LockedText TextRule
	// UnlockText is the author-supplied unlock narration. nil = generic.
	UnlockText TextRule
	// Block is evaluated on every move attempt, before the lock. nil
	// means never blocked.
	Block BlockRule
	// OnExit runs after a successful traversal, before arrival narration.
	OnExit func(g GameState)
}

var _ Lockable = (*Exit)(nil)

// DisplayName returns the direction for the unlock hotkey ("unlock up").
func (e *Exit) DisplayName() string { return e.Direction }

// LockNoun returns "door": exit lock narration always talks about a door.
func (e *Exit) LockNoun() string { return "door" }

// LockState exposes the exit's lock.
func (e *Exit) LockState() *Lock { return &e.Lock }

// UnlockNarration returns the author-supplied unlock text, or "".
func (e *Exit) UnlockNarration(g GameState) string {
	if e.UnlockText == nil {
		return ""
	}
	return e.UnlockText(g)
}

// Blocked evaluates the block predicate for this attempt. The narration is
// empty when the author supplied no custom block text.
func (e *Exit) Blocked(g GameState) (blocked bool, narration string) {
	if e.Block == nil {
		return false, ""
	}
	return e.Block(g)
}

// LockedNarration returns the author-supplied locked-interaction text, or
// ok=false when none exists.
func (e *Exit) LockedNarration(g GameState) (text string, ok bool) {
	if e.LockedText == nil {
		return "", false
	}
	return e.LockedText(g), true
}

// DisplayFragments renders the exit listing with the direction as a
// typeable tag.
func (e *Exit) DisplayFragments(g GameState) []console.Fragment {
	template := DefaultExitTemplate
	if e.DisplayText != nil {
		template = e.DisplayText(g)
	}
	return ExpandTag(template, DirTag, e.Direction)
}
