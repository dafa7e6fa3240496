package scripting

import "github.com/brr-dev/zenith/internal/game/world"

// Binder adapts a zone's VM to world.HookBinder so zone construction can
// resolve named hooks into evaluation rules. The rules close over the
// Manager; hook lookup is deferred to call time, so scripts may be reloaded
// underneath a built zone.
type Binder struct {
	m      *Manager
	zoneID int
}

// Binder returns a world.HookBinder dispatching into zoneID's VM.
func (m *Manager) Binder(zoneID int) *Binder {
	return &Binder{m: m, zoneID: zoneID}
}

func (b *Binder) TextHook(name string, args ...string) world.TextRule {
	return func(world.GameState) string {
		return b.m.CallString(b.zoneID, name, args...)
	}
}

func (b *Binder) PagesHook(name string, args ...string) world.PagesRule {
	return func(world.GameState) []string {
		return b.m.CallPages(b.zoneID, name, args...)
	}
}

func (b *Binder) BlockHook(name string, args ...string) world.BlockRule {
	return func(world.GameState) (bool, string) {
		return b.m.CallBlock(b.zoneID, name, args...)
	}
}

func (b *Binder) EventHook(name string, args ...string) func(world.GameState) {
	return func(world.GameState) {
		b.m.CallEvent(b.zoneID, name, args...)
	}
}
