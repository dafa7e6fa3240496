package world

import (
	"context"
	"fmt"
)

// Zone is a loadable unit of world data: a set of rooms addressed by ID.
// Exactly one zone is resident at a time; zone transitions replace it
// wholesale.
type Zone struct {
	// ID is the zone number. Zones load sequentially by convention.
	ID int
	// Name is the zone display name.
	Name string
	// Description summarizes the zone.
	Description string
	// StartRoom is the ID of the room the player enters first.
	StartRoom string
	// Rooms contains all rooms, keyed by room ID.
	Rooms map[string]*Room
	// ScriptDir is the path to this zone's Lua hooks. Empty = no scripts.
	ScriptDir string
	// ScriptInstructionLimit overrides the default Lua opcode budget for
	// this zone's VM. 0 = use the default.
	ScriptInstructionLimit int
}

// Room looks up a room by ID.
func (z *Zone) Room(id string) (*Room, bool) {
	r, ok := z.Rooms[id]
	return r, ok
}

// Validate checks zone invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first
// violation.
func (z *Zone) Validate() error {
	if z.ID < 0 {
		return fmt.Errorf("zone ID must not be negative, got %d", z.ID)
	}
	if z.StartRoom == "" {
		return fmt.Errorf("zone %d: start_room must not be empty", z.ID)
	}
	if len(z.Rooms) == 0 {
		return fmt.Errorf("zone %d: must contain at least one room", z.ID)
	}
	if _, ok := z.Rooms[z.StartRoom]; !ok {
		return fmt.Errorf("zone %d: start_room %q not found in rooms", z.ID, z.StartRoom)
	}
	for id, room := range z.Rooms {
		if room.ID != id {
			return fmt.Errorf("zone %d: room key %q does not match room ID %q", z.ID, id, room.ID)
		}
		for _, exit := range room.Exits {
			if exit.Direction == "" {
				return fmt.Errorf("zone %d: room %q: exit with empty direction", z.ID, id)
			}
			if exit.TargetRoom == "" {
				return fmt.Errorf("zone %d: room %q: exit %q has empty target", z.ID, id, exit.Direction)
			}
			if _, ok := z.Rooms[exit.TargetRoom]; !ok {
				return fmt.Errorf("zone %d: room %q: exit %q targets unknown room %q", z.ID, id, exit.Direction, exit.TargetRoom)
			}
		}
	}
	return nil
}

// LoadFunc resolves one zone's definition on demand. Deferred loading lets
// large worlds ship zone by zone.
type LoadFunc func(ctx context.Context) (*Zone, error)

// ZoneMap maps zone IDs to their deferred loaders.
type ZoneMap map[int]LoadFunc

// ZoneLoader resolves zone IDs to built zones via a static loader table.
type ZoneLoader struct {
	zones ZoneMap
}

// NewZoneLoader creates a ZoneLoader over the given table.
func NewZoneLoader(zones ZoneMap) *ZoneLoader {
	return &ZoneLoader{zones: zones}
}

// LoadZone loads the zone with the given ID.
//
// Postcondition: Returns the built zone, or an error when no definition is
// registered for id or the deferred load fails.
func (l *ZoneLoader) LoadZone(ctx context.Context, id int) (*Zone, error) {
	load, ok := l.zones[id]
	if !ok {
		return nil, fmt.Errorf("zone %d: missing definition", id)
	}
	zone, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading zone %d: %w", id, err)
	}
	return zone, nil
}
