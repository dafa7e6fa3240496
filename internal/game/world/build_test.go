package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brr-dev/zenith/internal/game/world"
)

const buildTestZoneYAML = `
zone:
  id: 0
  name: Test Zone
  start_room: hall
  rooms:
    - id: hall
      enter: A long hall stretches before you.
      exits:
        - direction: north
          target: study
          locked:
            type: pin
            code: "1234"
          locked_text: The door up north is locked tight.
      features:
        - name: mirror
        - name: alcove
          room_text: ""
          items:
            - name: candle
              discover_text: A $NAME$ was hidden in the alcove.
      items:
        - name: coin
          description: A dull copper coin.
    - id: study
      enter: Books everywhere.
      exits:
        - direction: south
          target: hall
`

func TestParseZoneBytes_AndBuild(t *testing.T) {
	def, err := world.ParseZoneBytes([]byte(buildTestZoneYAML))
	require.NoError(t, err)
	assert.Equal(t, 0, def.ID)
	assert.Equal(t, "hall", def.StartRoom)
	require.Len(t, def.Rooms, 2)

	zone, err := world.BuildZone(def, world.BuildOptions{})
	require.NoError(t, err)

	hall, ok := zone.Room("hall")
	require.True(t, ok)

	// Unset room_text falls back to the default template.
	mirror := hall.Features[0]
	frags, ok := mirror.RoomNarration(nil)
	require.True(t, ok)
	assert.Equal(t, "You see a >mirror<.", renderFragments(frags))

	// Explicit empty room_text means the feature says nothing.
	alcove := hall.Features[1]
	_, ok = alcove.RoomNarration(nil)
	assert.False(t, ok)

	// Nested item keeps its authored discover text.
	require.Len(t, alcove.Items, 1)
	discover, ok := alcove.Items[0].DiscoverNarration()
	require.True(t, ok)
	assert.Equal(t, "A >candle< was hidden in the alcove.", renderFragments(discover))

	// Room items default their room text.
	require.Len(t, hall.Items, 1)
	assert.Equal(t, "You see a >coin<.", renderFragments(hall.Items[0].RoomNarration()))

	north, err := hall.Exit("north")
	require.NoError(t, err)
	assert.True(t, north.Lock.Locked)
	assert.Equal(t, world.LockPin, north.Lock.Type)
	assert.Equal(t, "1234", north.Lock.Code)
	text, ok := north.LockedNarration(nil)
	require.True(t, ok)
	assert.Equal(t, "The door up north is locked tight.", text)
}

func TestParseZoneBytes_Malformed(t *testing.T) {
	_, err := world.ParseZoneBytes([]byte("zone: [not, a, mapping"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing zone YAML")
}

func TestBuildZone_HookWithoutScripting(t *testing.T) {
	def := &world.ZoneDef{
		ID:        0,
		StartRoom: "hall",
		Rooms: []world.RoomDef{
			{ID: "hall", EnterHook: "hall_enter"},
		},
	}

	_, err := world.BuildZone(def, world.BuildOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `hook "hall_enter": scripting not configured`)
}

func TestBuildZone_FeatureTypeWithoutFactory(t *testing.T) {
	def := &world.ZoneDef{
		ID:        0,
		StartRoom: "hall",
		Rooms: []world.RoomDef{
			{ID: "hall", Features: []world.FeatureDef{{Type: "sink", Name: "sink"}}},
		},
	}

	_, err := world.BuildZone(def, world.BuildOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no behavior factory configured")
}

func TestBuildZone_ItemTypeWithoutFactory(t *testing.T) {
	def := &world.ZoneDef{
		ID:        0,
		StartRoom: "hall",
		Rooms: []world.RoomDef{
			{ID: "hall", Items: []world.ItemDef{{Type: "keychain"}}},
		},
	}

	_, err := world.BuildZone(def, world.BuildOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no item factory configured")
}

func TestBuildZone_DuplicateRoomID(t *testing.T) {
	def := &world.ZoneDef{
		ID:        0,
		StartRoom: "hall",
		Rooms: []world.RoomDef{
			{ID: "hall"},
			{ID: "hall"},
		},
	}

	_, err := world.BuildZone(def, world.BuildOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate room ID "hall"`)
}

func TestBuildZone_InvalidZoneRejected(t *testing.T) {
	def := &world.ZoneDef{
		ID:        0,
		StartRoom: "hall",
		Rooms: []world.RoomDef{
			{ID: "hall", Exits: []world.ExitDef{{Direction: "north", Target: "nowhere"}}},
		},
	}

	_, err := world.BuildZone(def, world.BuildOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating zone")
}

func TestFeatureDef_DecodeProps(t *testing.T) {
	const doc = `
zone:
  id: 0
  start_room: hall
  rooms:
    - id: hall
      features:
        - type: book
          name: ledger
          title: Household Ledger
          author: Unknown
`
	def, err := world.ParseZoneBytes([]byte(doc))
	require.NoError(t, err)

	featureDef := def.Rooms[0].Features[0]
	var props struct {
		Title  string `yaml:"title"`
		Author string `yaml:"author"`
	}
	require.NoError(t, featureDef.DecodeProps(&props))
	assert.Equal(t, "Household Ledger", props.Title)
	assert.Equal(t, "Unknown", props.Author)

	empty := world.FeatureDef{Name: "bare"}
	require.NoError(t, empty.DecodeProps(&props))
}
