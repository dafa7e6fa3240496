package content_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brr-dev/zenith/internal/console"
	"github.com/brr-dev/zenith/internal/game/content"
	"github.com/brr-dev/zenith/internal/game/world"
	"github.com/brr-dev/zenith/internal/testutil"
)

// fakeGame is a minimal world.Interactor for behavior tests.
type fakeGame struct {
	console *testutil.ScriptedConsole
	room    *world.Room
}

func (g *fakeGame) CurrentRoom() *world.Room { return g.room }

func (g *fakeGame) Room(id string) (*world.Room, bool) {
	if g.room != nil && g.room.ID == id {
		return g.room, true
	}
	return nil, false
}

func (g *fakeGame) HasCondition(string) bool { return false }
func (g *fakeGame) HasItem(string) bool      { return false }
func (g *fakeGame) Console() console.Console { return g.console }

func newFakeGame(inputs ...string) *fakeGame {
	return &fakeGame{
		console: testutil.NewScriptedConsole(inputs...),
		room:    &world.Room{ID: "study"},
	}
}

func buildFeature(t *testing.T, def *world.FeatureDef) *world.Feature {
	t.Helper()
	f, err := world.BuildFeature(def, world.BuildOptions{Behaviors: content.NewRegistry().Build})
	require.NoError(t, err)
	return f
}

func TestRegistry_UnknownType(t *testing.T) {
	r := content.NewRegistry()
	_, err := r.Build("fountain", &world.FeatureDef{Name: "fountain"})
	assert.Error(t, err)
}

func TestRegistry_CustomType(t *testing.T) {
	r := content.NewRegistry()
	r.Register("mirror", func(def *world.FeatureDef) (world.Behavior, error) {
		def.Name = "mirror"
		return nil, nil
	})
	def := &world.FeatureDef{Type: "mirror"}
	_, err := r.Build("mirror", def)
	require.NoError(t, err)
	assert.Equal(t, "mirror", def.Name)
}

func TestKeychain_Defaults(t *testing.T) {
	r := content.NewRegistry()
	def := &world.ItemDef{Type: "keychain", KeyCode: "front_door"}
	item, err := world.BuildItem(def, world.BuildOptions{Items: r.BuildItem})
	require.NoError(t, err)

	assert.Equal(t, "keychain", item.Name)
	assert.True(t, item.MatchesLock("front_door"))

	named := &world.ItemDef{Type: "keychain", Name: "janitor's keychain"}
	item, err = world.BuildItem(named, world.BuildOptions{Items: r.BuildItem})
	require.NoError(t, err)
	assert.Equal(t, "janitor's keychain", item.Name)
}

func TestRegistry_UnknownItemType(t *testing.T) {
	r := content.NewRegistry()
	err := r.BuildItem("lantern", &world.ItemDef{Name: "lantern"})
	assert.Error(t, err)
}

func TestSink_Defaults(t *testing.T) {
	def := &world.FeatureDef{Type: "sink"}
	f := buildFeature(t, def)

	assert.Equal(t, "sink", f.Name)
	assert.Equal(t, []string{"It's a sink. Not much else to say."}, f.InteractionPages(nil))
	assert.Nil(t, f.Behavior, "sink keeps the default interaction flow")
}

func TestSink_AuthoredTextWins(t *testing.T) {
	def := &world.FeatureDef{Type: "sink", Name: "basin", Interaction: []string{"The basin is cracked."}}
	f := buildFeature(t, def)

	assert.Equal(t, "basin", f.Name)
	assert.Equal(t, []string{"The basin is cracked."}, f.InteractionPages(nil))
}

func TestBook_Hotkeys(t *testing.T) {
	def := &world.FeatureDef{
		Type:  "book",
		Props: map[string]any{"title": "Moby Dick"},
	}
	f := buildFeature(t, def)

	assert.Equal(t, "book", f.Name)
	hotkeys := f.InteractHotkeys()
	assert.Contains(t, hotkeys, "read book")
	assert.Contains(t, hotkeys, "read Moby Dick")
}

func TestBook_Interact_RendersPage(t *testing.T) {
	def := &world.FeatureDef{
		Type: "book",
		Props: map[string]any{
			"title":  "Moby Dick",
			"author": "Herman Melville",
			"text":   "Call me Ishmael.",
		},
	}
	f := buildFeature(t, def)
	g := newFakeGame("", "")

	require.NoError(t, f.Behavior.Interact(context.Background(), g, f))

	transcript := g.console.Transcript()
	assert.Contains(t, transcript, "- Moby Dick -")
	assert.Contains(t, transcript, "Herman Melville")
	assert.Contains(t, transcript, "Call me Ishmael.")
	assert.Contains(t, transcript, "You put the book down.")
}

func TestBook_Interact_NoText(t *testing.T) {
	def := &world.FeatureDef{Type: "book", Name: "ledger"}
	f := buildFeature(t, def)
	g := newFakeGame("")

	require.NoError(t, f.Behavior.Interact(context.Background(), g, f))

	transcript := g.console.Transcript()
	assert.Contains(t, transcript, "You can't make out any of the text.")
	assert.NotContains(t, transcript, "You put the book down.", "framing only applies to a plain book")
}

func TestBook_Interact_DiscoversContents(t *testing.T) {
	def := &world.FeatureDef{
		Type:  "book",
		Name:  "ledger",
		Items: []world.ItemDef{{Name: "receipt", Description: "A faded receipt."}},
	}
	f := buildFeature(t, def)
	g := newFakeGame("")

	require.NoError(t, f.Behavior.Interact(context.Background(), g, f))

	assert.Len(t, g.room.Items, 1)
	assert.Equal(t, "receipt", g.room.Items[0].Name)
	assert.Empty(t, f.Items, "discovery transfers ownership to the room")
}

func TestBookshelf_Empty(t *testing.T) {
	def := &world.FeatureDef{Type: "bookshelf"}
	f := buildFeature(t, def)
	g := newFakeGame("")

	require.NoError(t, f.Behavior.Interact(context.Background(), g, f))
	assert.Contains(t, g.console.Transcript(), "There are no books on the shelf...")
}

func TestBookshelf_SingleBook_ConfirmReads(t *testing.T) {
	def := &world.FeatureDef{
		Type: "bookshelf",
		Props: map[string]any{
			"books": []any{
				map[string]any{"title": "Walden", "text": "I went to the woods."},
			},
		},
	}
	f := buildFeature(t, def)
	// yes to the confirm, then through the book's page and framing pauses.
	g := newFakeGame("y", "", "", "")

	require.NoError(t, f.Behavior.Interact(context.Background(), g, f))

	transcript := g.console.Transcript()
	assert.Contains(t, transcript, "I went to the woods.")
}

func TestBookshelf_SingleBook_Decline(t *testing.T) {
	def := &world.FeatureDef{
		Type: "bookshelf",
		Props: map[string]any{
			"books": []any{map[string]any{"title": "Walden"}},
		},
	}
	f := buildFeature(t, def)
	g := newFakeGame("n", "")

	require.NoError(t, f.Behavior.Interact(context.Background(), g, f))
	assert.Contains(t, g.console.Transcript(), "You don't feel like reading right now.")
}

func TestBookshelf_Menu_PickByNumber(t *testing.T) {
	def := &world.FeatureDef{
		Type: "bookshelf",
		Props: map[string]any{
			"books": []any{
				map[string]any{"title": "Walden", "text": "Woods."},
				map[string]any{"title": "Moby Dick", "text": "Whales."},
			},
		},
	}
	f := buildFeature(t, def)
	g := newFakeGame("2", "", "", "")

	require.NoError(t, f.Behavior.Interact(context.Background(), g, f))
	assert.Contains(t, g.console.Transcript(), "Whales.")
}

func TestBookshelf_Menu_OutOfRangeReplays(t *testing.T) {
	def := &world.FeatureDef{
		Type: "bookshelf",
		Props: map[string]any{
			"books": []any{
				map[string]any{"title": "Walden"},
				map[string]any{"title": "Moby Dick"},
			},
		},
	}
	f := buildFeature(t, def)
	// 9 is out of range: pause, menu replays, then a non-number declines.
	g := newFakeGame("9", "", "x", "")

	require.NoError(t, f.Behavior.Interact(context.Background(), g, f))
	assert.Contains(t, g.console.Transcript(), "You don't feel like reading right now.")
}
