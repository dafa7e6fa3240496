package player_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brr-dev/zenith/internal/game/player"
	"github.com/brr-dev/zenith/internal/game/world"
)

func TestPlayer_InventoryKeepsPickupOrder(t *testing.T) {
	p := player.New()
	coin := &world.Item{Name: "coin"}
	key := &world.Item{Name: "brass key", KeyCode: "attic"}
	watch := &world.Item{Name: "pocket watch"}

	p.Take(coin)
	p.Take(key)
	p.Take(watch)

	inv := p.Inventory()
	require.Len(t, inv, 3)
	assert.Same(t, coin, inv[0])
	assert.Same(t, key, inv[1])
	assert.Same(t, watch, inv[2])
}

func TestPlayer_RemovePreservesOrder(t *testing.T) {
	p := player.New()
	a := &world.Item{Name: "a"}
	b := &world.Item{Name: "b"}
	c := &world.Item{Name: "c"}
	p.Take(a)
	p.Take(b)
	p.Take(c)

	assert.True(t, p.Remove(b))
	inv := p.Inventory()
	require.Len(t, inv, 2)
	assert.Same(t, a, inv[0])
	assert.Same(t, c, inv[1])

	assert.False(t, p.Remove(b), "removing twice reports absence")
}

func TestPlayer_HasItem(t *testing.T) {
	p := player.New()
	assert.False(t, p.HasItem("coin"))

	p.Take(&world.Item{Name: "coin"})
	assert.True(t, p.HasItem("coin"))
	assert.False(t, p.HasItem("Coin"), "item names match exactly")
}

func TestPlayer_ConditionsDefaultFalse(t *testing.T) {
	p := player.New()
	assert.False(t, p.HasCondition("opened_cellar"))

	p.SetCondition("opened_cellar", true)
	assert.True(t, p.HasCondition("opened_cellar"))

	p.SetCondition("opened_cellar", false)
	assert.False(t, p.HasCondition("opened_cellar"))
}
