package action

import (
	"context"

	"github.com/brr-dev/zenith/internal/console"
	"github.com/brr-dev/zenith/internal/game/world"
)

// Take builds the pickup action for an item: "take <name>" /
// "pick up <name>". Pickup is a single-owner move: the item leaves the
// room list and joins the inventory exactly once.
func Take(g Game, item *world.Item) *Action {
	run := func(ctx context.Context) error {
		if g.CurrentRoom().RemoveItem(item) {
			g.Player().Take(item)
		}
		return console.Pause(ctx, g.Console(),
			console.Text("You reach out and take the "),
			console.Tag(item.Name),
			console.Text("."),
		)
	}

	return New(run, "take "+item.Name, "pick up "+item.Name)
}
