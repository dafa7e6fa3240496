package action

import (
	"context"

	"github.com/brr-dev/zenith/internal/console"
)

// ViewInventory builds the always-available inventory view.
func ViewInventory(g Game) *Action {
	run := func(ctx context.Context) error {
		c := g.Console()
		c.Clear()

		c.Print(console.Title("Inventory"), console.Break(), console.Break())
		items := g.Player().Inventory()
		if len(items) == 0 {
			c.Print(console.Text("Your inventory is empty."), console.Break())
		} else {
			for _, item := range items {
				c.Print(console.Text(item.InventoryText()), console.Break())
			}
		}
		c.Print(console.Break())

		return console.Pause(ctx, c)
	}

	return New(run, "i", "inv", "inventory")
}

// controlsHelp lists every built-in command with its explanation.
var controlsHelp = []struct {
	command     string
	alias       string
	explanation string
}{
	{"go", "move", "in a direction"},
	{"look at", "examine", "something up close"},
	{"unlock", "", "attempt to open a lock"},
	{"take", "pick up", "an item"},
	{"inv", "i", "view your inventory"},
	{"help", "controls", "view game controls"},
}

// Help builds the always-available controls screen.
func Help(g Game) *Action {
	run := func(ctx context.Context) error {
		c := g.Console()
		c.Clear()

		c.Print(console.Title("Controls"), console.Break(), console.Break())
		for _, entry := range controlsHelp {
			frags := []console.Fragment{console.Tag(entry.command)}
			if entry.alias != "" {
				frags = append(frags, console.Text(" / "), console.Tag(entry.alias))
			}
			frags = append(frags,
				console.Text(" -> "+entry.explanation),
				console.Break(),
			)
			c.Print(frags...)
		}
		c.Print(console.Break())

		return console.Pause(ctx, c)
	}

	return New(run, "help", "controls")
}
