package action

import (
	"context"

	"github.com/brr-dev/zenith/internal/console"
	"github.com/brr-dev/zenith/internal/game/world"
)

// Interact builds the inspection action for a feature. Locked features
// show the same discovered/hint progression as exits; unlocked ones run
// the feature's behavior, or the default flow when it has none.
func Interact(g Game, feature *world.Feature) *Action {
	run := func(ctx context.Context) error {
		c := g.Console()

		if feature.Lock.Locked {
			if feature.Lock.Discovered {
				return console.Pause(ctx, c,
					console.Text("The "+feature.Name+" is locked, "),
					console.Tag("unlock"),
					console.Text(" it to get inside."),
				)
			}
			feature.Lock.Discovered = true
			return console.Pause(ctx, c, console.Text("The "+feature.Name+" is locked."))
		}

		if err := console.Pause(ctx, c, console.Text("You examine the "+feature.Name+"...")); err != nil {
			return err
		}

		if feature.Behavior != nil {
			return feature.Behavior.Interact(ctx, g, feature)
		}
		return DefaultInteract(ctx, g, feature)
	}

	return New(run, feature.InteractHotkeys()...)
}

// DefaultInteract plays the feature's interaction pages, pausing between
// pages, prints nested discover narration with the final page, then
// surfaces the feature's contents into the current room. Behaviors that
// only decorate the flow call this for the core of the interaction.
func DefaultInteract(ctx context.Context, g world.Interactor, feature *world.Feature) error {
	c := g.Console()
	c.Clear()

	pages := feature.InteractionPages(g)
	content := feature.ContentNarration()

	if len(pages) <= 1 {
		if len(pages) == 1 {
			c.Print(console.TextLines(pages[0])...)
			c.Print(console.Break(), console.Break())
		}
		if len(content) > 0 {
			c.Print(content...)
			c.Print(console.Break(), console.Break())
		}
		if err := console.Pause(ctx, c); err != nil {
			return err
		}
	} else {
		for idx, page := range pages {
			c.Print(console.TextLines(page)...)
			c.Print(console.Break(), console.Break())
			if idx == len(pages)-1 && len(content) > 0 {
				c.Print(content...)
				c.Print(console.Break(), console.Break())
			}
			if err := console.Pause(ctx, c); err != nil {
				return err
			}
		}
	}

	g.CurrentRoom().DiscoverFrom(feature)
	return nil
}
