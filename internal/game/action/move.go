package action

import (
	"context"

	"github.com/brr-dev/zenith/internal/console"
	"github.com/brr-dev/zenith/internal/game/world"
)

// Default narrations for the move verb.
const (
	blockedFallbackText = "This path is blocked."
	doorLockedText      = "The door is locked."
)

// Move builds the traversal action for an exit: "go <dir>" / "move <dir>".
//
// The block predicate is checked before the lock on every attempt; a
// blocked exit never changes the current room regardless of lock state.
func Move(g Game, exit *world.Exit) *Action {
	run := func(ctx context.Context) error {
		c := g.Console()

		if blocked, text := exit.Blocked(g); blocked {
			if text == "" {
				text = blockedFallbackText
			}
			return console.Pause(ctx, c, console.TextLines(text)...)
		}

		if exit.Lock.Locked {
			if text, ok := exit.LockedNarration(g); ok && text != "" {
				c.Clear()
				c.Print(console.TextLines(text)...)
				c.Print(console.Break(), console.Break())
				exit.Lock.Discovered = true
				return console.Pause(ctx, c)
			}
			if exit.Lock.Discovered {
				return console.Pause(ctx, c,
					console.Text("The door is locked, "),
					console.Tag("unlock"),
					console.Text(" it to get through."),
				)
			}
			exit.Lock.Discovered = true
			return console.Pause(ctx, c, console.Text(doorLockedText))
		}

		if exit.OnExit != nil {
			exit.OnExit(g)
		}
		g.SetCurrentRoom(exit.TargetRoom)
		return console.Pause(ctx, c, console.Text("You head "+exit.Direction+"..."))
	}

	return New(run, "go "+exit.Direction, "move "+exit.Direction)
}
