package action

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/brr-dev/zenith/internal/console"
	"github.com/brr-dev/zenith/internal/game/world"
)

// Unlock builds the unlock action for a locked exit or feature. Both are
// handled purely through the Lockable capability.
//
// Attempting to unlock something not locked is an authoring bug: it logs a
// diagnostic and does nothing player-visible.
func Unlock(g Game, target world.Lockable) *Action {
	run := func(ctx context.Context) error {
		lock := target.LockState()
		if !lock.Locked {
			g.Logger().Warn("unlock attempted on a target that is not locked",
				zap.String("target", target.DisplayName()))
			return nil
		}

		switch lock.Type {
		case world.LockKey:
			return unlockWithKey(ctx, g, target, lock)
		case world.LockPin:
			return unlockWithPin(ctx, g, target, lock)
		default:
			g.Logger().Warn("unhandled lock type",
				zap.String("target", target.DisplayName()),
				zap.String("lock_type", string(lock.Type)))
			return nil
		}
	}

	return New(run, "unlock "+target.DisplayName())
}

// unlockWithKey scans the inventory for a key matching the lock code. On a
// match the lock opens and the key is consumed; otherwise the inventory is
// left untouched.
func unlockWithKey(ctx context.Context, g Game, target world.Lockable, lock *world.Lock) error {
	c := g.Console()
	for _, item := range g.Player().Inventory() {
		if !item.MatchesLock(lock.Code) {
			continue
		}
		lock.Unlock()
		g.Player().Remove(item)

		text := target.UnlockNarration(g)
		if text == "" {
			text = "You turn the key and the lock clicks."
		}
		return console.Pause(ctx, c, console.TextLines(text)...)
	}
	return console.Pause(ctx, c, console.Text("You don't seem to have the right key..."))
}

// unlockWithPin prompts for a code and compares it by exact string
// equality. Blank input is a distinct failure from a wrong code.
func unlockWithPin(ctx context.Context, g Game, target world.Lockable, lock *world.Lock) error {
	c := g.Console()
	noun := target.LockNoun()

	hint := ""
	if lock.Code != "" {
		blanks := make([]string, len(lock.Code))
		for i := range blanks {
			blanks[i] = "_"
		}
		hint = " (" + strings.Join(blanks, " ") + ")"
	}

	message := []console.Fragment{
		console.Break(), console.Break(),
		console.Text("Enter the code for the " + noun + hint + ":"),
	}
	entered, err := console.Prompt(ctx, c, message, console.PromptOptions{AllowEmpty: true})
	if err != nil {
		return err
	}
	code := strings.TrimSpace(entered)

	switch {
	case code == lock.Code:
		lock.Unlock()
		text := target.UnlockNarration(g)
		if text == "" {
			text = "The code unlocked the " + noun + "!"
		}
		return console.Pause(ctx, c, console.TextLines(text)...)
	case code == "":
		return console.Pause(ctx, c, console.Text("No code entered."))
	default:
		return console.Pause(ctx, c, console.Text("The code was incorrect."))
	}
}
