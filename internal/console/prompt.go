package console

import "context"

// DefaultPromptText is printed by Prompt when no message is supplied.
const DefaultPromptText = "What do you do?"

// DefaultPauseText is printed by Pause when no message is supplied.
const DefaultPauseText = "Press Enter to continue..."

// PromptOptions controls Prompt behavior.
type PromptOptions struct {
	// AllowEmpty accepts a blank line instead of re-prompting.
	AllowEmpty bool
}

// Prompt prints message fragments, then reads input lines until a non-empty
// response arrives (unless opts.AllowEmpty).
//
// Postcondition: Returns the accepted line, or a non-nil error from Input.
func Prompt(ctx context.Context, c Console, message []Fragment, opts PromptOptions) (string, error) {
	if len(message) > 0 {
		c.Print(message...)
	}
	for {
		line, err := c.Input(ctx)
		if err != nil {
			return "", err
		}
		if line != "" || opts.AllowEmpty {
			return line, nil
		}
	}
}

// Confirm asks a yes/no question. The "(Y/n)" suffix capitalizes toward
// defaultValue. Blank or unrecognized input resolves to defaultValue; this
// is a permissive parse, not a validator.
func Confirm(ctx context.Context, c Console, message []Fragment, defaultValue bool) (bool, error) {
	yes, no := "y", "n"
	if defaultValue {
		yes = "Y"
	} else {
		no = "N"
	}

	withSuffix := append(append([]Fragment{}, message...), Text(" ("+yes+"/"+no+")"))
	answer, err := Prompt(ctx, c, withSuffix, PromptOptions{AllowEmpty: true})
	if err != nil {
		return false, err
	}

	switch answer {
	case "y", "Y", "yes", "Yes":
		return true, nil
	case "n", "N", "no", "No":
		return false, nil
	default:
		return defaultValue, nil
	}
}

// Pause prints a message (DefaultPauseText when empty) and blocks for one
// input event, discarding its content. Used as an acknowledgment gate
// between narration steps.
func Pause(ctx context.Context, c Console, message ...Fragment) error {
	if len(message) == 0 {
		message = []Fragment{Text(DefaultPauseText)}
	}
	c.Print(message...)
	_, err := c.Input(ctx)
	return err
}
