// Package terminal implements the console port over a line-based text
// stream: stdin/stdout for local play, or a telnet connection for remote
// sessions. Styling goes through lipgloss so both ends share one look.
package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brr-dev/zenith/internal/console"
)

const ruleWidth = 40

// Styles is the look of each fragment kind.
type Styles struct {
	Text  lipgloss.Style
	Tag   lipgloss.Style
	Title lipgloss.Style
	Rule  lipgloss.Style
}

// DefaultStyles returns the stock look: plain narration, highlighted
// typeable tags, an emphasized title, and a dim divider.
func DefaultStyles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")),
		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FD7FF")).
			Underline(true),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true),
		Rule: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3C3C3C")),
	}
}

// Renderer flattens console fragments into a styled string.
type Renderer struct {
	styles Styles
}

// NewRenderer creates a Renderer with the given styles.
func NewRenderer(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render writes each fragment in order: breaks become newlines, tags and
// titles pick up their styles, rules become a fixed-width divider.
func (r *Renderer) Render(frags []console.Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		switch f.Kind {
		case console.KindBreak:
			b.WriteByte('\n')
		case console.KindTag:
			b.WriteString(r.styles.Tag.Render(f.Text))
		case console.KindTitle:
			b.WriteString(r.styles.Title.Render(f.Text))
		case console.KindRule:
			b.WriteString(r.styles.Rule.Render(strings.Repeat("-", ruleWidth)))
		default:
			b.WriteString(r.styles.Text.Render(f.Text))
		}
	}
	return b.String()
}
