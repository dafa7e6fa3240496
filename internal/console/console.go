// Package console defines the I/O port between the game engine and its
// environment. The engine emits opaque output fragments and reads plain
// text lines; rendering is the environment's concern.
package console

import (
	"context"
	"errors"
)

// ErrInputPending is returned by Input when a previous request has not yet
// resolved. Implementations hold at most one outstanding input request.
var ErrInputPending = errors.New("console: input request already pending")

// Kind discriminates output fragment variants.
type Kind int

// Fragment kinds understood by renderers.
const (
	// KindText is a run of plain narration text.
	KindText Kind = iota
	// KindBreak is a line break between fragments.
	KindBreak
	// KindTag is a literal command the player can type, rendered highlighted.
	KindTag
	// KindTitle is a heading line, rendered centered or emphasized.
	KindTitle
	// KindRule is a horizontal divider.
	KindRule
)

// Fragment is one unit of output. The engine treats fragments as opaque;
// only renderers interpret Kind.
type Fragment struct {
	Kind Kind
	Text string
}

// Text builds a plain text fragment.
func Text(s string) Fragment { return Fragment{Kind: KindText, Text: s} }

// Break builds a line-break fragment.
func Break() Fragment { return Fragment{Kind: KindBreak} }

// Tag builds a typeable-command fragment.
func Tag(s string) Fragment { return Fragment{Kind: KindTag, Text: s} }

// Title builds a heading fragment.
func Title(s string) Fragment { return Fragment{Kind: KindTitle, Text: s} }

// Rule builds a divider fragment.
func Rule() Fragment { return Fragment{Kind: KindRule} }

// TextLines splits s on newlines and interleaves Break fragments, so
// multi-line narration renders as separate lines.
func TextLines(s string) []Fragment {
	var frags []Fragment
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			frags = append(frags, Text(s[start:i]), Break())
			start = i + 1
		}
	}
	return append(frags, Text(s[start:]))
}

// Console is the engine's sole I/O boundary.
//
// Print and Clear are non-blocking. Input blocks the caller until the
// environment delivers a line of text; at most one Input call may be
// outstanding at a time (ErrInputPending otherwise). Fragments appear in
// call order, across calls.
type Console interface {
	// Print appends output fragments in order.
	Print(frags ...Fragment)
	// Clear resets accumulated output.
	Clear()
	// Input blocks until a line of text is available or ctx is done.
	Input(ctx context.Context) (string, error)
	// WaitingForInput reports whether an Input call is currently pending.
	// The engine uses this for its re-entrancy guard.
	WaitingForInput() bool
	// SetInputPrefix sets the cosmetic prompt prefix shown before input.
	SetInputPrefix(prefix string)
	// ResetInputPrefix restores the default prompt prefix.
	ResetInputPrefix()
}
