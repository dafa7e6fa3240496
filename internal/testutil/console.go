// Package testutil provides shared test doubles for engine and action tests.
package testutil

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/brr-dev/zenith/internal/console"
)

// ErrScriptExhausted is returned by ScriptedConsole.Input when no queued
// lines remain. Tests fail fast instead of deadlocking.
var ErrScriptExhausted = errors.New("testutil: scripted console input exhausted")

// ScriptedConsole is a console.Console fed from a queue of input lines.
// It records every printed fragment and the number of Clear calls.
type ScriptedConsole struct {
	mu sync.Mutex

	inputs    []string
	fragments []console.Fragment
	clears    int
	waiting   bool
	prefix    string

	// OnInput, when set, runs just before each queued line is returned,
	// while WaitingForInput still reports true. Re-entrancy tests hook this.
	OnInput func(pending string)
}

var _ console.Console = (*ScriptedConsole)(nil)

// NewScriptedConsole queues the given input lines for consumption.
func NewScriptedConsole(inputs ...string) *ScriptedConsole {
	return &ScriptedConsole{inputs: inputs}
}

// Queue appends further input lines to the script.
func (s *ScriptedConsole) Queue(inputs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = append(s.inputs, inputs...)
}

// Print records the fragments in order.
func (s *ScriptedConsole) Print(frags ...console.Fragment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fragments = append(s.fragments, frags...)
}

// Clear discards recorded output and counts the call.
func (s *ScriptedConsole) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fragments = nil
	s.clears++
}

// Input pops the next scripted line.
func (s *ScriptedConsole) Input(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.waiting {
		s.mu.Unlock()
		return "", console.ErrInputPending
	}
	if len(s.inputs) == 0 {
		s.mu.Unlock()
		return "", ErrScriptExhausted
	}
	line := s.inputs[0]
	s.inputs = s.inputs[1:]
	s.waiting = true
	hook := s.OnInput
	s.mu.Unlock()

	if hook != nil {
		hook(line)
	}
	if err := ctx.Err(); err != nil {
		s.doneWaiting()
		return "", err
	}

	s.doneWaiting()
	return line, nil
}

func (s *ScriptedConsole) doneWaiting() {
	s.mu.Lock()
	s.waiting = false
	s.mu.Unlock()
}

// WaitingForInput reports whether an Input call is mid-flight.
func (s *ScriptedConsole) WaitingForInput() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waiting
}

// SetInputPrefix records the prompt prefix.
func (s *ScriptedConsole) SetInputPrefix(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefix = prefix
}

// ResetInputPrefix clears the recorded prompt prefix.
func (s *ScriptedConsole) ResetInputPrefix() { s.SetInputPrefix("") }

// Prefix returns the last prompt prefix set.
func (s *ScriptedConsole) Prefix() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefix
}

// Clears returns how many times Clear has been called.
func (s *ScriptedConsole) Clears() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clears
}

// Fragments returns a copy of the fragments printed since the last Clear.
func (s *ScriptedConsole) Fragments() []console.Fragment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]console.Fragment, len(s.fragments))
	copy(out, s.fragments)
	return out
}

// Transcript renders recorded fragments as plain text, breaks as newlines
// and tags wrapped in angle quotes, for substring assertions.
func (s *ScriptedConsole) Transcript() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b strings.Builder
	for _, f := range s.fragments {
		switch f.Kind {
		case console.KindBreak:
			b.WriteByte('\n')
		case console.KindTag:
			b.WriteString(">" + f.Text + "<")
		case console.KindRule:
			b.WriteString("---")
		default:
			b.WriteString(f.Text)
		}
	}
	return b.String()
}
