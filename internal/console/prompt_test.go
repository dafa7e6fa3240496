package console_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brr-dev/zenith/internal/console"
	"github.com/brr-dev/zenith/internal/testutil"
)

func TestPrompt_RepromptsUntilNonEmpty(t *testing.T) {
	c := testutil.NewScriptedConsole("", "", "go north")

	line, err := console.Prompt(context.Background(), c,
		[]console.Fragment{console.Text(console.DefaultPromptText)},
		console.PromptOptions{},
	)
	require.NoError(t, err)
	assert.Equal(t, "go north", line)
	assert.Contains(t, c.Transcript(), "What do you do?")
}

func TestPrompt_AllowEmpty(t *testing.T) {
	c := testutil.NewScriptedConsole("")

	line, err := console.Prompt(context.Background(), c, nil, console.PromptOptions{AllowEmpty: true})
	require.NoError(t, err)
	assert.Equal(t, "", line)
}

func TestPrompt_InputError(t *testing.T) {
	c := testutil.NewScriptedConsole()

	_, err := console.Prompt(context.Background(), c, nil, console.PromptOptions{})
	assert.ErrorIs(t, err, testutil.ErrScriptExhausted)
}

func TestConfirm_Answers(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue bool
		want         bool
	}{
		{"y", false, true},
		{"Y", false, true},
		{"yes", false, true},
		{"Yes", false, true},
		{"n", true, false},
		{"N", true, false},
		{"no", true, false},
		{"No", true, false},
		{"", true, true},
		{"", false, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := testutil.NewScriptedConsole(tt.input)
			got, err := console.Confirm(context.Background(), c,
				[]console.Fragment{console.Text("Read the book?")}, tt.defaultValue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirm_SuffixCapitalizesDefault(t *testing.T) {
	c := testutil.NewScriptedConsole("y")
	_, err := console.Confirm(context.Background(), c,
		[]console.Fragment{console.Text("Continue?")}, true)
	require.NoError(t, err)
	assert.Contains(t, c.Transcript(), "Continue? (Y/n)")

	c = testutil.NewScriptedConsole("y")
	_, err = console.Confirm(context.Background(), c,
		[]console.Fragment{console.Text("Continue?")}, false)
	require.NoError(t, err)
	assert.Contains(t, c.Transcript(), "Continue? (y/N)")
}

func TestPause_DefaultMessage(t *testing.T) {
	c := testutil.NewScriptedConsole("anything")

	require.NoError(t, console.Pause(context.Background(), c))
	assert.Contains(t, c.Transcript(), console.DefaultPauseText)
}

func TestPause_CustomMessage(t *testing.T) {
	c := testutil.NewScriptedConsole("")

	require.NoError(t, console.Pause(context.Background(), c, console.Text("You head north...")))
	transcript := c.Transcript()
	assert.Contains(t, transcript, "You head north...")
	assert.NotContains(t, transcript, console.DefaultPauseText)
}

func TestTextLines_Interleaving(t *testing.T) {
	frags := console.TextLines("one\ntwo\nthree")
	require.Len(t, frags, 5)
	assert.Equal(t, console.KindBreak, frags[1].Kind)
	assert.Equal(t, "two", frags[2].Text)
	assert.Equal(t, "three", frags[4].Text)

	single := console.TextLines("just one line")
	require.Len(t, single, 1)
	assert.Equal(t, "just one line", single[0].Text)
}
