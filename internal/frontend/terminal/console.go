package terminal

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/brr-dev/zenith/internal/console"
)

// DefaultInputPrefix is printed before every input read unless an action
// overrides it with SetInputPrefix.
const DefaultInputPrefix = ">> "

// clearScreen is the ANSI erase-display + home sequence.
const clearScreen = "\033[2J\033[H"

// LineReader reads one line of input, without the trailing newline.
// bufio wrappers and telnet connections both satisfy it.
type LineReader interface {
	ReadLine() (string, error)
}

type readResult struct {
	line string
	err  error
}

// Console implements the console port over a LineReader and an
// io.Writer. Reads are pumped through a goroutine so Input can honor
// context cancellation even while the underlying reader blocks.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	r       *Renderer
	lines   chan readResult
	waiting bool
	prefix  string
}

var _ console.Console = (*Console)(nil)

// New creates a Console and starts its read pump. The pump exits when the
// reader returns an error, typically on EOF or connection close.
func New(in LineReader, out io.Writer, r *Renderer) *Console {
	c := &Console{
		out:    out,
		r:      r,
		lines:  make(chan readResult),
		prefix: DefaultInputPrefix,
	}
	go c.pump(in)
	return c
}

func (c *Console) pump(in LineReader) {
	for {
		line, err := in.ReadLine()
		c.lines <- readResult{line: line, err: err}
		if err != nil {
			close(c.lines)
			return
		}
	}
}

// Print renders the fragments and writes them to the output stream.
func (c *Console) Print(frags ...console.Fragment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, c.r.Render(frags)) //nolint:errcheck // narration writes are best-effort
}

// Clear erases the screen.
func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, clearScreen) //nolint:errcheck // narration writes are best-effort
}

// Input prints the prompt prefix and blocks for one line. Only one read
// may be outstanding; a second concurrent call fails with ErrInputPending.
func (c *Console) Input(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.waiting {
		c.mu.Unlock()
		return "", console.ErrInputPending
	}
	c.waiting = true
	fmt.Fprint(c.out, "\n"+c.prefix) //nolint:errcheck // narration writes are best-effort
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.waiting = false
		c.mu.Unlock()
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

// WaitingForInput reports whether a read is outstanding.
func (c *Console) WaitingForInput() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.waiting
}

// SetInputPrefix overrides the prompt prefix for subsequent reads.
func (c *Console) SetInputPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prefix = prefix
}

// ResetInputPrefix restores the default prompt prefix.
func (c *Console) ResetInputPrefix() {
	c.SetInputPrefix(DefaultInputPrefix)
}
