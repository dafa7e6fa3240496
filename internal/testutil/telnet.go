package testutil

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"
)

// TelnetClient is a minimal telnet test client for end-to-end session
// tests. It reads raw bytes, so assertions see negotiation sequences and
// ANSI styling as sent.
type TelnetClient struct {
	conn   net.Conn
	reader *bufio.Reader
	t      *testing.T
}

// NewTelnetClient dials the given address and returns a test client tied
// to the test's lifetime.
//
// Precondition: addr must be a "host:port" string with a listening server.
// Postcondition: Returns a connected TelnetClient or fails the test.
func NewTelnetClient(t *testing.T, addr string) *TelnetClient {
	t.Helper()

	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		t.Fatalf("connecting to %s: %v", addr, err)
	}
	t.Cleanup(func() { conn.Close() })

	return &TelnetClient{
		conn:   conn,
		reader: bufio.NewReader(conn),
		t:      t,
	}
}

// ReadUntil reads until substr appears in the accumulated output or the
// timeout elapses. It returns everything read, including the match.
//
// Precondition: substr must be non-empty.
// Postcondition: Returns output containing substr, or fails the test.
func (c *TelnetClient) ReadUntil(substr string, timeout time.Duration) string {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(timeout))

	var buf strings.Builder
	tmp := make([]byte, 1024)
	for {
		n, err := c.conn.Read(tmp)
		if n > 0 {
			buf.Write(tmp[:n])
			if strings.Contains(buf.String(), substr) {
				return buf.String()
			}
		}
		if err != nil {
			c.t.Fatalf("reading until %q: got %q, error: %v", substr, buf.String(), err)
		}
	}
}

// Send writes a line of text to the server, appending \r\n.
//
// Precondition: text should not contain trailing newline characters.
func (c *TelnetClient) Send(text string) {
	c.t.Helper()
	_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if _, err := fmt.Fprintf(c.conn, "%s\r\n", text); err != nil {
		c.t.Fatalf("sending %q: %v", text, err)
	}
}

// Close closes the underlying connection.
func (c *TelnetClient) Close() {
	c.conn.Close()
}
