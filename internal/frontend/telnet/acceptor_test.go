package telnet_test

import (
	"bufio"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/brr-dev/zenith/internal/config"
	"github.com/brr-dev/zenith/internal/frontend/telnet"
)

func startAcceptor(t *testing.T, handler telnet.SessionHandler) *telnet.Acceptor {
	t.Helper()
	cfg := config.TelnetConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}
	a := telnet.NewAcceptor(cfg, handler, zaptest.NewLogger(t))

	go func() { _ = a.Start() }() //nolint:errcheck
	require.Eventually(t, func() bool { return a.Addr() != "" }, 2*time.Second, 10*time.Millisecond)
	t.Cleanup(a.Stop)
	return a
}

func TestAcceptor_DispatchesSession(t *testing.T) {
	greeted := make(chan string, 1)
	handler := telnet.SessionHandlerFunc(func(ctx context.Context, conn *telnet.Conn) error {
		if _, err := conn.Write([]byte("Welcome.\n")); err != nil {
			return err
		}
		line, err := conn.ReadLine()
		if err != nil {
			return err
		}
		greeted <- line
		return nil
	})

	a := startAcceptor(t, handler)

	client, err := net.Dial("tcp", a.Addr())
	require.NoError(t, err)
	defer client.Close()

	reader := bufio.NewReader(client)
	welcome, err := reader.ReadString('\n')
	require.NoError(t, err)
	// Strip the leading negotiation bytes before the text.
	assert.Contains(t, welcome, "Welcome.")
	assert.True(t, strings.HasSuffix(welcome, "\r\n"))

	_, err = client.Write([]byte("hello\r\n"))
	require.NoError(t, err)

	select {
	case line := <-greeted:
		assert.Equal(t, "hello", line)
	case <-time.After(2 * time.Second):
		t.Fatal("handler never received input")
	}
}

func TestAcceptor_StopUnblocksStart(t *testing.T) {
	handler := telnet.SessionHandlerFunc(func(ctx context.Context, conn *telnet.Conn) error {
		<-ctx.Done()
		return ctx.Err()
	})

	a := startAcceptor(t, handler)

	done := make(chan struct{})
	go func() {
		a.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}
