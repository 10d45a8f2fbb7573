package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer provides thread-safe access to a bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// fakeSignals returns a handler whose signal channel the test controls.
func fakeSignals(w *syncBuffer) (*InterruptHandler, <-chan chan<- os.Signal) {
	registered := make(chan chan<- os.Signal, 1)
	h := NewInterruptHandler(w)
	h.notify = func(c chan<- os.Signal) { registered <- c }
	h.stop = func(chan<- os.Signal) {}
	return h, registered
}

func TestNewInterruptHandlerDefaultsToStderr(t *testing.T) {
	h := NewInterruptHandler(nil)
	assert.Equal(t, os.Stderr, h.writer)
	assert.False(t, h.WasInterrupted())
}

func TestHandleInterrupts(t *testing.T) {
	output := &syncBuffer{}
	h, registered := fakeSignals(output)

	ctx, cancel := h.HandleInterrupts(context.Background())
	defer cancel()

	select {
	case <-ctx.Done():
		t.Fatal("context canceled before any signal")
	default:
	}

	sig := <-registered
	sig <- os.Interrupt

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not canceled after interrupt")
	}

	require.Eventually(t, h.WasInterrupted, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, strings.Count(output.String(), "Interrupted, shutting down"))
}

func TestHandleInterruptsParentCanceled(t *testing.T) {
	output := &syncBuffer{}
	h, _ := fakeSignals(output)

	parent, cancelParent := context.WithCancel(context.Background())
	ctx, cancel := h.HandleInterrupts(parent)
	defer cancel()

	cancelParent()
	<-ctx.Done()

	assert.False(t, h.WasInterrupted())
	assert.Empty(t, output.String())
}
