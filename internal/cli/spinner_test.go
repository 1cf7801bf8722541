package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/justify/pkg/cache"
	"github.com/matzehuels/justify/pkg/errors"
)

// syncBuffer guards a bytes.Buffer shared with the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func quietSpinner(ctx context.Context, msg string) (*Spinner, *syncBuffer) {
	var out syncBuffer
	s := newSpinnerWithContext(ctx, msg)
	s.out = &out
	return s, &out
}

func TestSpinnerRendersMessage(t *testing.T) {
	s, out := quietSpinner(context.Background(), "Connecting to redis...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(out.String(), "Connecting to redis...") {
		t.Errorf("spinner output should contain the message: %q", out.String())
	}
	if s.Cancelled() {
		t.Error("a stopped spinner is not cancelled")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s, _ := quietSpinner(ctx, "Testing with context...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s, _ := quietSpinner(ctx, "Testing with timeout...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s, _ := quietSpinner(context.Background(), "Testing idempotent stop...")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithMessages(t *testing.T) {
	s, out := quietSpinner(context.Background(), "Working...")
	s.Start()
	s.StopWithSuccess("Done!")
	if !strings.Contains(out.String(), iconSuccess+" Done!") {
		t.Errorf("success output: %q", out.String())
	}

	s, out = quietSpinner(context.Background(), "Working...")
	s.Start()
	s.StopWithError("Failed!")
	if !strings.Contains(out.String(), iconError+" Failed!") {
		t.Errorf("error output: %q", out.String())
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s, _ := quietSpinner(context.Background(), "Never started...")

	done := make(chan struct{})
	go func() {
		s.Stop()
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a spinner that was never started")
	}
	if s.Cancelled() {
		t.Error("a stopped spinner is not cancelled")
	}
}

func TestSpinnerStartTwice(t *testing.T) {
	s, _ := quietSpinner(context.Background(), "Starting twice...")
	s.Start()
	s.Start()
	s.Stop()
}

func TestNewSpinnerDefaults(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "Test")
	if s.out == nil || len(s.frames) == 0 {
		t.Error("new spinners should write to stderr with default frames")
	}
}

func TestConnect(t *testing.T) {
	var out syncBuffer
	backend, err := connect(context.Background(), &out, "memory", func() (cache.Cache, error) {
		return cache.NewMemoryCache(), nil
	})
	if err != nil {
		t.Fatalf("connect error: %v", err)
	}
	defer backend.Close()
	if !strings.Contains(out.String(), iconSuccess+" Connected to memory") {
		t.Errorf("success output: %q", out.String())
	}
}

func TestConnectFailure(t *testing.T) {
	var out syncBuffer
	failure := errors.New(errors.ErrCodeNetwork, "ping redis at localhost:1")
	_, err := connect(context.Background(), &out, "redis", func() (cache.Cache, error) {
		return nil, failure
	})
	if err != failure {
		t.Errorf("err = %v, want the constructor error", err)
	}
	if !strings.Contains(out.String(), iconError+" Could not connect to redis") {
		t.Errorf("error output: %q", out.String())
	}
}

func TestConnectCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer

	closed := false
	_, err := connect(ctx, &out, "mongo", func() (cache.Cache, error) {
		cancel()
		return &closeRecorder{Cache: cache.NewNullCache(), closed: &closed}, nil
	})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if !closed {
		t.Error("a backend opened after cancellation should be closed")
	}
	if strings.Contains(out.String(), "Connected") {
		t.Errorf("cancelled connect should not report success: %q", out.String())
	}
}

type closeRecorder struct {
	cache.Cache
	closed *bool
}

func (c *closeRecorder) Close() error {
	*c.closed = true
	return nil
}
