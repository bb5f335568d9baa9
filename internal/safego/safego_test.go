package safego

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type panicRecord struct {
	mu    sync.Mutex
	name  string
	value any
	calls int
}

func (r *panicRecord) handler(name string, recovered any, _ []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.name, r.value = name, recovered
	r.calls++
}

func (r *panicRecord) snapshot() (string, any, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.name, r.value, r.calls
}

func TestRunRecoversAndNotifies(t *testing.T) {
	rec := &panicRecord{}
	SetPanicHandler(rec.handler)
	defer SetPanicHandler(nil)

	Run("config-watcher", func() { panic("boom") })

	name, value, calls := rec.snapshot()
	if calls != 1 || name != "config-watcher" || value != "boom" {
		t.Fatalf("expected one boom from config-watcher, got %d %q %v", calls, name, value)
	}
}

func TestRunWithoutPanicSkipsHandler(t *testing.T) {
	rec := &panicRecord{}
	SetPanicHandler(rec.handler)
	defer SetPanicHandler(nil)

	ran := false
	Run("quiet", func() { ran = true })
	if !ran {
		t.Fatalf("expected fn to run")
	}
	if _, _, calls := rec.snapshot(); calls != 0 {
		t.Fatalf("expected no handler calls, got %d", calls)
	}
}

func TestRunDefaultsEmptyName(t *testing.T) {
	rec := &panicRecord{}
	SetPanicHandler(rec.handler)
	defer SetPanicHandler(nil)

	Run("", func() { panic("x") })
	if name, _, _ := rec.snapshot(); name != "goroutine" {
		t.Fatalf("expected default label, got %q", name)
	}
}

func TestRunSurvivesPanickingHandler(t *testing.T) {
	SetPanicHandler(func(string, any, []byte) { panic("handler") })
	defer SetPanicHandler(nil)

	Run("outer", func() { panic("inner") })
}

func TestGoRecoversInGoroutine(t *testing.T) {
	done := make(chan struct{})
	SetPanicHandler(func(string, any, []byte) { close(done) })
	defer SetPanicHandler(nil)

	Go("bg", func() { panic("bg") })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for recovered panic")
	}
}

func TestGoContextStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error, 1)
	GoContext(ctx, "loop", func(ctx context.Context) error {
		<-ctx.Done()
		stopped <- ctx.Err()
		return ctx.Err()
	})
	cancel()
	select {
	case err := <-stopped:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("loop did not stop")
	}
}
