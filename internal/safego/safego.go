package safego

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"

	"github.com/andyrewlee/scrolldemo/internal/logging"
)

// PanicHandler receives panic details from recovered goroutines.
type PanicHandler func(name string, recovered any, stack []byte)

var (
	panicHandlerMu sync.RWMutex
	panicHandler   PanicHandler
)

// SetPanicHandler registers a global handler for recovered panics.
func SetPanicHandler(handler PanicHandler) {
	panicHandlerMu.Lock()
	panicHandler = handler
	panicHandlerMu.Unlock()
}

// Run executes fn and converts panics into logged errors.
// This does not recover from runtime-fatal errors (e.g., concurrent map writes).
func Run(name string, fn func()) {
	label := name
	if label == "" {
		label = "goroutine"
	}
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			logging.Error("panic in %s: %v\n%s", label, r, stack)
			notify(label, r, stack)
		}
	}()
	fn()
}

func notify(label string, recovered any, stack []byte) {
	panicHandlerMu.RLock()
	handler := panicHandler
	panicHandlerMu.RUnlock()
	if handler == nil {
		return
	}
	defer func() { _ = recover() }()
	handler(label, recovered, stack)
}

// Go runs fn in a new goroutine with panic recovery.
func Go(name string, fn func()) {
	go Run(name, fn)
}

// GoContext runs a long-lived loop in a new goroutine. Errors other than
// context cancellation are logged when the loop returns.
func GoContext(ctx context.Context, name string, fn func(ctx context.Context) error) {
	Go(name, func() {
		if err := fn(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logging.Warn("%s stopped: %v", name, err)
		}
	})
}
