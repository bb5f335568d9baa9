package common

import (
	"fmt"
	"runtime/debug"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/scrolldemo/internal/logging"
	"github.com/andyrewlee/scrolldemo/internal/messages"
)

// recoverInto turns a panic in a command body into a messages.Error stored
// in *msg. It must be deferred directly.
func recoverInto(where string, msg *tea.Msg) {
	r := recover()
	if r == nil {
		return
	}
	logging.Error("panic in %s: %v\n%s", where, r, debug.Stack())
	*msg = messages.Error{Err: fmt.Errorf("%s panic: %v", where, r), Context: where, Logged: true}
}

// SafeCmd wraps cmd so a panic becomes a messages.Error instead of killing
// the program.
func SafeCmd(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() (msg tea.Msg) {
		defer recoverInto("command", &msg)
		return cmd()
	}
}

// SafeTick is tea.Tick with the same recovery applied to fn.
func SafeTick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	if fn == nil {
		return nil
	}
	return tea.Tick(d, func(t time.Time) (msg tea.Msg) {
		defer recoverInto("tick", &msg)
		return fn(t)
	})
}
