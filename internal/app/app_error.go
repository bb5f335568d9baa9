package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/scrolldemo/internal/logging"
	"github.com/andyrewlee/scrolldemo/internal/messages"
)

func (a *App) handleErrorMessage(msg messages.Error) tea.Cmd {
	if msg.Err == nil {
		return nil
	}
	a.err = msg.Err
	if !msg.Logged {
		logging.Error("Error in %s: %v", msg.Context, msg.Err)
	}
	return nil
}

// ReportPanic surfaces a recovered background panic in the status line.
func (a *App) ReportPanic(name string, recovered any) {
	a.enqueueExternalMsg(messages.Error{
		Err:     fmt.Errorf("%s panic: %v", name, recovered),
		Context: name,
		Logged:  true,
	})
}
