package app

import (
	"fmt"
	"runtime/debug"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/scrolldemo/internal/logging"
	"github.com/andyrewlee/scrolldemo/internal/messages"
	"github.com/andyrewlee/scrolldemo/internal/ui/common"
)

// Update handles all messages with panic recovery.
func (a *App) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("panic in app.Update: %v\n%s", r, debug.Stack())
			a.err = fmt.Errorf("internal error: %v", r)
			model = a
			cmd = nil
		}
	}()
	return a.update(msg)
}

func (a *App) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The about overlay swallows input until dismissed.
	if a.showAbout {
		switch msg.(type) {
		case tea.KeyPressMsg, tea.MouseClickMsg:
			a.showAbout = false
			return a, nil
		case tea.MouseWheelMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg:
			return a, nil
		}
	}

	// Allow clicking to dismiss error overlays
	if mouseMsg, ok := msg.(tea.MouseClickMsg); ok && mouseMsg.Button == tea.MouseLeft {
		if a.err != nil {
			a.err = nil
			return a, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a, a.safeCmd(a.handleWindowSize(msg))

	case tea.KeyPressMsg:
		return a, a.safeCmd(a.handleKeyPress(msg))

	case tea.MouseClickMsg, tea.MouseWheelMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg:
		return a, a.safeCmd(a.handleMouseMsg(msg))

	case messages.TopItemChanged:
		logging.Debug("%s list top item %d", msg.Pane, msg.TopItem)
		return a, nil

	case messages.ToggleAbout:
		a.showAbout = !a.showAbout
		return a, nil

	case messages.CopyHovered:
		return a, a.safeCmd(a.copyHovered())

	case messages.ConfigReloaded:
		return a, a.safeCmd(a.handleConfigReloaded(msg))

	case messages.Toast:
		return a, a.toast.ShowToast(msg)

	case common.ToastDismissed:
		newToast, cmd := a.toast.Update(msg)
		a.toast = newToast
		return a, cmd

	case messages.Error:
		return a, a.handleErrorMessage(msg)
	}
	return a, nil
}

func (a *App) handleWindowSize(msg tea.WindowSizeMsg) tea.Cmd {
	a.width = msg.Width
	a.height = msg.Height
	a.ready = true
	a.layout.Resize(msg.Width, msg.Height)
	a.clampPanes()
	return a.resizeLists()
}

func (a *App) safeCmd(cmd tea.Cmd) tea.Cmd {
	return common.SafeCmd(cmd)
}
