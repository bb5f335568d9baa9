package app

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/scrolldemo/internal/messages"
)

func (a *App) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	list := a.focusedList()
	switch {
	case key.Matches(msg, a.keymap.Quit):
		a.quitting = true
		a.Shutdown()
		return tea.Quit
	case key.Matches(msg, a.keymap.About):
		a.showAbout = true
		return nil
	case key.Matches(msg, a.keymap.NextPane):
		if a.layout.PaneCount() > 1 {
			next := messages.PaneSecondary
			if a.focusedPane == messages.PaneSecondary {
				next = messages.PanePrimary
			}
			a.focusPane(next)
		}
		return nil
	case key.Matches(msg, a.keymap.CopyLabel):
		return a.copyHovered()
	case key.Matches(msg, a.keymap.MoreColumns):
		return list.SetColumns(list.Columns() + 1)
	case key.Matches(msg, a.keymap.FewerColumns):
		return list.SetColumns(list.Columns() - 1)
	case key.Matches(msg, a.keymap.MoreGap):
		return list.SetGap(list.Gap() + 1)
	case key.Matches(msg, a.keymap.LessGap):
		return list.SetGap(list.Gap() - 1)
	}

	newList, cmd := list.Update(msg)
	a.lists[a.paneIndex(newList.Pane())] = newList
	return cmd
}

func (a *App) paneIndex(pane messages.PaneType) int {
	if pane == messages.PaneSecondary {
		return 1
	}
	return 0
}
