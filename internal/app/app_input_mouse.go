package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/scrolldemo/internal/messages"
	"github.com/andyrewlee/scrolldemo/internal/ui/common"
)

func (a *App) handleMouseMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		return a.routeMouseClick(msg)
	case tea.MouseWheelMsg:
		return a.routeMouseWheel(msg)
	case tea.MouseMotionMsg:
		return a.routeMouseMotion(msg)
	case tea.MouseReleaseMsg:
		return a.routeMouseRelease(msg)
	default:
		return nil
	}
}

// routeMouseClick focuses the list under the pointer and forwards the click.
func (a *App) routeMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if msg.Y == 0 && msg.Button == tea.MouseLeft {
		return a.handleMenuClick(msg.X)
	}
	i := a.listAt(msg.X, msg.Y)
	if i < 0 {
		return nil
	}
	if msg.Button == tea.MouseLeft {
		a.focusPane(a.lists[i].Pane())
	}
	local := msg
	local.X, local.Y = a.layout.ListRect(i).Local(msg.X, msg.Y)
	newList, cmd := a.lists[i].Update(local)
	a.lists[i] = newList
	return cmd
}

// routeMouseWheel delivers the wheel to the list under the pointer when
// redirect is on, otherwise to the focused list.
func (a *App) routeMouseWheel(msg tea.MouseWheelMsg) tea.Cmd {
	i := a.paneIndex(a.focusedPane)
	if a.redirectWheel() {
		if under := a.listAt(msg.X, msg.Y); under >= 0 {
			i = under
		}
	}
	local := msg
	local.X, local.Y = a.layout.ListRect(i).Local(msg.X, msg.Y)
	newList, cmd := a.lists[i].Update(local)
	a.lists[i] = newList
	return cmd
}

// routeMouseMotion updates hover state and forwards scrollbar drags to the
// focused list even when the pointer leaves it.
func (a *App) routeMouseMotion(msg tea.MouseMotionMsg) tea.Cmd {
	focused := a.paneIndex(a.focusedPane)
	if a.lists[focused].Scrollbar().Dragging() {
		local := msg
		local.X, local.Y = a.layout.ListRect(focused).Local(msg.X, msg.Y)
		newList, cmd := a.lists[focused].Update(local)
		a.lists[focused] = newList
		return cmd
	}

	i := a.listAt(msg.X, msg.Y)
	if i != a.hoverPane && a.hoverPane >= 0 {
		a.lists[a.hoverPane].ClearHover()
	}
	a.hoverPane = i
	if i < 0 {
		return nil
	}
	local := msg
	local.X, local.Y = a.layout.ListRect(i).Local(msg.X, msg.Y)
	newList, cmd := a.lists[i].Update(local)
	a.lists[i] = newList
	return cmd
}

func (a *App) routeMouseRelease(msg tea.MouseReleaseMsg) tea.Cmd {
	for i, list := range a.visibleLists() {
		newList, _ := list.Update(msg)
		a.lists[i] = newList
	}
	return nil
}

func (a *App) redirectWheel() bool {
	return a.config == nil || a.config.Wheel.RedirectUnfocused
}

// listAt returns the index of the visible list under screen point (x, y),
// or -1. Zones recorded by the last render win; the layout rects cover the
// first frame and the window before zones are scanned.
func (a *App) listAt(x, y int) int {
	for i, list := range a.visibleLists() {
		if a.zone == nil {
			break
		}
		z := a.zone.Get(list.ZoneID())
		if z == nil || z.IsZero() {
			continue
		}
		if x >= z.StartX && x <= z.EndX && y >= z.StartY && y <= z.EndY {
			return i
		}
	}
	for i := range a.visibleLists() {
		if a.layout.ListRect(i).Contains(x, y) {
			return i
		}
	}
	return -1
}

type menuItem struct {
	group  string
	label  string
	key    string
	action func() tea.Cmd
}

// menuItems returns the menu entries in display order.
func (a *App) menuItems() []menuItem {
	return []menuItem{
		{group: "File", label: "Exit", key: "q", action: func() tea.Cmd {
			a.quitting = true
			a.Shutdown()
			return tea.Quit
		}},
		{group: "Help", label: "About", key: "?", action: func() tea.Cmd {
			return func() tea.Msg { return messages.ToggleAbout{} }
		}},
	}
}

func (a *App) handleMenuClick(x int) tea.Cmd {
	items := a.menuItems()
	for i, region := range a.menuRegions(items) {
		if region.Contains(x, 0) {
			return items[i].action()
		}
	}
	return nil
}

// hoveredLabel returns the label of the item under the pointer.
func (a *App) hoveredLabel() (string, bool) {
	if a.hoverPane < 0 {
		return "", false
	}
	index := a.lists[a.hoverPane].Hovered()
	if index < 0 {
		return "", false
	}
	return common.FormatNumber(index), true
}
