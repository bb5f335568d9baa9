package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/scrolldemo/internal/logging"
	"github.com/andyrewlee/scrolldemo/internal/ui/common"
	"github.com/andyrewlee/scrolldemo/internal/wheel"
)

// View renders the menu, the list panes and the status line.
func (a *App) View() tea.View {
	view := tea.View{
		AltScreen:   true,
		MouseMode:   tea.MouseModeAllMotion,
		WindowTitle: a.windowTitle(),
	}

	if a.quitting {
		view.SetContent("")
		return view
	}
	if !a.ready {
		view.SetContent("Loading...")
		return view
	}

	panes := make([]string, 0, 2)
	for i, list := range a.visibleLists() {
		rect := a.layout.PaneRect(i)
		panes = append(panes, buildBorderedPane(list.View(), rect.Width, rect.Height, list.Focused()))
	}
	if a.showAbout {
		panes = []string{a.renderAbout()}
	}

	content := a.layout.Render(a.renderMenu(), panes, a.renderStatus())
	if a.zone != nil {
		content = a.zone.Scan(content)
	}
	view.SetContent(content)
	return view
}

// windowTitle mirrors the first visible item of the focused list.
func (a *App) windowTitle() string {
	return fmt.Sprintf("%s (TopItem: %d)", appName, a.focusedList().TopItem())
}

func (a *App) menuRegions(items []menuItem) []common.HitRegion {
	regions := make([]common.HitRegion, len(items))
	x := 0
	for i, item := range items {
		w := lipgloss.Width(a.renderMenuItem(item))
		regions[i] = common.HitRegion{ID: "menu-" + item.label, X: x, Y: 0, Width: w, Height: 1}
		x += w
	}
	return regions
}

func (a *App) renderMenuItem(item menuItem) string {
	return a.styles.MenuItem.Render(item.group+": "+item.label) + a.styles.MenuKey.Render(item.key) + a.styles.MenuBar.Render(" ")
}

func (a *App) renderMenu() string {
	var b strings.Builder
	for _, item := range a.menuItems() {
		b.WriteString(a.renderMenuItem(item))
	}
	return a.styles.MenuBar.Render(common.FitLine(b.String(), a.width))
}

func (a *App) renderStatus() string {
	var parts []string

	if a.hoverPane >= 0 {
		parts = append(parts, fmt.Sprintf("%d", a.lists[a.hoverPane].Hovered()))
	}
	list := a.focusedList()
	if a.hoverPane >= 0 {
		list = a.lists[a.hoverPane]
	}
	parts = append(parts, fmt.Sprintf("%d×%d", list.Width(), list.Height()))

	var tail string
	switch {
	case a.err != nil:
		tail = a.styles.ToastError.Render("✗ " + a.err.Error())
	case a.toast.Visible():
		tail = a.toast.View()
	default:
		tail = common.RenderHelpBar(a.styles, a.helpBindings(), a.width)
	}

	left := " " + strings.Join(parts, " │ ") + " │ "
	return a.styles.StatusBar.Render(common.FitLine(left+tail, a.width))
}

func (a *App) helpBindings() []common.HelpBinding {
	bindings := []common.HelpBinding{
		{Key: "↑↓ pgup pgdn", Desc: "scroll"},
		{Key: "+/-", Desc: "columns"},
		{Key: "[/]", Desc: "gap"},
	}
	if common.ClipboardAvailable() {
		bindings = append(bindings, common.HelpBinding{Key: "y", Desc: "copy"})
	}
	if a.layout.PaneCount() > 1 {
		bindings = append(bindings, common.HelpBinding{Key: "tab", Desc: "switch list"})
	}
	return bindings
}

func (a *App) renderAbout() string {
	rect := a.layout.PaneRect(0)
	if a.layout.PaneCount() > 1 {
		rect.Width = a.layout.Width()
	}
	lines := []string{
		a.styles.Title.Render(appName),
		"",
		a.styles.Body.Render("A single-axis scrolling list with"),
		a.styles.Body.Render("normalized mouse-wheel input."),
		"",
		a.styles.Muted.Render(fmt.Sprintf("%d lines per notch, %d ms activity window",
			a.normalizer.LinesPerNotch(wheel.Vertical, a.focusedList().FullyVisibleRows()),
			2*a.wheelDoubleClick())),
	}
	if path := logging.GetLogPath(); path != "" {
		lines = append(lines, a.styles.Muted.Render("log: "+path))
	}
	lines = append(lines, "", a.styles.Muted.Render("Press any key to close"))
	body := strings.Join(lines, "\n")
	return lipgloss.Place(rect.Width, rect.Height, lipgloss.Center, lipgloss.Center, a.styles.Dialog.Render(body))
}

func (a *App) wheelDoubleClick() uint32 {
	return a.config.WheelSystem(a.system).DoubleClickTime()
}
