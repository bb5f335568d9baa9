package layout

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/scrolldemo/internal/ui/common"
)

// LayoutMode determines how many lists are visible
type LayoutMode int

const (
	LayoutSingle LayoutMode = iota // one list
	LayoutSplit                    // two lists side by side
)

func (m LayoutMode) String() string {
	if m == LayoutSplit {
		return "split"
	}
	return "single"
}

const (
	menuHeight   = 1
	statusHeight = 1
	paneBorder   = 1 // border cells on each side of a pane
)

// Manager lays out the menu line, the list panes and the status line.
type Manager struct {
	mode  LayoutMode
	split bool // split requested by config

	totalWidth  int
	totalHeight int

	gapX int

	panes [2]common.HitRegion

	// Configuration
	minPaneWidth int
}

// NewManager creates a new layout manager
func NewManager() *Manager {
	return &Manager{
		gapX:         1,
		minPaneWidth: 16,
	}
}

// SetSplit requests two panes. The split only happens when the width allows.
func (m *Manager) SetSplit(split bool) {
	if m.split == split {
		return
	}
	m.split = split
	m.Resize(m.totalWidth, m.totalHeight)
}

// Resize recalculates layout based on new dimensions
func (m *Manager) Resize(width, height int) {
	m.totalWidth = max(0, width)
	m.totalHeight = max(0, height)

	usableWidth := m.totalWidth
	paneHeight := max(0, m.totalHeight-menuHeight-statusHeight)

	m.panes = [2]common.HitRegion{}
	if m.split && usableWidth >= 2*m.minPaneWidth+m.gapX {
		m.mode = LayoutSplit
		leftWidth := (usableWidth - m.gapX) / 2
		rightWidth := usableWidth - m.gapX - leftWidth
		m.panes[0] = common.HitRegion{ID: "pane-primary", X: 0, Y: menuHeight, Width: leftWidth, Height: paneHeight}
		m.panes[1] = common.HitRegion{ID: "pane-secondary", X: leftWidth + m.gapX, Y: menuHeight, Width: rightWidth, Height: paneHeight}
		return
	}
	m.mode = LayoutSingle
	m.panes[0] = common.HitRegion{ID: "pane-primary", X: 0, Y: menuHeight, Width: usableWidth, Height: paneHeight}
}

// Mode returns the current layout mode
func (m *Manager) Mode() LayoutMode {
	return m.mode
}

// PaneCount returns how many list panes are shown.
func (m *Manager) PaneCount() int {
	if m.mode == LayoutSplit {
		return 2
	}
	return 1
}

// PaneRect returns the screen rect of pane i, border included.
func (m *Manager) PaneRect(i int) common.HitRegion {
	if i < 0 || i >= m.PaneCount() {
		return common.HitRegion{}
	}
	return m.panes[i]
}

// ListRect returns the screen rect of the list inside pane i.
func (m *Manager) ListRect(i int) common.HitRegion {
	pane := m.PaneRect(i)
	if pane.Empty() {
		return pane
	}
	return common.HitRegion{
		ID:     pane.ID + "-list",
		X:      pane.X + paneBorder,
		Y:      pane.Y + paneBorder,
		Width:  max(0, pane.Width-2*paneBorder),
		Height: max(0, pane.Height-2*paneBorder),
	}
}

// PaneAt returns the pane index under screen point (x, y), or -1.
func (m *Manager) PaneAt(x, y int) int {
	for i := 0; i < m.PaneCount(); i++ {
		if m.panes[i].Contains(x, y) {
			return i
		}
	}
	return -1
}

// StatusY returns the row of the status line.
func (m *Manager) StatusY() int {
	return max(0, m.totalHeight-statusHeight)
}

// Width returns the total width
func (m *Manager) Width() int {
	return m.totalWidth
}

// Height returns the total height
func (m *Manager) Height() int {
	return m.totalHeight
}

// GapX returns the horizontal gap between panes.
func (m *Manager) GapX() int {
	return m.gapX
}

// Render stacks the menu, the panes and the status line.
func (m *Manager) Render(menu string, panes []string, status string) string {
	var body string
	switch {
	case m.mode == LayoutSplit && len(panes) >= 2:
		if m.gapX > 0 {
			gap := strings.Repeat(" ", m.gapX)
			body = lipgloss.JoinHorizontal(lipgloss.Top, panes[0], gap, panes[1])
		} else {
			body = lipgloss.JoinHorizontal(lipgloss.Top, panes[0], panes[1])
		}
	case len(panes) > 0:
		body = panes[0]
	}
	return strings.Join([]string{menu, body, status}, "\n")
}
