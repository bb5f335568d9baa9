package scrollbar

import "github.com/andyrewlee/scrolldemo/internal/ui/common"

// Model is a one-column vertical scrollbar. Value ranges over
// [0, Maximum-LargeChange]; LargeChange is the number of rows shown per page.
type Model struct {
	value       int
	maximum     int
	largeChange int
	smallChange int
	enabled     bool
	visible     bool
	height      int

	dragging   bool
	dragOffset int

	styles common.Styles
}

// New creates a hidden, disabled scrollbar.
func New() *Model {
	return &Model{
		largeChange: 1,
		smallChange: 1,
		styles:      common.DefaultStyles(),
	}
}

// SetStyles updates the component's styles.
func (m *Model) SetStyles(styles common.Styles) { m.styles = styles }

// Width is always one cell.
func (m *Model) Width() int { return 1 }

// Height returns the rendered height.
func (m *Model) Height() int { return m.height }

// SetHeight sets the rendered height.
func (m *Model) SetHeight(h int) {
	if h < 0 {
		h = 0
	}
	m.height = h
}

// Value returns the first visible row.
func (m *Model) Value() int { return m.value }

// Maximum returns the total number of rows.
func (m *Model) Maximum() int { return m.maximum }

// LargeChange returns the page size.
func (m *Model) LargeChange() int { return m.largeChange }

// Enabled reports whether the scrollbar accepts input.
func (m *Model) Enabled() bool { return m.enabled }

// Visible reports whether the scrollbar is drawn.
func (m *Model) Visible() bool { return m.visible }

// SetEnabled toggles input handling. Disabling ends any drag.
func (m *Model) SetEnabled(enabled bool) {
	m.enabled = enabled
	if !enabled {
		m.dragging = false
	}
}

// SetVisible toggles drawing.
func (m *Model) SetVisible(visible bool) { m.visible = visible }

// SetMaximum sets the total row count and re-clamps the value.
func (m *Model) SetMaximum(n int) {
	if n < 0 {
		n = 0
	}
	m.maximum = n
	m.SetValue(m.value)
}

// SetLargeChange sets the page size and re-clamps the value.
func (m *Model) SetLargeChange(n int) {
	if n < 1 {
		n = 1
	}
	m.largeChange = n
	m.SetValue(m.value)
}

// MaxValue is the largest reachable value.
func (m *Model) MaxValue() int {
	return max(0, m.maximum-m.largeChange)
}

// SetValue clamps v into range and reports whether the value changed.
func (m *Model) SetValue(v int) bool {
	v = max(0, min(v, m.MaxValue()))
	if v == m.value {
		return false
	}
	m.value = v
	return true
}

// LineUp scrolls one row up.
func (m *Model) LineUp() bool { return m.SetValue(m.value - m.smallChange) }

// LineDown scrolls one row down.
func (m *Model) LineDown() bool { return m.SetValue(m.value + m.smallChange) }

// PageUp scrolls one page up.
func (m *Model) PageUp() bool { return m.SetValue(m.value - m.largeChange) }

// PageDown scrolls one page down.
func (m *Model) PageDown() bool { return m.SetValue(m.value + m.largeChange) }

// Dragging reports whether the thumb is being dragged.
func (m *Model) Dragging() bool { return m.dragging }
