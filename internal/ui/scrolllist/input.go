package scrolllist

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/scrolldemo/internal/wheel"
)

// KeyMap defines the list scroll bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}

// DefaultKeyMap returns the default scroll bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "top")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "bottom")),
	}
}

var keys = DefaultKeyMap()

// wheelDelta maps a terminal wheel button to a platform delta: one notch,
// positive away from the user on the vertical axis and right on the
// horizontal one.
func wheelDelta(button tea.MouseButton) (int, wheel.Axis, bool) {
	switch button {
	case tea.MouseWheelUp:
		return wheel.Delta, wheel.Vertical, true
	case tea.MouseWheelDown:
		return -wheel.Delta, wheel.Vertical, true
	case tea.MouseWheelRight:
		return wheel.Delta, wheel.Horizontal, true
	case tea.MouseWheelLeft:
		return -wheel.Delta, wheel.Horizontal, true
	}
	return 0, wheel.Vertical, false
}

// Update handles messages. Mouse coordinates are list-local. Wheel input is
// accepted whether or not the list is focused; routing is the caller's job.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseWheelMsg:
		return m, m.handleWheel(msg.Button)

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return m, nil
		}
		if region := m.scrollbarRegion(); region.Contains(msg.X, msg.Y) {
			_, y := region.Local(msg.X, msg.Y)
			m.bar.Press(y)
			return m, m.syncTopItem()
		}
		m.PointerAt(msg.X, msg.Y)
		return m, nil

	case tea.MouseMotionMsg:
		if m.bar.Dragging() {
			_, y := m.scrollbarRegion().Local(msg.X, msg.Y)
			m.bar.Drag(y)
			return m, m.syncTopItem()
		}
		m.PointerAt(msg.X, msg.Y)
		return m, nil

	case tea.MouseReleaseMsg:
		m.bar.Release()
		return m, nil

	case tea.KeyPressMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Up):
			return m, m.scrollBy(-1)
		case key.Matches(msg, keys.Down):
			return m, m.scrollBy(1)
		case key.Matches(msg, keys.PageUp):
			return m, m.scrollBy(-m.fullyVisibleRows)
		case key.Matches(msg, keys.PageDown):
			return m, m.scrollBy(m.fullyVisibleRows)
		case key.Matches(msg, keys.Home):
			return m, m.scrollTo(0)
		case key.Matches(msg, keys.End):
			return m, m.scrollTo(m.rows)
		}
	}
	return m, nil
}

func (m *Model) handleWheel(button tea.MouseButton) tea.Cmd {
	delta, axis, ok := wheelDelta(button)
	if !ok || m.fullyVisibleRows <= 0 {
		return nil
	}
	lines := m.scroller.ScrollLines(m.surface, delta, m.fullyVisibleRows, axis)
	if axis != wheel.Vertical {
		// vertical-only list: horizontal lines are dropped
		return nil
	}
	return m.scrollBy(lines)
}
