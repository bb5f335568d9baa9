// Package scrolllist implements a virtualized grid of fixed-height items
// with a vertical scrollbar and normalized mouse-wheel scrolling.
package scrolllist

import (
	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/scrolldemo/internal/messages"
	"github.com/andyrewlee/scrolldemo/internal/ui/common"
	"github.com/andyrewlee/scrolldemo/internal/ui/scrollbar"
	"github.com/andyrewlee/scrolldemo/internal/wheel"
)

const (
	defaultColumns    = 1
	defaultItemHeight = 3
)

// Model is the Bubble Tea model for one scroll list.
type Model struct {
	// Identity
	pane     messages.PaneType
	surface  wheel.SurfaceID
	scroller wheel.Scroller

	// Items
	itemCount  int
	columns    int
	gap        int
	itemHeight int
	padding    int
	topItem    int

	// Derived by defineRows
	rows             int
	fullyVisibleRows int
	visibleRows      int

	// State
	focused  bool
	hovered  int
	pointer  bool // pointer is over the list
	pointerX int
	pointerY int

	// Layout
	width  int
	height int

	bar    *scrollbar.Model
	zone   *zone.Manager
	zoneID string
	styles common.Styles
}

// New creates a list whose wheel input is resolved by scroller. A nil
// scroller uses the process-wide normalizer.
func New(pane messages.PaneType, scroller wheel.Scroller) *Model {
	if scroller == nil {
		scroller = wheel.Default()
	}
	m := &Model{
		pane:       pane,
		surface:    wheel.NewSurfaceID(),
		scroller:   scroller,
		columns:    defaultColumns,
		itemHeight: defaultItemHeight,
		hovered:    -1,
		bar:        scrollbar.New(),
		zoneID:     "list-" + pane.String(),
		styles:     common.DefaultStyles(),
	}
	m.defineRows()
	return m
}

// Pane returns which list this is.
func (m *Model) Pane() messages.PaneType { return m.pane }

// Surface returns the id the list reports to the wheel normalizer.
func (m *Model) Surface() wheel.SurfaceID { return m.surface }

// SetScroller replaces the wheel normalizer. A nil scroller is ignored.
func (m *Model) SetScroller(scroller wheel.Scroller) {
	if scroller != nil {
		m.scroller = scroller
	}
}

// ZoneID returns the bubblezone id wrapped around the rendered list.
func (m *Model) ZoneID() string { return m.zoneID }

// SetZone sets the shared zone manager for wheel hit targets.
func (m *Model) SetZone(z *zone.Manager) { m.zone = z }

// SetStyles updates the component's styles (for theme changes).
func (m *Model) SetStyles(styles common.Styles) {
	m.styles = styles
	m.bar.SetStyles(styles)
}

// Focus sets the list as focused
func (m *Model) Focus() { m.focused = true }

// Blur removes focus from the list
func (m *Model) Blur() {
	m.focused = false
	m.bar.Release()
}

// Focused returns whether the list is focused
func (m *Model) Focused() bool { return m.focused }

// SetSize sets the list dimensions
func (m *Model) SetSize(width, height int) tea.Cmd {
	width, height = max(0, width), max(0, height)
	if width == m.width && height == m.height {
		return nil
	}
	m.width = width
	m.height = height
	return m.defineRows()
}

// Width returns the list width.
func (m *Model) Width() int { return m.width }

// Height returns the list height.
func (m *Model) Height() int { return m.height }

// ItemCount returns the number of items.
func (m *Model) ItemCount() int { return m.itemCount }

// SetItemCount sets the number of items.
func (m *Model) SetItemCount(n int) tea.Cmd {
	n = max(0, n)
	if n == m.itemCount {
		return nil
	}
	m.itemCount = n
	return m.defineRows()
}

// Columns returns the number of items per row.
func (m *Model) Columns() int { return m.columns }

// SetColumns sets the number of items per row. Values below 1 become 1.
func (m *Model) SetColumns(n int) tea.Cmd {
	n = max(1, n)
	if n == m.columns {
		return nil
	}
	m.columns = n
	return m.defineRows()
}

// Gap returns the spacing between items.
func (m *Model) Gap() int { return m.gap }

// SetGap sets the spacing between items, in cells.
func (m *Model) SetGap(n int) tea.Cmd {
	n = max(0, n)
	if n == m.gap {
		return nil
	}
	m.gap = n
	return m.defineRows()
}

// ItemHeight returns the height of one item.
func (m *Model) ItemHeight() int { return m.itemHeight }

// SetItemHeight sets the height of one item. Values below 1 become 1.
func (m *Model) SetItemHeight(n int) tea.Cmd {
	n = max(1, n)
	if n == m.itemHeight {
		return nil
	}
	m.itemHeight = n
	return m.defineRows()
}

// Padding returns the inner padding.
func (m *Model) Padding() int { return m.padding }

// SetPadding sets the inner padding on every side.
func (m *Model) SetPadding(n int) tea.Cmd {
	n = max(0, n)
	if n == m.padding {
		return nil
	}
	m.padding = n
	return m.defineRows()
}

// TopItem returns the index of the first visible item.
func (m *Model) TopItem() int { return m.topItem }

// SetTopItem scrolls so the row holding index i is the first row.
func (m *Model) SetTopItem(i int) tea.Cmd {
	i = max(0, min(i, m.itemCount-1))
	return m.scrollTo(i / m.columns)
}

// Rows returns the total row count.
func (m *Model) Rows() int { return m.rows }

// FullyVisibleRows returns the page size in rows.
func (m *Model) FullyVisibleRows() int { return m.fullyVisibleRows }

// VisibleRows returns the number of painted rows, partial row included.
func (m *Model) VisibleRows() int { return m.visibleRows }

// Hovered returns the item under the pointer, or -1.
func (m *Model) Hovered() int { return m.hovered }

// ClearHover forgets the pointer position and hovered item.
func (m *Model) ClearHover() {
	m.pointer = false
	m.hovered = -1
}

// Scrollbar exposes the embedded scrollbar.
func (m *Model) Scrollbar() *scrollbar.Model { return m.bar }

// defineRows recomputes the row counts and pushes them to the scrollbar.
func (m *Model) defineRows() tea.Cmd {
	rowHeight := m.itemHeight + m.gap

	m.rows = 0
	if m.itemCount > 0 {
		m.rows = (m.itemCount + m.columns - 1) / m.columns
	}

	height := m.clientHeight()
	m.fullyVisibleRows = height / rowHeight
	m.visibleRows = m.fullyVisibleRows
	if m.fullyVisibleRows == 0 {
		// at least one row so the list can still scroll
		m.fullyVisibleRows = 1
	}
	if m.rows > m.visibleRows && height%rowHeight != 0 {
		m.visibleRows++
	}

	m.bar.SetLargeChange(m.fullyVisibleRows)
	m.bar.SetMaximum(m.rows)
	scrollable := m.rows > m.fullyVisibleRows
	m.bar.SetEnabled(scrollable)
	m.bar.SetVisible(scrollable)
	m.bar.SetHeight(m.height)

	return m.syncTopItem()
}

// scrollTo moves the first row to row, clamped to [0, rows-fullyVisibleRows].
func (m *Model) scrollTo(row int) tea.Cmd {
	m.bar.SetValue(row)
	return m.syncTopItem()
}

// scrollBy moves the first row by delta rows.
func (m *Model) scrollBy(delta int) tea.Cmd {
	return m.scrollTo(m.bar.Value() + delta)
}

// syncTopItem derives the top item from the scrollbar and announces changes.
func (m *Model) syncTopItem() tea.Cmd {
	top := m.bar.Value() * m.columns
	if top == m.topItem {
		return nil
	}
	m.topItem = top
	m.refreshHover()
	pane := m.pane
	return func() tea.Msg {
		return messages.TopItemChanged{Pane: pane, TopItem: top}
	}
}
