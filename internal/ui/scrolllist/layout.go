package scrolllist

import "github.com/andyrewlee/scrolldemo/internal/ui/common"

func (m *Model) clientHeight() int {
	return max(0, m.height-2*m.padding)
}

// innerClient is the item area: the list bounds minus padding and a visible
// scrollbar.
func (m *Model) innerClient() common.HitRegion {
	w := m.width - 2*m.padding
	if m.bar.Visible() {
		w -= m.bar.Width()
	}
	return common.HitRegion{
		ID:     m.zoneID,
		X:      m.padding,
		Y:      m.padding,
		Width:  max(0, w),
		Height: m.clientHeight(),
	}
}

// scrollbarRegion is the scrollbar column at the right edge.
func (m *Model) scrollbarRegion() common.HitRegion {
	if !m.bar.Visible() {
		return common.HitRegion{}
	}
	return common.HitRegion{
		ID:     m.zoneID + "-scrollbar",
		X:      m.width - m.bar.Width(),
		Y:      0,
		Width:  m.bar.Width(),
		Height: m.height,
	}
}

// itemWidth is the painted width of one item.
func (m *Model) itemWidth() int {
	inner := m.innerClient()
	return max(0, (inner.Width-m.gap*(m.columns-1))/m.columns)
}

// HitTest returns the index of the item at list-local (x, y), or -1.
func (m *Model) HitTest(x, y int) int {
	inner := m.innerClient()
	if m.visibleRows <= 0 || m.columns <= 0 || inner.Empty() || !inner.Contains(x, y) {
		return -1
	}
	rowHeight := m.itemHeight + m.gap
	columnWidth := inner.Width / m.columns
	if columnWidth <= 0 {
		return -1
	}
	lx, ly := inner.Local(x, y)
	r := ly / rowHeight
	c := lx / columnWidth
	if c >= m.columns {
		return -1
	}
	index := m.topItem + r*m.columns + c
	if index < 0 || index >= m.itemCount {
		return -1
	}
	return index
}

// PointerAt records the pointer at list-local (x, y) and updates the hover.
func (m *Model) PointerAt(x, y int) int {
	m.pointer = true
	m.pointerX, m.pointerY = x, y
	m.refreshHover()
	return m.hovered
}

func (m *Model) refreshHover() {
	if !m.pointer {
		m.hovered = -1
		return
	}
	m.hovered = m.HitTest(m.pointerX, m.pointerY)
}
