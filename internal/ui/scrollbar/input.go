package scrollbar

// track returns the first track row and its length. Arrows take the first
// and last rows when there is room for them.
func (m *Model) track() (start, length int) {
	if m.hasArrows() {
		return 1, m.height - 2
	}
	return 0, m.height
}

func (m *Model) hasArrows() bool {
	return m.height >= 3
}

// thumb returns the thumb position relative to the track.
func (m *Model) thumb() (start, size int) {
	_, length := m.track()
	if length <= 0 {
		return 0, 0
	}
	if m.maximum <= 0 || m.largeChange >= m.maximum {
		return 0, length
	}
	size = max(1, length*m.largeChange/m.maximum)
	size = min(size, length)
	if maxValue := m.MaxValue(); maxValue > 0 {
		start = (length - size) * m.value / maxValue
	}
	return start, size
}

// Press handles a left-button press at row y (scrollbar-local) and reports
// whether the value changed.
func (m *Model) Press(y int) bool {
	if !m.enabled || !m.visible || y < 0 || y >= m.height {
		return false
	}
	if m.hasArrows() {
		if y == 0 {
			return m.LineUp()
		}
		if y == m.height-1 {
			return m.LineDown()
		}
	}
	trackStart, _ := m.track()
	pos := y - trackStart
	thumbStart, thumbSize := m.thumb()
	switch {
	case pos < thumbStart:
		return m.PageUp()
	case pos >= thumbStart+thumbSize:
		return m.PageDown()
	default:
		m.dragging = true
		m.dragOffset = pos - thumbStart
		return false
	}
}

// Drag moves the thumb so that the grabbed cell follows row y.
func (m *Model) Drag(y int) bool {
	if !m.dragging {
		return false
	}
	trackStart, length := m.track()
	_, thumbSize := m.thumb()
	travel := length - thumbSize
	if travel <= 0 {
		return false
	}
	pos := y - trackStart - m.dragOffset
	pos = max(0, min(pos, travel))
	return m.SetValue((pos*m.MaxValue() + travel/2) / travel)
}

// Release ends a drag.
func (m *Model) Release() {
	m.dragging = false
}
