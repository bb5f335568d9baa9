package scrollbar

import "strings"

const (
	glyphUp    = "▲"
	glyphDown  = "▼"
	glyphTrack = "│"
	glyphThumb = "┃"
)

// View renders the scrollbar as Height lines of one cell each.
func (m *Model) View() string {
	if !m.visible || m.height <= 0 {
		return ""
	}

	trackStart, _ := m.track()
	thumbStart, thumbSize := m.thumb()
	thumbStart += trackStart

	arrow := m.styles.ScrollArrow
	track := m.styles.ScrollTrack
	if !m.enabled {
		arrow = m.styles.ScrollDisabled
		track = m.styles.ScrollDisabled
	}

	var b strings.Builder
	for i := 0; i < m.height; i++ {
		if i > 0 {
			b.WriteString("\n")
		}
		switch {
		case m.hasArrows() && i == 0:
			b.WriteString(arrow.Render(glyphUp))
		case m.hasArrows() && i == m.height-1:
			b.WriteString(arrow.Render(glyphDown))
		case m.enabled && i >= thumbStart && i < thumbStart+thumbSize:
			b.WriteString(m.styles.ScrollThumb.Render(glyphThumb))
		default:
			b.WriteString(track.Render(glyphTrack))
		}
	}
	return b.String()
}
