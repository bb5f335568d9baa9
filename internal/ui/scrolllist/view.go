package scrolllist

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/scrolldemo/internal/ui/common"
)

// View renders the list as exactly Height lines of Width cells.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	inner := m.innerClient()
	body := m.renderItems(inner)

	contentWidth := m.width
	var barLines []string
	if m.bar.Visible() {
		contentWidth -= m.bar.Width()
		barLines = strings.Split(m.bar.View(), "\n")
	}
	left := strings.Repeat(" ", inner.X)

	lines := make([]string, m.height)
	for y := range lines {
		row := ""
		if i := y - inner.Y; i >= 0 && i < len(body) {
			row = left + body[i]
		}
		row = common.FitLine(row, contentWidth)
		if y < len(barLines) {
			row += barLines[y]
		}
		lines[y] = row
	}

	out := strings.Join(lines, "\n")
	if m.zone != nil {
		out = m.zone.Mark(m.zoneID, out)
	}
	return out
}

// renderItems paints the visible rows clipped to the inner client.
func (m *Model) renderItems(inner common.HitRegion) []string {
	if m.visibleRows <= 0 || inner.Empty() {
		return nil
	}
	itemWidth := m.itemWidth()
	if itemWidth <= 0 {
		return nil
	}

	gapCells := strings.Repeat(" ", m.gap)
	var out []string
	index := m.topItem
	for r := 0; r < m.visibleRows && index < m.itemCount; r++ {
		cells := make([][]string, 0, m.columns)
		for c := 0; c < m.columns && index < m.itemCount; c++ {
			cells = append(cells, m.renderItem(index, itemWidth))
			index++
		}
		for line := 0; line < m.itemHeight; line++ {
			parts := make([]string, len(cells))
			for c, cell := range cells {
				parts[c] = cell[line]
			}
			out = append(out, strings.Join(parts, gapCells))
		}
		for g := 0; g < m.gap; g++ {
			out = append(out, "")
		}
		if len(out) >= inner.Height {
			break
		}
	}
	if len(out) > inner.Height {
		out = out[:inner.Height]
	}
	return out
}

// renderItem returns itemHeight lines of exactly width cells.
func (m *Model) renderItem(index, width int) []string {
	label := common.FormatNumber(index)
	hovered := index == m.hovered

	if m.itemHeight < 3 || width < 3 {
		style := m.styles.ItemLine
		if hovered {
			style = m.styles.HoveredLine
		}
		lines := make([]string, m.itemHeight)
		for i := range lines {
			text := ""
			if i == 0 {
				text = label
			}
			lines[i] = style.Render(common.PadLabel(text, width))
		}
		return lines
	}

	style := m.styles.Item
	if hovered {
		style = m.styles.HoveredItem
	}
	return boxLines(style, label, width, m.itemHeight)
}

// boxLines draws a bordered box using the border and colors of style.
func boxLines(style lipgloss.Style, label string, width, height int) []string {
	border := style.GetBorderStyle()
	edge := lipgloss.NewStyle().Foreground(style.GetBorderTopForeground())
	text := lipgloss.NewStyle().Foreground(style.GetForeground())

	innerWidth := width - 2
	labelRow := (height - 1) / 2

	lines := make([]string, height)
	lines[0] = edge.Render(border.TopLeft + strings.Repeat(border.Top, innerWidth) + border.TopRight)
	for i := 1; i < height-1; i++ {
		content := ""
		if i == labelRow {
			content = label
		}
		lines[i] = edge.Render(border.Left) +
			text.Render(common.PadLabel(content, innerWidth)) +
			edge.Render(border.Right)
	}
	lines[height-1] = edge.Render(border.BottomLeft + strings.Repeat(border.Bottom, innerWidth) + border.BottomRight)
	return lines
}
