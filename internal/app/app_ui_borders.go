package app

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/scrolldemo/internal/ui/common"
)

// buildBorderedPane frames content, which is clipped and padded to the
// interior, in a width x height box.
func buildBorderedPane(content string, width, height int, focused bool) string {
	if width < 3 || height < 3 {
		return ""
	}

	borderColor := common.ColorBorder
	topLeft, topRight, bottomLeft, bottomRight := "╭", "╮", "╰", "╯"
	horizontal, vertical := "─", "│"
	if focused {
		borderColor = common.ColorBorderFocused
		topLeft, topRight, bottomLeft, bottomRight = "┏", "┓", "┗", "┛"
		horizontal, vertical = "━", "┃"
	}
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)

	contentWidth := width - 2
	contentHeight := height - 2

	lines := strings.Split(content, "\n")
	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}

	var b strings.Builder
	b.WriteString(borderStyle.Render(topLeft + strings.Repeat(horizontal, contentWidth) + topRight))
	side := borderStyle.Render(vertical)
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > contentWidth {
			line = ansi.Truncate(line, contentWidth, "")
		} else if w < contentWidth {
			line += strings.Repeat(" ", contentWidth-w)
		}
		b.WriteString("\n")
		b.WriteString(side)
		b.WriteString(line)
		b.WriteString(side)
	}
	b.WriteString("\n")
	b.WriteString(borderStyle.Render(bottomLeft + strings.Repeat(horizontal, contentWidth) + bottomRight))
	return b.String()
}
