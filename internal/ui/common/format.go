package common

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// FormatNumber renders n with thousands separators and two decimals,
// e.g. 1234 -> "1,234.00".
func FormatNumber(n int) string {
	digits := strconv.Itoa(n)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	var b strings.Builder
	b.WriteString(sign)
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(".00")
	return b.String()
}

// TruncateLabel shortens plain text to width cells with an ellipsis.
func TruncateLabel(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}

// PadLabel truncates then right-pads plain text to exactly width cells.
func PadLabel(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(TruncateLabel(text, width), width)
}

// FitLine truncates styled text to width cells and pads the remainder.
func FitLine(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = ansi.Truncate(text, width, "")
	if w := ansi.StringWidth(text); w < width {
		text += strings.Repeat(" ", width-w)
	}
	return text
}
