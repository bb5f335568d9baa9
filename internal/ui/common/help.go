package common

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// HelpBinding represents a single keybinding
type HelpBinding struct {
	Key  string
	Desc string
}

// RenderHelpItem renders one "key desc" pair.
func RenderHelpItem(styles Styles, key, desc string) string {
	return styles.HelpKey.Render(key) + " " + styles.HelpDesc.Render(desc)
}

// RenderHelpBar joins bindings on one line, dropping whole items that do
// not fit in width.
func RenderHelpBar(styles Styles, items []HelpBinding, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	for _, item := range items {
		part := RenderHelpItem(styles, item.Key, item.Desc)
		w := lipgloss.Width(part)
		sep := 0
		if used > 0 {
			sep = 2
		}
		if used+sep+w > width {
			break
		}
		if sep > 0 {
			b.WriteString("  ")
		}
		b.WriteString(part)
		used += sep + w
	}
	return ansi.Truncate(b.String(), width, "")
}
