package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/scrolldemo/internal/logging"
	"github.com/andyrewlee/scrolldemo/internal/messages"
	"github.com/andyrewlee/scrolldemo/internal/ui/common"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = common.CopyToClipboard

// copyHovered copies the label of the item under the pointer.
func (a *App) copyHovered() tea.Cmd {
	label, ok := a.hoveredLabel()
	if !ok {
		return a.toast.ShowToast(messages.Toast{Message: "Nothing to copy", Level: messages.ToastInfo})
	}
	return func() tea.Msg {
		if err := copyToClipboard(label); err != nil {
			logging.Warn("clipboard: %v", err)
			return messages.Toast{Message: fmt.Sprintf("Copy failed: %v", err), Level: messages.ToastError}
		}
		return messages.Toast{Message: "Copied " + label, Level: messages.ToastSuccess}
	}
}
