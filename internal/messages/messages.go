package messages

import "github.com/andyrewlee/scrolldemo/internal/config"

// PaneType identifies the focused list
type PaneType int

const (
	PanePrimary PaneType = iota
	PaneSecondary
)

func (p PaneType) String() string {
	if p == PaneSecondary {
		return "secondary"
	}
	return "primary"
}

// TopItemChanged is sent when a list scrolls to a new first item
type TopItemChanged struct {
	Pane    PaneType
	TopItem int
}

// ConfigReloaded is sent when the config file changed on disk
type ConfigReloaded struct {
	Config *config.Config
	Err    error
}

// ToggleAbout requests showing or hiding the about overlay
type ToggleAbout struct{}

// CopyHovered requests copying the hovered item label
type CopyHovered struct{}

// ToastLevel identifies the type of toast notification to display.
type ToastLevel string

const (
	ToastInfo    ToastLevel = "info"
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
)

// Toast requests a toast notification in the UI.
type Toast struct {
	Message string
	Level   ToastLevel
}

// Error represents an application error
type Error struct {
	Err     error
	Context string
	Logged  bool // already written to the log
}

func (e Error) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}
