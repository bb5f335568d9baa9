package common

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/scrolldemo/internal/messages"
)

// ToastModel shows one transient notification in the status line
type ToastModel struct {
	message   string
	level     messages.ToastLevel
	showUntil time.Time
	styles    Styles
	now       func() time.Time
}

// NewToastModel creates a new toast model
func NewToastModel() *ToastModel {
	return &ToastModel{
		styles: DefaultStyles(),
		now:    time.Now,
	}
}

// ToastDismissed is sent when a toast should be dismissed
type ToastDismissed struct{}

// Show displays a toast notification
func (m *ToastModel) Show(message string, level messages.ToastLevel, duration time.Duration) tea.Cmd {
	m.message = message
	m.level = level
	m.showUntil = m.now().Add(duration)

	return SafeTick(duration, func(time.Time) tea.Msg {
		return ToastDismissed{}
	})
}

// ShowToast shows a toast using the default duration for its level
func (m *ToastModel) ShowToast(t messages.Toast) tea.Cmd {
	duration := 3 * time.Second
	if t.Level == messages.ToastError {
		duration = 5 * time.Second
	}
	return m.Show(t.Message, t.Level, duration)
}

// Update handles messages
func (m *ToastModel) Update(msg tea.Msg) (*ToastModel, tea.Cmd) {
	if _, ok := msg.(ToastDismissed); ok {
		if !m.now().Before(m.showUntil) {
			m.message = ""
		}
	}
	return m, nil
}

// View renders the toast notification
func (m *ToastModel) View() string {
	if !m.Visible() {
		return ""
	}

	style := m.styles.ToastInfo
	icon := "i "
	switch m.level {
	case messages.ToastSuccess:
		style = m.styles.ToastSuccess
		icon = "✓ "
	case messages.ToastError:
		style = m.styles.ToastError
		icon = "✗ "
	}
	return style.Render(icon + m.message)
}

// Visible returns whether the toast is currently visible
func (m *ToastModel) Visible() bool {
	return m.message != "" && m.now().Before(m.showUntil)
}

// Dismiss immediately hides the toast
func (m *ToastModel) Dismiss() {
	m.message = ""
}

// SetStyles updates the component's styles (for theme changes).
func (m *ToastModel) SetStyles(styles Styles) {
	m.styles = styles
}
