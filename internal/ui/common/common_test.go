package common

import (
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/scrolldemo/internal/messages"
)

func TestFormatNumber(t *testing.T) {
	tests := map[int]string{
		0:        "0.00",
		7:        "7.00",
		999:      "999.00",
		1000:     "1,000.00",
		1234567:  "1,234,567.00",
		-1234:    "-1,234.00",
		100000:   "100,000.00",
		12345678: "12,345,678.00",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Fatalf("FormatNumber(%d): expected %q, got %q", in, want, got)
		}
	}
}

func TestPadLabel(t *testing.T) {
	if got := PadLabel("12.00", 8); got != "12.00   " {
		t.Fatalf("expected padded label, got %q", got)
	}
	got := PadLabel("1,234,567.00", 6)
	if lipgloss.Width(got) != 6 || !strings.HasSuffix(got, "…") {
		t.Fatalf("expected 6-cell truncated label, got %q", got)
	}
	if PadLabel("x", 0) != "" {
		t.Fatalf("expected empty label for zero width")
	}
}

func TestFitLine(t *testing.T) {
	styled := DefaultStyles().Title.Render("Status line text")
	got := FitLine(styled, 6)
	if w := ansi.StringWidth(got); w != 6 {
		t.Fatalf("expected width 6, got %d (%q)", w, got)
	}
	if w := ansi.StringWidth(FitLine("ab", 5)); w != 5 {
		t.Fatalf("expected padding to width 5, got %d", w)
	}
}

func TestHitRegion(t *testing.T) {
	r := HitRegion{X: 2, Y: 3, Width: 4, Height: 2}
	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Fatalf("expected corners inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) || r.Contains(1, 3) {
		t.Fatalf("expected points outside")
	}
	if x, y := r.Local(4, 4); x != 2 || y != 1 {
		t.Fatalf("expected local (2,1), got (%d,%d)", x, y)
	}
	if r.Empty() || !(HitRegion{Width: 3}).Empty() {
		t.Fatalf("unexpected Empty result")
	}
}

func TestRenderHelpBarDropsOverflow(t *testing.T) {
	styles := DefaultStyles()
	items := []HelpBinding{{Key: "q", Desc: "quit"}, {Key: "?", Desc: "about"}, {Key: "tab", Desc: "switch list"}}
	full := RenderHelpBar(styles, items, 200)
	if !strings.Contains(ansi.Strip(full), "tab switch list") {
		t.Fatalf("expected all items at full width, got %q", ansi.Strip(full))
	}
	short := ansi.Strip(RenderHelpBar(styles, items, 10))
	if strings.Contains(short, "about") || !strings.Contains(short, "q quit") {
		t.Fatalf("expected only first item, got %q", short)
	}
	if RenderHelpBar(styles, items, 0) != "" {
		t.Fatalf("expected empty bar for zero width")
	}
}

func TestToastLifecycle(t *testing.T) {
	now := time.Unix(1000, 0)
	m := NewToastModel()
	m.now = func() time.Time { return now }

	if cmd := m.ShowToast(messages.Toast{Message: "Copied", Level: messages.ToastSuccess}); cmd == nil {
		t.Fatalf("expected dismiss tick")
	}
	if !m.Visible() || !strings.Contains(ansi.Strip(m.View()), "Copied") {
		t.Fatalf("expected visible toast, got %q", m.View())
	}

	m.Update(ToastDismissed{})
	if !m.Visible() {
		t.Fatalf("expected early dismiss tick to be ignored")
	}

	now = now.Add(4 * time.Second)
	m.Update(ToastDismissed{})
	if m.Visible() || m.View() != "" {
		t.Fatalf("expected toast hidden after expiry")
	}
}

func TestCopyToClipboardUsesBackend(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("pbcopy path")
	}
	var got string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		got = text
		return nil
	}
	defer func() { writeClipboard = orig }()

	if err := CopyToClipboard("42.00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "42.00" {
		t.Fatalf("expected backend to receive text, got %q", got)
	}

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	if err := CopyToClipboard("x"); err == nil {
		t.Fatalf("expected backend error to surface")
	}
}

func TestSafeCmdRecoversPanic(t *testing.T) {
	if SafeCmd(nil) != nil {
		t.Fatalf("expected nil command to stay nil")
	}
	cmd := SafeCmd(func() tea.Msg { panic("boom") })
	msg, ok := cmd().(messages.Error)
	if !ok {
		t.Fatalf("expected messages.Error, got %T", cmd())
	}
	if msg.Context != "command" || !msg.Logged || !strings.Contains(msg.Err.Error(), "boom") {
		t.Fatalf("unexpected error message %+v", msg)
	}

	passthrough := SafeCmd(func() tea.Msg { return messages.ToggleAbout{} })
	if _, ok := passthrough().(messages.ToggleAbout); !ok {
		t.Fatalf("expected wrapped message to pass through")
	}
}
