package main

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
)

func resetMouseFilterState() {
	lastMouseMotionEvent = time.Time{}
	lastMouseX = 0
	lastMouseY = 0
}

func TestMouseWheelNeverThrottled(t *testing.T) {
	resetMouseFilterState()

	wheel := tea.MouseWheelMsg{X: 10, Y: 10, Button: tea.MouseWheelDown}
	for i := 0; i < 5; i++ {
		if mouseEventFilter(nil, wheel) == nil {
			t.Fatalf("wheel event %d was dropped", i)
		}
	}
}

func TestMouseMotionThrottledAtSamePosition(t *testing.T) {
	resetMouseFilterState()

	motion := tea.MouseMotionMsg{X: 10, Y: 10}
	if mouseEventFilter(nil, motion) == nil {
		t.Fatalf("expected first motion event to pass through")
	}
	if mouseEventFilter(nil, motion) != nil {
		t.Fatalf("expected repeated motion at same position to be throttled")
	}
	moved := tea.MouseMotionMsg{X: 11, Y: 10}
	if mouseEventFilter(nil, moved) == nil {
		t.Fatalf("expected motion to a new position to pass through")
	}
}

func TestClassifyInvocation(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		launchTUI bool
		want      invocation
		configDir string
	}{
		{name: "bare on terminal", args: nil, launchTUI: true, want: invokeTUI},
		{name: "bare without terminal", args: nil, launchTUI: false, want: invokeCLI},
		{name: "json never opens tui", args: []string{"--json"}, launchTUI: true, want: invokeCLI},
		{name: "explicit tui", args: []string{"tui"}, launchTUI: false, want: invokeTUI},
		{
			name:      "tui with config dir",
			args:      []string{"--config-dir", "/tmp/demo", "tui"},
			want:      invokeTUI,
			configDir: "/tmp/demo",
		},
		{name: "tui with extra args", args: []string{"tui", "extra"}, launchTUI: true, want: invokeCLI},
		{name: "subcommand", args: []string{"simulate", "120"}, launchTUI: true, want: invokeCLI},
		{name: "parse error", args: []string{"--config-dir"}, launchTUI: true, want: invokeCLI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gf := classifyInvocation(tt.args, tt.launchTUI)
			if got != tt.want {
				t.Fatalf("classifyInvocation() = %v, want %v", got, tt.want)
			}
			if gf.ConfigDir != tt.configDir {
				t.Fatalf("config dir = %q, want %q", gf.ConfigDir, tt.configDir)
			}
		})
	}
}

func TestShouldLaunchTUI(t *testing.T) {
	if !shouldLaunchTUI(true, true) {
		t.Fatalf("expected TUI on a full terminal")
	}
	if shouldLaunchTUI(true, false) || shouldLaunchTUI(false, true) {
		t.Fatalf("expected no TUI when a stream is redirected")
	}
}
