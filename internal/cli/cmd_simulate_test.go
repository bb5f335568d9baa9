package cli

import (
	"strings"
	"testing"
)

func simulateJSON(t *testing.T, args ...string) simulateResultView {
	t.Helper()
	full := append([]string{"--config-dir", t.TempDir(), "--json", "simulate"}, args...)
	code, out, errOut := runCLI(t, full...)
	if code != ExitOK {
		t.Fatalf("simulate code = %d, stderr %q, out %s", code, errOut, out)
	}
	env := decodeEnvelope(t, out)
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object payload, got %T", env.Data)
	}
	view := simulateResultView{total: int(data["total_lines"].(float64)), perNotch: int(data["lines_per_notch"].(float64))}
	for _, raw := range data["steps"].([]any) {
		step := raw.(map[string]any)
		view.lines = append(view.lines, int(step["lines"].(float64)))
		view.accumulated = append(view.accumulated, int(step["accumulated"].(float64)))
		view.surfaces = append(view.surfaces, int(step["surface"].(float64)))
	}
	return view
}

type simulateResultView struct {
	total       int
	perNotch    int
	lines       []int
	accumulated []int
	surfaces    []int
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSimulate(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		lines       []int
		accumulated []int
		total       int
	}{
		{
			name:        "partial notches accumulate",
			args:        []string{"--lines", "3", "40", "40", "40"},
			lines:       []int{-1, -1, -1},
			accumulated: []int{0, 0, 0},
			total:       -3,
		},
		{
			name:        "one line per notch carries remainder",
			args:        []string{"--lines", "1", "40", "80"},
			lines:       []int{0, -1},
			accumulated: []int{40, 0},
			total:       -1,
		},
		{
			name:        "wheel toward user scrolls down",
			args:        []string{"--lines", "3", "--", "-120"},
			lines:       []int{3},
			accumulated: []int{0},
			total:       3,
		},
		{
			name:        "direction reversal drops remainder",
			args:        []string{"--lines", "1", "--", "60", "-60"},
			lines:       []int{0, 0},
			accumulated: []int{60, -60},
			total:       0,
		},
		{
			name:        "idle gap resets accumulator",
			args:        []string{"--lines", "1", "--double-click-ms", "100", "60", "wait:201", "60"},
			lines:       []int{0, 0},
			accumulated: []int{60, 60},
			total:       0,
		},
		{
			name:        "gap within threshold keeps accumulator",
			args:        []string{"--lines", "1", "--double-click-ms", "100", "60", "wait:200", "60"},
			lines:       []int{0, -1},
			accumulated: []int{60, 0},
			total:       -1,
		},
		{
			name:        "interval applies between deltas",
			args:        []string{"--lines", "1", "--double-click-ms", "100", "--interval-ms", "250", "60", "60"},
			lines:       []int{0, 0},
			accumulated: []int{60, 60},
			total:       0,
		},
		{
			name:        "speed capped at page",
			args:        []string{"--lines", "20", "--page", "4", "120"},
			lines:       []int{-4},
			accumulated: []int{0},
			total:       -4,
		},
		{
			name:        "page scroll",
			args:        []string{"--page-scroll", "--page", "7", "120", "120"},
			lines:       []int{-7, -7},
			accumulated: []int{0, 0},
			total:       -14,
		},
		{
			name:        "zero speed never scrolls",
			args:        []string{"--lines", "0", "120", "120"},
			lines:       []int{0, 0},
			accumulated: []int{0, 0},
			total:       0,
		},
		{
			name:        "horizontal keeps sign",
			args:        []string{"--axis", "h", "--chars", "2", "60", "60"},
			lines:       []int{1, 1},
			accumulated: []int{0, 0},
			total:       2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := simulateJSON(t, tt.args...)
			if !equalInts(got.lines, tt.lines) {
				t.Fatalf("lines = %v, want %v", got.lines, tt.lines)
			}
			if !equalInts(got.accumulated, tt.accumulated) {
				t.Fatalf("accumulated = %v, want %v", got.accumulated, tt.accumulated)
			}
			if got.total != tt.total {
				t.Fatalf("total = %d, want %d", got.total, tt.total)
			}
		})
	}
}

func TestSimulateSwitchSurfaceResets(t *testing.T) {
	got := simulateJSON(t, "--lines", "1", "60", "switch", "60")
	if !equalInts(got.surfaces, []int{1, 2}) {
		t.Fatalf("surfaces = %v, want [1 2]", got.surfaces)
	}
	if !equalInts(got.lines, []int{0, 0}) || !equalInts(got.accumulated, []int{60, 60}) {
		t.Fatalf("expected reset on surface switch, lines %v accumulated %v", got.lines, got.accumulated)
	}
}

func TestSimulateReportsResolvedSpeed(t *testing.T) {
	got := simulateJSON(t, "--lines", "9", "--page", "5", "0")
	if got.perNotch != 5 {
		t.Fatalf("lines_per_notch = %d, want 5", got.perNotch)
	}
}

func TestSimulateHumanOutput(t *testing.T) {
	code, out, _ := runCLI(t, "--config-dir", t.TempDir(), "simulate", "--lines", "3", "120", "120")
	if code != ExitOK {
		t.Fatalf("simulate code = %d", code)
	}
	if !strings.Contains(out, "3 lines per notch") {
		t.Fatalf("expected header, got:\n%s", out)
	}
	if !strings.Contains(out, "total -6 lines") {
		t.Fatalf("expected total, got:\n%s", out)
	}
}

func TestSimulateUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no deltas", args: []string{"simulate"}},
		{name: "bad delta", args: []string{"simulate", "abc"}},
		{name: "bad wait", args: []string{"simulate", "wait:soon"}},
		{name: "bad axis", args: []string{"simulate", "--axis", "diagonal", "120"}},
		{name: "negative interval", args: []string{"simulate", "--interval-ms", "-5", "120"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config-dir", t.TempDir()}, tt.args...)
			code, _, errOut := runCLI(t, args...)
			if code != ExitUsage {
				t.Fatalf("code = %d, want %d", code, ExitUsage)
			}
			if !strings.Contains(errOut, "Usage: scrolldemo simulate") {
				t.Fatalf("expected usage text, got %q", errOut)
			}
		})
	}
}

func TestSimulateUsageErrorJSON(t *testing.T) {
	code, out, _ := runCLI(t, "--config-dir", t.TempDir(), "--json", "simulate", "nope")
	if code != ExitUsage {
		t.Fatalf("code = %d, want %d", code, ExitUsage)
	}
	env := decodeEnvelope(t, out)
	if env.Error == nil || env.Error.Code != "usage_error" || env.Command != "simulate" {
		t.Fatalf("unexpected envelope %+v", env)
	}
}
