package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/andyrewlee/scrolldemo/internal/wheel"
)

func writeConfig(t *testing.T, paths *Paths, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(paths.ConfigPath), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(paths.ConfigPath, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	paths := PathsAt(t.TempDir())
	cfg, err := LoadFrom(paths)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.List.ItemCount != 100 || cfg.List.Columns != 1 || cfg.List.ItemHeight != 3 {
		t.Fatalf("unexpected default list settings: %+v", cfg.List)
	}
	if !cfg.Wheel.RedirectUnfocused {
		t.Fatalf("expected wheel redirect enabled by default")
	}
	if cfg.Wheel.LinesPerNotch != nil {
		t.Fatalf("expected no lines override by default")
	}
}

func TestLoadFromAppliesOverrides(t *testing.T) {
	paths := PathsAt(t.TempDir())
	writeConfig(t, paths, `{
  "log_level": "debug",
  "list": {"item_count": 250, "columns": 4, "gap": 1, "split": true},
  "wheel": {"lines_per_notch": 5, "double_click_ms": 200, "redirect_unfocused": false}
}`)

	cfg, err := LoadFrom(paths)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug log level, got %q", cfg.LogLevel)
	}
	if cfg.List.ItemCount != 250 || cfg.List.Columns != 4 || cfg.List.Gap != 1 || !cfg.List.Split {
		t.Fatalf("unexpected list settings: %+v", cfg.List)
	}
	if cfg.List.ItemHeight != 3 {
		t.Fatalf("expected unset item_height to keep default, got %d", cfg.List.ItemHeight)
	}
	if cfg.Wheel.LinesPerNotch == nil || *cfg.Wheel.LinesPerNotch != 5 {
		t.Fatalf("expected lines_per_notch 5, got %v", cfg.Wheel.LinesPerNotch)
	}
	if cfg.Wheel.RedirectUnfocused {
		t.Fatalf("expected redirect disabled")
	}
}

func TestLoadFromNormalizesInvalidValues(t *testing.T) {
	paths := PathsAt(t.TempDir())
	writeConfig(t, paths, `{
  "list": {"item_count": -3, "columns": 0, "gap": -1, "item_height": 0, "padding": -2},
  "wheel": {"lines_per_notch": -1, "double_click_ms": -5}
}`)

	cfg, err := LoadFrom(paths)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	want := ListSettings{ItemCount: 0, Columns: 1, Gap: 0, ItemHeight: 1, Padding: 0}
	if cfg.List != want {
		t.Fatalf("expected %+v, got %+v", want, cfg.List)
	}
	if cfg.Wheel.LinesPerNotch == nil || *cfg.Wheel.LinesPerNotch != 0 {
		t.Fatalf("expected negative lines clamped to 0, got %v", cfg.Wheel.LinesPerNotch)
	}
	if cfg.Wheel.DoubleClickMs != nil {
		t.Fatalf("expected negative double-click dropped, got %v", *cfg.Wheel.DoubleClickMs)
	}
}

func TestLoadFromInvalidJSON(t *testing.T) {
	paths := PathsAt(t.TempDir())
	writeConfig(t, paths, `{"list": `)
	if _, err := LoadFrom(paths); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSaveRoundTripKeepsUnknownKeys(t *testing.T) {
	paths := PathsAt(t.TempDir())
	writeConfig(t, paths, `{"theme": "dark"}`)

	cfg, err := LoadFrom(paths)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	lines := 2
	cfg.List.Columns = 3
	cfg.Wheel.LinesPerNotch = &lines
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(paths.ConfigPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if payload["theme"] != "dark" {
		t.Fatalf("expected unknown key preserved, got %v", payload["theme"])
	}

	reloaded, err := LoadFrom(paths)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if reloaded.List.Columns != 3 {
		t.Fatalf("expected columns 3, got %d", reloaded.List.Columns)
	}
	if reloaded.Wheel.LinesPerNotch == nil || *reloaded.Wheel.LinesPerNotch != 2 {
		t.Fatalf("expected lines override 2 after reload")
	}
}

func TestWheelSystem(t *testing.T) {
	base := wheel.NewSimulated(3, 3, 500)
	cfg := defaultConfigAt(PathsAt(t.TempDir()))

	if sys := cfg.WheelSystem(base); sys != wheel.System(base) {
		t.Fatalf("expected base system without overrides")
	}

	cfg.Wheel.PageScroll = true
	sys := cfg.WheelSystem(base)
	if got, _ := sys.ScrollLinesPerNotch(wheel.Vertical); got != wheel.PageScroll {
		t.Fatalf("expected page scroll, got %d", got)
	}
	if got, _ := sys.ScrollLinesPerNotch(wheel.Horizontal); got != 3 {
		t.Fatalf("expected base chars 3, got %d", got)
	}
}
