package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andyrewlee/scrolldemo/internal/wheel"
)

// ListSettings controls the demo list layout.
type ListSettings struct {
	ItemCount  int
	Columns    int
	Gap        int
	ItemHeight int // rows per item, borders included
	Padding    int
	Split      bool // show two lists sharing one wheel normalizer
}

// WheelSettings overrides the platform wheel preferences. Nil pointers keep
// the system value.
type WheelSettings struct {
	LinesPerNotch     *int
	CharsPerNotch     *int
	DoubleClickMs     *int
	PageScroll        bool // scroll a full page per notch
	RedirectUnfocused bool // deliver wheel to the list under the pointer
}

// Config holds the application configuration
type Config struct {
	Paths    *Paths
	LogLevel string
	List     ListSettings
	Wheel    WheelSettings
}

func defaultListSettings() ListSettings {
	return ListSettings{
		ItemCount:  100,
		Columns:    1,
		Gap:        0,
		ItemHeight: 3,
		Padding:    0,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return defaultConfigAt(paths), nil
}

func defaultConfigAt(paths *Paths) *Config {
	return &Config{
		Paths:    paths,
		LogLevel: "info",
		List:     defaultListSettings(),
		Wheel:    WheelSettings{RedirectUnfocused: true},
	}
}

type rawConfig struct {
	LogLevel *string `json:"log_level"`
	List     struct {
		ItemCount  *int  `json:"item_count"`
		Columns    *int  `json:"columns"`
		Gap        *int  `json:"gap"`
		ItemHeight *int  `json:"item_height"`
		Padding    *int  `json:"padding"`
		Split      *bool `json:"split"`
	} `json:"list"`
	Wheel struct {
		LinesPerNotch     *int  `json:"lines_per_notch"`
		CharsPerNotch     *int  `json:"chars_per_notch"`
		DoubleClickMs     *int  `json:"double_click_ms"`
		PageScroll        *bool `json:"page_scroll"`
		RedirectUnfocused *bool `json:"redirect_unfocused"`
	} `json:"wheel"`
}

// Load loads config overrides from ~/.scrolldemo/config.json if present.
func Load() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return LoadFrom(paths)
}

// LoadFrom reads the config file described by paths. A missing file yields
// the defaults.
func LoadFrom(paths *Paths) (*Config, error) {
	cfg := defaultConfigAt(paths)

	data, err := os.ReadFile(paths.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", paths.ConfigPath, err)
	}
	cfg.apply(raw)
	cfg.normalize()
	return cfg, nil
}

func (c *Config) apply(raw rawConfig) {
	if raw.LogLevel != nil {
		c.LogLevel = *raw.LogLevel
	}
	setInt(&c.List.ItemCount, raw.List.ItemCount)
	setInt(&c.List.Columns, raw.List.Columns)
	setInt(&c.List.Gap, raw.List.Gap)
	setInt(&c.List.ItemHeight, raw.List.ItemHeight)
	setInt(&c.List.Padding, raw.List.Padding)
	if raw.List.Split != nil {
		c.List.Split = *raw.List.Split
	}

	c.Wheel.LinesPerNotch = raw.Wheel.LinesPerNotch
	c.Wheel.CharsPerNotch = raw.Wheel.CharsPerNotch
	c.Wheel.DoubleClickMs = raw.Wheel.DoubleClickMs
	if raw.Wheel.PageScroll != nil {
		c.Wheel.PageScroll = *raw.Wheel.PageScroll
	}
	if raw.Wheel.RedirectUnfocused != nil {
		c.Wheel.RedirectUnfocused = *raw.Wheel.RedirectUnfocused
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func (c *Config) normalize() {
	if c.List.ItemCount < 0 {
		c.List.ItemCount = 0
	}
	if c.List.Columns < 1 {
		c.List.Columns = 1
	}
	if c.List.Gap < 0 {
		c.List.Gap = 0
	}
	if c.List.ItemHeight < 1 {
		c.List.ItemHeight = 1
	}
	if c.List.Padding < 0 {
		c.List.Padding = 0
	}
	for _, p := range []*int{c.Wheel.LinesPerNotch, c.Wheel.CharsPerNotch} {
		if p != nil && *p < 0 {
			*p = 0
		}
	}
	if c.Wheel.DoubleClickMs != nil && *c.Wheel.DoubleClickMs < 0 {
		c.Wheel.DoubleClickMs = nil
	}
}

// WheelSystem layers the wheel overrides on top of base.
func (c *Config) WheelSystem(base wheel.System) wheel.System {
	lines := c.Wheel.LinesPerNotch
	if c.Wheel.PageScroll {
		page := wheel.PageScroll
		lines = &page
	}
	if lines == nil && c.Wheel.CharsPerNotch == nil && c.Wheel.DoubleClickMs == nil {
		if base == nil {
			return wheel.NativeSystem()
		}
		return base
	}
	return wheel.Overrides{
		Base:          base,
		LinesPerNotch: lines,
		CharsPerNotch: c.Wheel.CharsPerNotch,
		DoubleClickMs: c.Wheel.DoubleClickMs,
	}
}

// Save writes the configuration, preserving unknown keys already in the file.
func (c *Config) Save() error {
	if c == nil || c.Paths == nil {
		return nil
	}
	path := c.Paths.ConfigPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	payload := map[string]any{}
	if existing, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(existing, &payload)
	}

	payload["log_level"] = c.LogLevel
	payload["list"] = map[string]any{
		"item_count":  c.List.ItemCount,
		"columns":     c.List.Columns,
		"gap":         c.List.Gap,
		"item_height": c.List.ItemHeight,
		"padding":     c.List.Padding,
		"split":       c.List.Split,
	}
	wheelPayload := map[string]any{
		"page_scroll":        c.Wheel.PageScroll,
		"redirect_unfocused": c.Wheel.RedirectUnfocused,
	}
	if c.Wheel.LinesPerNotch != nil {
		wheelPayload["lines_per_notch"] = *c.Wheel.LinesPerNotch
	}
	if c.Wheel.CharsPerNotch != nil {
		wheelPayload["chars_per_notch"] = *c.Wheel.CharsPerNotch
	}
	if c.Wheel.DoubleClickMs != nil {
		wheelPayload["double_click_ms"] = *c.Wheel.DoubleClickMs
	}
	payload["wheel"] = wheelPayload

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
