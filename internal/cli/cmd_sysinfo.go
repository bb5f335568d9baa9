package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andyrewlee/scrolldemo/internal/wheel"
)

type wheelInfo struct {
	LinesPerNotch int    `json:"lines_per_notch"`
	CharsPerNotch int    `json:"chars_per_notch"`
	PageScroll    bool   `json:"page_scroll"`
	DoubleClickMs uint32 `json:"double_click_ms"`
	LinesError    string `json:"lines_error,omitempty"`
	CharsError    string `json:"chars_error,omitempty"`
}

type sysinfoResult struct {
	ConfigPath        string    `json:"config_path"`
	Native            wheelInfo `json:"native"`
	Effective         wheelInfo `json:"effective"`
	RedirectUnfocused bool      `json:"redirect_unfocused"`
}

func buildSysinfoCommand(env *runEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "sysinfo",
		Short: "Show the wheel settings in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.runSysinfo(wheel.NativeSystem())
		},
	}
}

func (e *runEnv) runSysinfo(native wheel.System) error {
	const command = "sysinfo"
	cfg, err := e.loadConfig()
	if err != nil {
		return e.fail(command, ExitInternalError, "config_error", err.Error(), nil)
	}
	result := sysinfoResult{
		ConfigPath:        cfg.Paths.ConfigPath,
		Native:            describeSystem(native),
		Effective:         describeSystem(cfg.WheelSystem(native)),
		RedirectUnfocused: cfg.Wheel.RedirectUnfocused,
	}
	return e.succeed(command, result, func(w io.Writer) {
		fmt.Fprintf(w, "config: %s\n\n", result.ConfigPath)
		fmt.Fprintf(w, "%-18s %10s %10s\n", "", "native", "effective")
		fmt.Fprintf(w, "%-18s %10s %10s\n", "lines per notch",
			speedLabel(result.Native.LinesPerNotch, result.Native.LinesError),
			speedLabel(result.Effective.LinesPerNotch, result.Effective.LinesError))
		fmt.Fprintf(w, "%-18s %10s %10s\n", "chars per notch",
			speedLabel(result.Native.CharsPerNotch, result.Native.CharsError),
			speedLabel(result.Effective.CharsPerNotch, result.Effective.CharsError))
		fmt.Fprintf(w, "%-18s %8dms %8dms\n", "double-click", result.Native.DoubleClickMs, result.Effective.DoubleClickMs)
		fmt.Fprintf(w, "%-18s %21t\n", "wheel follows mouse", result.RedirectUnfocused)
	})
}

func describeSystem(sys wheel.System) wheelInfo {
	info := wheelInfo{DoubleClickMs: sys.DoubleClickTime()}
	if lines, err := sys.ScrollLinesPerNotch(wheel.Vertical); err != nil {
		info.LinesError = err.Error()
	} else {
		info.LinesPerNotch = lines
		info.PageScroll = lines == wheel.PageScroll
	}
	if chars, err := sys.ScrollLinesPerNotch(wheel.Horizontal); err != nil {
		info.CharsError = err.Error()
	} else {
		info.CharsPerNotch = chars
	}
	return info
}

func speedLabel(speed int, errText string) string {
	switch {
	case errText != "":
		return "unknown"
	case speed == wheel.PageScroll:
		return "page"
	default:
		return strconv.Itoa(speed)
	}
}
