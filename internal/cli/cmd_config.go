package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andyrewlee/scrolldemo/internal/config"
)

type configView struct {
	Path     string          `json:"path"`
	Exists   bool            `json:"exists"`
	LogLevel string          `json:"log_level"`
	List     configListView  `json:"list"`
	Wheel    configWheelView `json:"wheel"`
}

type configListView struct {
	ItemCount  int  `json:"item_count"`
	Columns    int  `json:"columns"`
	Gap        int  `json:"gap"`
	ItemHeight int  `json:"item_height"`
	Padding    int  `json:"padding"`
	Split      bool `json:"split"`
}

type configWheelView struct {
	LinesPerNotch     *int `json:"lines_per_notch,omitempty"`
	CharsPerNotch     *int `json:"chars_per_notch,omitempty"`
	DoubleClickMs     *int `json:"double_click_ms,omitempty"`
	PageScroll        bool `json:"page_scroll"`
	RedirectUnfocused bool `json:"redirect_unfocused"`
}

func buildConfigCommand(env *runEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.runConfigShow()
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.runConfigShow()
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.runConfigPath()
		},
	})
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.runConfigInit(force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)
	return cmd
}

func newConfigView(cfg *config.Config) configView {
	_, err := os.Stat(cfg.Paths.ConfigPath)
	return configView{
		Path:     cfg.Paths.ConfigPath,
		Exists:   err == nil,
		LogLevel: cfg.LogLevel,
		List: configListView{
			ItemCount:  cfg.List.ItemCount,
			Columns:    cfg.List.Columns,
			Gap:        cfg.List.Gap,
			ItemHeight: cfg.List.ItemHeight,
			Padding:    cfg.List.Padding,
			Split:      cfg.List.Split,
		},
		Wheel: configWheelView{
			LinesPerNotch:     cfg.Wheel.LinesPerNotch,
			CharsPerNotch:     cfg.Wheel.CharsPerNotch,
			DoubleClickMs:     cfg.Wheel.DoubleClickMs,
			PageScroll:        cfg.Wheel.PageScroll,
			RedirectUnfocused: cfg.Wheel.RedirectUnfocused,
		},
	}
}

func (e *runEnv) runConfigShow() error {
	const command = "config show"
	cfg, err := e.loadConfig()
	if err != nil {
		return e.fail(command, ExitInternalError, "config_error", err.Error(), nil)
	}
	view := newConfigView(cfg)
	return e.succeed(command, view, func(w io.Writer) {
		source := "defaults"
		if view.Exists {
			source = view.Path
		}
		fmt.Fprintf(w, "source:       %s\n", source)
		fmt.Fprintf(w, "log level:    %s\n", view.LogLevel)
		fmt.Fprintf(w, "items:        %d\n", view.List.ItemCount)
		fmt.Fprintf(w, "columns:      %d (gap %d)\n", view.List.Columns, view.List.Gap)
		fmt.Fprintf(w, "item height:  %d\n", view.List.ItemHeight)
		fmt.Fprintf(w, "padding:      %d\n", view.List.Padding)
		fmt.Fprintf(w, "split:        %t\n", view.List.Split)
		fmt.Fprintf(w, "lines/notch:  %s\n", optionalInt(view.Wheel.LinesPerNotch, view.Wheel.PageScroll))
		fmt.Fprintf(w, "chars/notch:  %s\n", optionalInt(view.Wheel.CharsPerNotch, false))
		fmt.Fprintf(w, "double-click: %s\n", optionalInt(view.Wheel.DoubleClickMs, false))
		fmt.Fprintf(w, "redirect:     %t\n", view.Wheel.RedirectUnfocused)
	})
}

func optionalInt(v *int, page bool) string {
	switch {
	case page:
		return "page"
	case v == nil:
		return "system"
	default:
		return fmt.Sprintf("%d", *v)
	}
}

func (e *runEnv) runConfigPath() error {
	const command = "config path"
	cfg, err := e.loadConfig()
	if err != nil {
		return e.fail(command, ExitInternalError, "config_error", err.Error(), nil)
	}
	return e.succeed(command, map[string]string{"path": cfg.Paths.ConfigPath}, func(w io.Writer) {
		fmt.Fprintln(w, cfg.Paths.ConfigPath)
	})
}

func (e *runEnv) runConfigInit(force bool) error {
	const command = "config init"
	paths, err := e.configPaths()
	if err != nil {
		return e.fail(command, ExitInternalError, "config_error", err.Error(), nil)
	}
	if _, statErr := os.Stat(paths.ConfigPath); statErr == nil {
		if !force {
			return e.fail(command, ExitConflict, "config_exists",
				"config already exists: "+paths.ConfigPath+" (use --force to overwrite)",
				map[string]any{"path": paths.ConfigPath})
		}
		if err := os.Remove(paths.ConfigPath); err != nil {
			return e.fail(command, ExitInternalError, "write_failed", err.Error(), nil)
		}
	}
	// With the file gone this yields the defaults.
	cfg, err := config.LoadFrom(paths)
	if err != nil {
		return e.fail(command, ExitInternalError, "config_error", err.Error(), nil)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return e.fail(command, ExitInternalError, "write_failed", err.Error(), nil)
	}
	if err := cfg.Save(); err != nil {
		return e.fail(command, ExitInternalError, "write_failed", err.Error(), nil)
	}
	return e.succeed(command, newConfigView(cfg), func(w io.Writer) {
		fmt.Fprintf(w, "Wrote %s\n", paths.ConfigPath)
	})
}
