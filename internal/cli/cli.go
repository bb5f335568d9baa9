// Package cli implements the headless scrolldemo commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andyrewlee/scrolldemo/internal/config"
	"github.com/andyrewlee/scrolldemo/internal/logging"
)

// BuildInfo is stamped into the binary at release time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// GlobalFlags holds flags that apply to all subcommands.
type GlobalFlags struct {
	JSON      bool
	ConfigDir string
	LogLevel  string // log to stderr at this level; empty disables
}

// runEnv is shared by every command built for one invocation.
type runEnv struct {
	w    io.Writer
	wErr io.Writer
	gf   GlobalFlags
	info BuildInfo
}

// Commands lists the subcommands handled by the headless CLI.
var Commands = []string{"simulate", "sysinfo", "config", "version"}

// IsCommand reports whether name is a headless subcommand.
func IsCommand(name string) bool {
	for _, c := range Commands {
		if c == name {
			return true
		}
	}
	return false
}

// Run executes the scrolldemo CLI. It returns a process exit code.
func Run(args []string, version, commit, date string) int {
	return run(args, BuildInfo{Version: version, Commit: commit, Date: date}, os.Stdout, os.Stderr)
}

func run(args []string, info BuildInfo, w, wErr io.Writer) int {
	env := &runEnv{w: w, wErr: wErr, info: info}
	root := buildRootCommand(env)
	root.SetArgs(args)
	root.SetOut(w)
	root.SetErr(wErr)
	defer logging.Close()
	if err := root.Execute(); err != nil {
		var exitErr exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		// Flag and argument errors raised by cobra before RunE.
		if env.gf.JSON || wantsJSON(args) {
			writeEnvelope(w, errorEnvelope("", "usage_error", err.Error(), nil, info.Version))
		} else {
			Errorf(wErr, "%v", err)
		}
		return ExitUsage
	}
	return ExitOK
}

func wantsJSON(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--json" || arg == "--json=true" {
			return true
		}
	}
	return false
}

func buildRootCommand(env *runEnv) *cobra.Command {
	root := &cobra.Command{
		Use:   "scrolldemo",
		Short: "Mouse wheel normalization demo",
		Long: `scrolldemo - smooth mouse wheel scrolling for terminal lists

Interactive:
  scrolldemo               Launch the scroll list demo (needs a TTY)
  scrolldemo tui           Launch the demo unconditionally

Headless:
  scrolldemo simulate      Replay wheel deltas through the normalizer
  scrolldemo sysinfo       Show the wheel settings in effect
  scrolldemo config        Inspect or create the config file`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Version = env.info.Version
	root.SetHelpCommand(&cobra.Command{Hidden: true})
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().BoolVar(&env.gf.JSON, "json", false, "Emit a JSON envelope")
	root.PersistentFlags().StringVar(&env.gf.ConfigDir, "config-dir", "", "Directory holding config.json (default ~/.scrolldemo)")
	root.PersistentFlags().StringVar(&env.gf.LogLevel, "log-level", "", "Log to stderr at debug|info|warn|error")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if env.gf.LogLevel != "" {
			logging.InitializeWriter(env.wErr, logging.ParseLevel(env.gf.LogLevel))
		}
	}

	root.AddCommand(buildSimulateCommand(env))
	root.AddCommand(buildSysinfoCommand(env))
	root.AddCommand(buildConfigCommand(env))
	root.AddCommand(buildVersionCommand(env))
	return root
}

func (e *runEnv) configPaths() (*config.Paths, error) {
	dir := strings.TrimSpace(e.gf.ConfigDir)
	if dir == "" {
		return config.DefaultPaths()
	}
	return config.PathsAt(dir), nil
}

func (e *runEnv) loadConfig() (*config.Config, error) {
	paths, err := e.configPaths()
	if err != nil {
		return nil, err
	}
	return config.LoadFrom(paths)
}

// succeed writes data as JSON or through human when JSON is off.
func (e *runEnv) succeed(command string, data any, human func(io.Writer)) error {
	if e.gf.JSON {
		writeEnvelope(e.w, successEnvelope(command, data, e.info.Version))
		return nil
	}
	human(e.w)
	return nil
}

// fail reports an error in the active output mode and returns the exit code
// wrapped for Run.
func (e *runEnv) fail(command string, code int, errCode, message string, details any) error {
	if e.gf.JSON {
		writeEnvelope(e.w, errorEnvelope(command, errCode, message, details, e.info.Version))
	} else {
		Errorf(e.wErr, "%s", message)
	}
	return exitError{code: code}
}

func (e *runEnv) usage(command, usage string, err error) error {
	if err == nil {
		return e.fail(command, ExitUsage, "usage_error", usage, nil)
	}
	if e.gf.JSON {
		return e.fail(command, ExitUsage, "usage_error", err.Error(), map[string]any{"usage": usage})
	}
	Errorf(e.wErr, "%v", err)
	fmt.Fprintln(e.wErr, usage)
	return exitError{code: ExitUsage}
}
