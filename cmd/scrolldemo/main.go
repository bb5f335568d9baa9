package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/term"

	"github.com/andyrewlee/scrolldemo/internal/app"
	"github.com/andyrewlee/scrolldemo/internal/cli"
	"github.com/andyrewlee/scrolldemo/internal/config"
	"github.com/andyrewlee/scrolldemo/internal/logging"
	"github.com/andyrewlee/scrolldemo/internal/safego"
	"github.com/andyrewlee/scrolldemo/internal/wheel"
)

// Version info set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type invocation int

const (
	invokeCLI invocation = iota
	invokeTUI
)

func main() {
	// Handle --version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("scrolldemo %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	launchTUI := shouldLaunchTUI(
		term.IsTerminal(os.Stdin.Fd()),
		term.IsTerminal(os.Stdout.Fd()),
	)
	kind, gf := classifyInvocation(os.Args[1:], launchTUI)
	if kind == invokeCLI {
		os.Exit(cli.Run(os.Args[1:], version, commit, date))
	}
	os.Exit(runTUI(gf))
}

// classifyInvocation decides between the interactive demo and the headless
// CLI. A bare invocation only opens the demo on a terminal.
func classifyInvocation(args []string, launchTUI bool) (invocation, cli.GlobalFlags) {
	gf, rest, err := cli.ParseGlobalFlags(args)
	if err != nil {
		// Let the headless CLI render the canonical parse error response.
		return invokeCLI, gf
	}
	if len(rest) == 0 {
		if launchTUI && !gf.JSON {
			return invokeTUI, gf
		}
		return invokeCLI, gf
	}
	if rest[0] == "tui" && len(rest) == 1 {
		return invokeTUI, gf
	}
	return invokeCLI, gf
}

func shouldLaunchTUI(stdinIsTTY, stdoutIsTTY bool) bool {
	return stdinIsTTY && stdoutIsTTY
}

func loadConfig(dir string) (*config.Config, error) {
	if strings.TrimSpace(dir) == "" {
		return config.Load()
	}
	return config.LoadFrom(config.PathsAt(dir))
}

func runTUI(gf cli.GlobalFlags) int {
	cfg, err := loadConfig(gf.ConfigDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}
	if err := cfg.Paths.EnsureDirectories(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create %s: %v\n", cfg.Paths.Home, err)
	}

	if err := logging.Initialize(cfg.Paths.LogDir, logging.ParseLevel(cfg.LogLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
	}
	defer logging.Close()

	logging.Info("Starting scrolldemo %s", version)

	a := app.New(cfg, wheel.NativeSystem())
	startPprof()

	p := tea.NewProgram(
		a,
		tea.WithFilter(mouseEventFilter),
	)
	a.SetMsgSender(p.Send)
	safego.SetPanicHandler(func(name string, recovered any, _ []byte) {
		a.ReportPanic(name, recovered)
	})

	if _, err := p.Run(); err != nil {
		logging.Error("App exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		a.Shutdown()
		return 1
	}
	a.Shutdown()

	logging.Info("scrolldemo shutdown complete")
	return 0
}

var (
	lastMouseMotionEvent   time.Time
	lastMouseX, lastMouseY int
)

// mouseEventFilter drops repeated motion reports at an unchanged position.
// Wheel events always pass: the normalizer needs every delta.
func mouseEventFilter(m tea.Model, msg tea.Msg) tea.Msg {
	if msg, ok := msg.(tea.MouseMotionMsg); ok {
		// Always allow if position changed
		if msg.X != lastMouseX || msg.Y != lastMouseY {
			lastMouseX = msg.X
			lastMouseY = msg.Y
			lastMouseMotionEvent = time.Now()
			return msg
		}
		// Same position - apply time throttle
		now := time.Now()
		if now.Sub(lastMouseMotionEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseMotionEvent = now
	}
	return msg
}

func startPprof() {
	raw := strings.TrimSpace(os.Getenv("SCROLLDEMO_PPROF"))
	if raw == "" {
		return
	}
	switch strings.ToLower(raw) {
	case "0", "false", "no":
		return
	}

	addr := raw
	if raw == "1" || strings.ToLower(raw) == "true" {
		addr = "127.0.0.1:6060"
	} else if _, err := strconv.Atoi(raw); err == nil {
		addr = "127.0.0.1:" + raw
	}

	safego.Go("pprof", func() {
		logging.Info("pprof listening on %s", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			logging.Warn("pprof server stopped: %v", err)
		}
	})
}
