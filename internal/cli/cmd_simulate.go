package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andyrewlee/scrolldemo/internal/logging"
	"github.com/andyrewlee/scrolldemo/internal/wheel"
)

const simulateUsage = "Usage: scrolldemo simulate [flags] <delta|wait:MS|switch>..."

type simulateOptions struct {
	page          int
	axis          string
	lines         int
	chars         int
	doubleClickMs int
	pageScroll    bool
	intervalMs    int
}

type simulateStep struct {
	Index       int    `json:"index"`
	TimeMs      uint32 `json:"time_ms"`
	Surface     int    `json:"surface"`
	Delta       int    `json:"delta"`
	Lines       int    `json:"lines"`
	Accumulated int    `json:"accumulated"`
	Position    int    `json:"position"`
}

type simulateResult struct {
	Axis          string         `json:"axis"`
	Page          int            `json:"page"`
	LinesPerNotch int            `json:"lines_per_notch"`
	DoubleClickMs uint32         `json:"double_click_ms"`
	Steps         []simulateStep `json:"steps"`
	TotalLines    int            `json:"total_lines"`
}

// simulateEvent is one parsed token: a wheel delta, a clock jump, or a
// switch to a fresh surface.
type simulateEvent struct {
	delta int
	wait  uint32
	kind  byte // 'd', 'w' or 's'
}

func buildSimulateCommand(env *runEnv) *cobra.Command {
	opts := simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate <delta|wait:MS|switch>...",
		Short: "Replay wheel deltas through the normalizer",
		Long: `Replay a sequence of raw wheel deltas and print the lines each one scrolls.

One notch is 120. Positive deltas roll the wheel away from the user.
  wait:MS   advance the clock by MS milliseconds
  switch    send the following deltas to a different surface

Example:
  scrolldemo simulate 40 40 40 wait:2000 -120`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.runSimulate(opts, args)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.page, "page", 10, "Fully visible lines on the surface")
	f.StringVar(&opts.axis, "axis", "vertical", "Wheel axis (vertical|horizontal)")
	f.IntVar(&opts.lines, "lines", -1, "Lines per notch (default: configured or system value)")
	f.IntVar(&opts.chars, "chars", -1, "Characters per notch (default: configured or system value)")
	f.IntVar(&opts.doubleClickMs, "double-click-ms", -1, "Double-click time (default: configured or system value)")
	f.BoolVar(&opts.pageScroll, "page-scroll", false, "Scroll one page per notch")
	f.IntVar(&opts.intervalMs, "interval-ms", 0, "Clock advance before each delta after the first")
	return cmd
}

func (e *runEnv) runSimulate(opts simulateOptions, args []string) error {
	const command = "simulate"
	if len(args) == 0 {
		return e.usage(command, simulateUsage, nil)
	}
	axis, err := wheel.ParseAxis(opts.axis)
	if err != nil {
		return e.usage(command, simulateUsage, err)
	}
	if opts.intervalMs < 0 {
		return e.usage(command, simulateUsage, fmt.Errorf("--interval-ms must be >= 0"))
	}
	events, err := parseSimulateEvents(args)
	if err != nil {
		return e.usage(command, simulateUsage, err)
	}

	cfg, err := e.loadConfig()
	if err != nil {
		return e.fail(command, ExitInternalError, "config_error", err.Error(), nil)
	}
	sim := simulatedSystem(cfg.WheelSystem(wheel.NativeSystem()), opts)
	n := wheel.NewNormalizer(sim)
	logging.Debug("simulate: %d tokens, axis %s, page %d", len(events), axis, opts.page)

	result := simulateResult{
		Axis:          axis.String(),
		Page:          opts.page,
		LinesPerNotch: n.LinesPerNotch(axis, opts.page),
		DoubleClickMs: sim.DoubleClickTime(),
		Steps:         []simulateStep{},
	}

	surfaces := []wheel.SurfaceID{wheel.NewSurfaceID()}
	deltas := 0
	for _, ev := range events {
		switch ev.kind {
		case 'w':
			sim.Advance(ev.wait)
			continue
		case 's':
			surfaces = append(surfaces, wheel.NewSurfaceID())
			continue
		}
		if deltas > 0 && opts.intervalMs > 0 {
			sim.Advance(uint32(opts.intervalMs))
		}
		deltas++
		lines := n.ScrollLines(surfaces[len(surfaces)-1], ev.delta, opts.page, axis)
		logging.Debug("simulate: delta %d -> %d lines, %d pending", ev.delta, lines, n.Accumulated(axis))
		result.TotalLines += lines
		result.Steps = append(result.Steps, simulateStep{
			Index:       deltas,
			TimeMs:      sim.TickCount(),
			Surface:     len(surfaces),
			Delta:       ev.delta,
			Lines:       lines,
			Accumulated: n.Accumulated(axis),
			Position:    result.TotalLines,
		})
	}

	return e.succeed(command, result, func(w io.Writer) {
		printSimulateResult(w, result)
	})
}

func parseSimulateEvents(args []string) ([]simulateEvent, error) {
	events := make([]simulateEvent, 0, len(args))
	for _, raw := range args {
		token := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case token == "switch":
			events = append(events, simulateEvent{kind: 's'})
		case strings.HasPrefix(token, "wait:"):
			ms, err := strconv.ParseUint(strings.TrimPrefix(token, "wait:"), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid wait %q", raw)
			}
			events = append(events, simulateEvent{kind: 'w', wait: uint32(ms)})
		default:
			delta, err := strconv.Atoi(token)
			if err != nil {
				return nil, fmt.Errorf("invalid delta %q", raw)
			}
			events = append(events, simulateEvent{kind: 'd', delta: delta})
		}
	}
	return events, nil
}

// simulatedSystem freezes the effective settings of sys into a Simulated
// clock, then applies the command line overrides.
func simulatedSystem(sys wheel.System, opts simulateOptions) *wheel.Simulated {
	lines := resolvedSpeed(sys, wheel.Vertical)
	chars := resolvedSpeed(sys, wheel.Horizontal)
	doubleClick := sys.DoubleClickTime()

	if opts.lines >= 0 {
		lines = opts.lines
	}
	if opts.chars >= 0 {
		chars = opts.chars
	}
	if opts.pageScroll {
		lines = wheel.PageScroll
	}
	if opts.doubleClickMs >= 0 {
		doubleClick = uint32(opts.doubleClickMs)
	}
	return wheel.NewSimulated(lines, chars, doubleClick)
}

func resolvedSpeed(sys wheel.System, axis wheel.Axis) int {
	speed, err := sys.ScrollLinesPerNotch(axis)
	if err != nil {
		return 3
	}
	return speed
}

func printSimulateResult(w io.Writer, r simulateResult) {
	fmt.Fprintf(w, "axis %s, page %d, %d lines per notch, double-click %dms\n\n",
		r.Axis, r.Page, r.LinesPerNotch, r.DoubleClickMs)
	fmt.Fprintf(w, "%4s %8s %7s %7s %7s %7s %9s\n", "#", "time", "surface", "delta", "lines", "accum", "position")
	for _, s := range r.Steps {
		fmt.Fprintf(w, "%4d %6dms %7d %7d %7d %7d %9d\n",
			s.Index, s.TimeMs, s.Surface, s.Delta, s.Lines, s.Accumulated, s.Position)
	}
	fmt.Fprintf(w, "\ntotal %d lines\n", r.TotalLines)
}
