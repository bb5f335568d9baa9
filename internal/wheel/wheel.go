// Package wheel converts raw mouse-wheel rotation into whole lines to scroll.
//
// Wheel hardware reports rotation in units where one notch is Delta. High
// resolution wheels and touchpads report fractions of a notch, so a
// Normalizer carries the unconsumed remainder between events instead of
// truncating it away.
package wheel

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
)

// Delta is the rotation reported for one wheel notch.
const Delta = 120

// PageScroll is returned by System.ScrollLinesPerNotch when the system is
// configured to scroll one full page per notch.
const PageScroll = math.MaxInt32

// defaultLinesPerNotch is used when the system setting cannot be read.
const defaultLinesPerNotch = 3

// Axis selects the wheel direction.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// index maps the axis to its accumulator slot. Unknown values share the
// horizontal slot so the normalizer stays total.
func (a Axis) index() int {
	if a == Vertical {
		return 0
	}
	return 1
}

// ParseAxis parses "vertical"/"v" or "horizontal"/"h".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v", "vert":
		return Vertical, nil
	case "horizontal", "h", "horz":
		return Horizontal, nil
	default:
		return Vertical, fmt.Errorf("unknown axis %q", s)
	}
}

// SurfaceID identifies the UI element receiving wheel input. Values are only
// compared for equality.
type SurfaceID uint64

var lastSurfaceID atomic.Uint64

// NewSurfaceID returns a process-unique, non-zero surface id.
func NewSurfaceID() SurfaceID {
	return SurfaceID(lastSurfaceID.Add(1))
}

// System exposes the platform settings the normalizer depends on.
type System interface {
	// ScrollLinesPerNotch returns the configured lines (vertical) or
	// characters (horizontal) to scroll per notch, or PageScroll.
	ScrollLinesPerNotch(axis Axis) (int, error)
	// TickCount returns a monotonic millisecond counter. It may wrap.
	TickCount() uint32
	// DoubleClickTime returns the double-click interval in milliseconds.
	DoubleClickTime() uint32
}

// Scroller turns a wheel delta into a signed number of lines to add to a
// scroll position.
type Scroller interface {
	ScrollLines(surface SurfaceID, delta, page int, axis Axis) int
}
