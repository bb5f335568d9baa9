package wheel

import (
	"sync"

	"github.com/andyrewlee/scrolldemo/internal/logging"
)

// Normalizer accumulates wheel deltas per axis for the surface that most
// recently received input. One instance is normally shared by every control
// in the process; surfaces are told apart by their SurfaceID.
type Normalizer struct {
	sys System

	mu           sync.Mutex
	current      SurfaceID
	accumulated  [2]int
	lastActivity [2]uint32
}

// NewNormalizer creates a normalizer reading settings from sys. A nil sys
// uses the native platform settings.
func NewNormalizer(sys System) *Normalizer {
	if sys == nil {
		sys = NativeSystem()
	}
	return &Normalizer{sys: sys}
}

var (
	defaultOnce       sync.Once
	defaultNormalizer *Normalizer
)

// Default returns the process-wide normalizer bound to the native system.
func Default() *Normalizer {
	defaultOnce.Do(func() {
		defaultNormalizer = NewNormalizer(nil)
	})
	return defaultNormalizer
}

// ScrollLines returns how many lines the surface should scroll for delta.
// page is the number of fully visible lines; one notch never scrolls more
// than a page. The result is in scroll-position direction: a positive
// vertical delta (wheel away from the user) yields a negative value.
func (n *Normalizer) ScrollLines(surface SurfaceID, delta, page int, axis Axis) int {
	idx := axis.index()
	now := n.sys.TickCount()

	if page < 1 {
		page = 1
	}
	speed := n.linesPerNotch(axis, page)
	threshold := 2 * uint64(n.sys.DoubleClickTime())

	var lines int

	n.mu.Lock()
	switch {
	case surface != n.current:
		n.current = surface
		n.accumulated[0] = 0
		n.accumulated[1] = 0
	case uint64(now-n.lastActivity[idx]) > threshold:
		n.accumulated[idx] = 0
	case (n.accumulated[idx] > 0) == (delta < 0):
		n.accumulated[idx] = 0
	}

	if speed > 0 {
		n.accumulated[idx] += delta
		lines = n.accumulated[idx] * speed / Delta
		n.accumulated[idx] -= lines * Delta / speed
	} else {
		lines = 0
		n.accumulated[idx] = 0
	}
	n.lastActivity[idx] = now
	n.mu.Unlock()

	if axis == Vertical {
		return -lines
	}
	return lines
}

// Accumulated returns the unconsumed delta for axis.
func (n *Normalizer) Accumulated(axis Axis) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.accumulated[axis.index()]
}

// Reset forgets the current surface and clears both accumulators.
func (n *Normalizer) Reset() {
	n.mu.Lock()
	n.current = 0
	n.accumulated = [2]int{}
	n.lastActivity = [2]uint32{}
	n.mu.Unlock()
}

// LinesPerNotch resolves the effective scroll speed for a page size.
func (n *Normalizer) LinesPerNotch(axis Axis, page int) int {
	if page < 1 {
		page = 1
	}
	return n.linesPerNotch(axis, page)
}

func (n *Normalizer) linesPerNotch(axis Axis, page int) int {
	speed, err := n.sys.ScrollLinesPerNotch(axis)
	if err != nil {
		logging.Debug("wheel: %s speed unavailable, using %d: %v", axis, defaultLinesPerNotch, err)
		speed = defaultLinesPerNotch
	}
	if speed == PageScroll {
		speed = page
	}
	if speed > page {
		speed = page
	}
	if speed < 0 {
		speed = 0
	}
	return speed
}
