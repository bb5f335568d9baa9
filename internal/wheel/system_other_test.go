//go:build !windows

package wheel

import (
	"testing"
	"time"
)

func TestNativeSystemDefaults(t *testing.T) {
	sys := NativeSystem()
	for _, axis := range []Axis{Vertical, Horizontal} {
		got, err := sys.ScrollLinesPerNotch(axis)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", axis, err)
		}
		if got != defaultLinesPerNotch {
			t.Fatalf("%s: expected %d, got %d", axis, defaultLinesPerNotch, got)
		}
	}
	if got := sys.DoubleClickTime(); got != fallbackDoubleClickTime {
		t.Fatalf("expected %d, got %d", fallbackDoubleClickTime, got)
	}

	before := sys.TickCount()
	time.Sleep(5 * time.Millisecond)
	if after := sys.TickCount(); after < before {
		t.Fatalf("expected tick count to advance, got %d then %d", before, after)
	}
}
