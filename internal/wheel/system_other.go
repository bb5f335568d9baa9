//go:build !windows

package wheel

import "time"

// Terminals and X11/Wayland toolkits do not expose a process-readable
// wheel speed, so these match the Windows defaults.
const (
	fallbackDoubleClickTime = 500
)

var processStart = time.Now()

type nativeSystem struct{}

// NativeSystem returns fixed defaults on platforms without a queryable
// wheel preference.
func NativeSystem() System { return nativeSystem{} }

func (nativeSystem) ScrollLinesPerNotch(Axis) (int, error) {
	return defaultLinesPerNotch, nil
}

func (nativeSystem) TickCount() uint32 {
	return uint32(time.Since(processStart).Milliseconds())
}

func (nativeSystem) DoubleClickTime() uint32 {
	return fallbackDoubleClickTime
}
