//go:build windows

package wheel

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	spiGetWheelScrollLines = 0x0068
	spiGetWheelScrollChars = 0x006C

	// wheelPageScroll is WHEEL_PAGESCROLL (UINT_MAX).
	wheelPageScroll = 0xFFFFFFFF

	fallbackDoubleClickTime = 500
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")
	procGetDoubleClickTime    = user32.NewProc("GetDoubleClickTime")
	procGetTickCount          = kernel32.NewProc("GetTickCount")

	processStart = time.Now()
)

type nativeSystem struct{}

// NativeSystem returns the Windows wheel settings.
func NativeSystem() System { return nativeSystem{} }

func (nativeSystem) ScrollLinesPerNotch(axis Axis) (int, error) {
	action := uintptr(spiGetWheelScrollLines)
	if axis != Vertical {
		action = spiGetWheelScrollChars
	}
	if err := procSystemParametersInfoW.Find(); err != nil {
		return 0, err
	}
	var value uint32
	r, _, err := procSystemParametersInfoW.Call(action, 0, uintptr(unsafe.Pointer(&value)), 0)
	if r == 0 {
		return 0, fmt.Errorf("SystemParametersInfo(%#x): %w", action, err)
	}
	if value == wheelPageScroll || value > PageScroll {
		return PageScroll, nil
	}
	return int(value), nil
}

func (nativeSystem) TickCount() uint32 {
	if procGetTickCount.Find() != nil {
		return uint32(time.Since(processStart).Milliseconds())
	}
	r, _, _ := procGetTickCount.Call()
	return uint32(r)
}

func (nativeSystem) DoubleClickTime() uint32 {
	if procGetDoubleClickTime.Find() != nil {
		return fallbackDoubleClickTime
	}
	r, _, _ := procGetDoubleClickTime.Call()
	return uint32(r)
}
