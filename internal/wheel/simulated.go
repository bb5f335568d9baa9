package wheel

import "sync"

// Simulated is a System with fixed settings and a manually advanced clock.
type Simulated struct {
	mu          sync.Mutex
	lines       int
	chars       int
	doubleClick uint32
	now         uint32
}

// NewSimulated creates a simulated system. The clock starts at zero.
func NewSimulated(lines, chars int, doubleClickMs uint32) *Simulated {
	return &Simulated{lines: lines, chars: chars, doubleClick: doubleClickMs}
}

// Advance moves the clock forward by ms.
func (s *Simulated) Advance(ms uint32) {
	s.mu.Lock()
	s.now += ms
	s.mu.Unlock()
}

// SetSpeed changes the reported lines and chars per notch.
func (s *Simulated) SetSpeed(lines, chars int) {
	s.mu.Lock()
	s.lines, s.chars = lines, chars
	s.mu.Unlock()
}

func (s *Simulated) ScrollLinesPerNotch(axis Axis) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if axis == Vertical {
		return s.lines, nil
	}
	return s.chars, nil
}

func (s *Simulated) TickCount() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *Simulated) DoubleClickTime() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doubleClick
}
