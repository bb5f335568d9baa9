package wheel

// Overrides replaces selected settings of a base System. Nil fields fall
// through to Base.
type Overrides struct {
	Base          System
	LinesPerNotch *int
	CharsPerNotch *int
	DoubleClickMs *int
}

func (o Overrides) base() System {
	if o.Base == nil {
		return NativeSystem()
	}
	return o.Base
}

func (o Overrides) ScrollLinesPerNotch(axis Axis) (int, error) {
	if axis == Vertical && o.LinesPerNotch != nil {
		return *o.LinesPerNotch, nil
	}
	if axis != Vertical && o.CharsPerNotch != nil {
		return *o.CharsPerNotch, nil
	}
	return o.base().ScrollLinesPerNotch(axis)
}

func (o Overrides) TickCount() uint32 {
	return o.base().TickCount()
}

func (o Overrides) DoubleClickTime() uint32 {
	if o.DoubleClickMs != nil && *o.DoubleClickMs >= 0 {
		return uint32(*o.DoubleClickMs)
	}
	return o.base().DoubleClickTime()
}
