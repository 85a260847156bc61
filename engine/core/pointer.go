package core

// PointerTouch turns a mouse-style pointer into a single touch sequence, for
// platforms without a touchscreen. The pointer always has touch ID 0.
type PointerTouch struct {
	down   bool
	x, y   float64
	scaleX float64
	scaleY float64
}

func NewPointerTouch() *PointerTouch { return &PointerTouch{scaleX: 1, scaleY: 1} }

// SetScale maps window coordinates to framebuffer pixels (HiDPI displays).
func (p *PointerTouch) SetScale(sx, sy float64) {
	if sx <= 0 || sy <= 0 {
		return
	}
	p.scaleX, p.scaleY = sx, sy
}

func (p *PointerTouch) Down() bool { return p.down }

// Press starts a sequence. A second press without a release is ignored.
func (p *PointerTouch) Press(x, y float64) (EventTouch, bool) {
	p.moveTo(x, y)
	if p.down {
		return EventTouch{}, false
	}
	p.down = true
	return EventTouch{Phase: TouchStart, Touches: p.touches()}, true
}

// Move only produces an event while the button is held.
func (p *PointerTouch) Move(x, y float64) (EventTouch, bool) {
	p.moveTo(x, y)
	if !p.down {
		return EventTouch{}, false
	}
	return EventTouch{Phase: TouchMove, Touches: p.touches()}, true
}

// Release ends the sequence; the end sample lists no remaining touches.
func (p *PointerTouch) Release() (EventTouch, bool) {
	if !p.down {
		return EventTouch{}, false
	}
	p.down = false
	return EventTouch{Phase: TouchEnd}, true
}

func (p *PointerTouch) moveTo(x, y float64) { p.x, p.y = x*p.scaleX, y*p.scaleY }

func (p *PointerTouch) touches() []Touch { return []Touch{{ID: 0, X: p.x, Y: p.y}} }
