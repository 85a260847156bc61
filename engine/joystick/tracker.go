package joystick

// Tracker turns touch samples into a clamped handle offset around an anchor.
type Tracker struct {
	maxRadius float64
	anchor    Vec2
	offset    Vec2
	active    bool
}

func NewTracker(maxRadius float64) *Tracker { return &Tracker{maxRadius: maxRadius} }

// Start anchors a new gesture and returns the offset of its first sample.
func (t *Tracker) Start(anchor, touch Vec2) Vec2 {
	t.anchor = anchor
	t.active = true
	t.offset = Clamp(touch.Sub(anchor), t.maxRadius)
	return t.offset
}

// Move updates the offset. It reports false when no gesture is active.
func (t *Tracker) Move(touch Vec2) (Vec2, bool) {
	if !t.active {
		return Vec2{}, false
	}
	t.offset = Clamp(touch.Sub(t.anchor), t.maxRadius)
	return t.offset, true
}

// End resets the offset and reports whether a gesture was active.
func (t *Tracker) End() bool {
	was := t.active
	t.active = false
	t.offset = Vec2{}
	return was
}

func (t *Tracker) Active() bool       { return t.active }
func (t *Tracker) Anchor() Vec2       { return t.anchor }
func (t *Tracker) Offset() Vec2       { return t.offset }
func (t *Tracker) MaxRadius() float64 { return t.maxRadius }
func (t *Tracker) Normalized() Vec2   { return Normalize(t.offset, t.maxRadius) }
