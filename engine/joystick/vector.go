package joystick

import "math"

// Vec2 is a 2D vector in client-space pixels (Y grows downward).
type Vec2 struct{ X, Y float64 }

func (v Vec2) Sub(o Vec2) Vec2        { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Len() float64           { return math.Hypot(v.X, v.Y) }
func (v Vec2) Angle() float64         { return math.Atan2(v.Y, v.X) }
func (v Vec2) XY() (float32, float32) { return float32(v.X), float32(v.Y) }

// Clamp limits delta to maxRadius. Deltas already inside the radius are
// returned untouched; longer ones are rescaled along their own angle so the
// result lies exactly on the circle.
func Clamp(delta Vec2, maxRadius float64) Vec2 {
	if delta.Len() <= maxRadius {
		return delta
	}
	angle := delta.Angle()
	return Vec2{
		X: math.Cos(angle) * maxRadius,
		Y: math.Sin(angle) * maxRadius,
	}
}

// Normalize maps an offset clamped to maxRadius into [-1,1] on each axis.
func Normalize(offset Vec2, maxRadius float64) Vec2 {
	if maxRadius <= 0 {
		return Vec2{}
	}
	return Vec2{
		X: clampUnit(offset.X / maxRadius),
		Y: clampUnit(offset.Y / maxRadius),
	}
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// Rect is an axis-aligned box in client space, origin top-left.
type Rect struct{ X, Y, W, H float64 }

func (r Rect) Center() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}
