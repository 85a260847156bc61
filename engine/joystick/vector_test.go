package joystick

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestClampScenarios(t *testing.T) {
	t.Run("beyond radius snaps to the rim", func(t *testing.T) {
		off := Clamp(Vec2{50, 0}, 35)
		assert.InDelta(t, 35, off.X, eps)
		assert.InDelta(t, 0, off.Y, eps)

		n := Normalize(off, 35)
		assert.InDelta(t, 1, n.X, eps)
		assert.InDelta(t, 0, n.Y, eps)
	})

	t.Run("inside radius is unchanged", func(t *testing.T) {
		off := Clamp(Vec2{10, 10}, 35)
		assert.Equal(t, Vec2{10, 10}, off)

		n := Normalize(off, 35)
		assert.InDelta(t, 0.286, n.X, 1e-3)
		assert.InDelta(t, 0.286, n.Y, 1e-3)
	})

	t.Run("exactly on the radius", func(t *testing.T) {
		assert.Equal(t, Vec2{0, -35}, Clamp(Vec2{0, -35}, 35))
	})
}

func TestClampProperties(t *testing.T) {
	const maxRadius = 35.0
	rng := rand.New(rand.NewSource(7))

	check := func(d Vec2) {
		off := Clamp(d, maxRadius)
		raw := d.Len()
		assert.LessOrEqual(t, off.Len(), maxRadius+eps, "delta %v", d)
		if raw > maxRadius {
			assert.InDelta(t, maxRadius, off.Len(), 1e-6, "delta %v", d)
			assert.InDelta(t, 0, angleDiff(d.Angle(), off.Angle()), 1e-9, "delta %v", d)
		} else {
			assert.Equal(t, d, off)
		}
		n := Normalize(off, maxRadius)
		assert.True(t, n.X >= -1 && n.X <= 1, "x out of range for %v: %v", d, n)
		assert.True(t, n.Y >= -1 && n.Y <= 1, "y out of range for %v: %v", d, n)
	}

	for dx := -210.0; dx <= 210; dx += 7.5 {
		for dy := -210.0; dy <= 210; dy += 7.5 {
			check(Vec2{dx, dy})
		}
	}
	for i := 0; i < 2000; i++ {
		check(Vec2{(rng.Float64() - 0.5) * 5000, (rng.Float64() - 0.5) * 5000})
	}
}

func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b+math.Pi, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d - math.Pi
}

func TestNormalizeZeroRadius(t *testing.T) {
	assert.Equal(t, Vec2{}, Normalize(Vec2{3, 4}, 0))
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	assert.Equal(t, Vec2{60, 45}, r.Center())
	assert.True(t, r.Contains(Vec2{10, 20}))
	assert.True(t, r.Contains(Vec2{110, 70}))
	assert.False(t, r.Contains(Vec2{111, 70}))
	assert.False(t, r.Contains(Vec2{50, 19}))
}
