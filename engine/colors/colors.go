package colors

type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
	Accent   = Color{0.25, 0.62, 1, 0.9}
)

// RGBA8 builds a color from 0-255 channels and a 0-1 alpha, CSS rgba() style.
func RGBA8(r, g, b uint8, a float32) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, a}
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Scale multiplies the RGB channels, keeping alpha.
func (c Color) Scale(f float32) Color {
	for i := 0; i < 3; i++ {
		c[i] *= f
		if c[i] > 1 {
			c[i] = 1
		}
	}
	return c
}
