package scene

// Camera2D looks at a point of a 2D world from above. World units are pixels
// at Zoom 1; screen space is the framebuffer, origin top-left, Y down.
type Camera2D struct {
	X, Y          float32
	Zoom          float32 // 1 = no zoom
	width, height float32
}

func NewCamera2D(width, height int) *Camera2D {
	c := &Camera2D{Zoom: 1}
	c.SetViewportPixels(width, height)
	return c
}

func (c *Camera2D) SetViewportPixels(w, h int) {
	c.width, c.height = float32(w), float32(h)
}

func (c *Camera2D) Viewport() (w, h float32) { return c.width, c.height }

func (c *Camera2D) Move(dx, dy float32)      { c.X += dx; c.Y += dy }
func (c *Camera2D) SetPosition(x, y float32) { c.X, c.Y = x, y }
func (c *Camera2D) Position() (x, y float32) { return c.X, c.Y }
func (c *Camera2D) SetZoom(z float32) {
	if z < 0.05 {
		z = 0.05
	}
	if z > 20 {
		z = 20
	}
	c.Zoom = z
}

// WorldToScreen maps a world point to framebuffer pixels. The camera
// position sits at the viewport centre.
func (c *Camera2D) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return (wx-c.X)*c.Zoom + c.width/2, (wy-c.Y)*c.Zoom + c.height/2
}

func (c *Camera2D) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	return (sx-c.width/2)/c.Zoom + c.X, (sy-c.height/2)/c.Zoom + c.Y
}

// VisibleRect is the world-space box covered by the viewport.
func (c *Camera2D) VisibleRect() (x, y, w, h float32) {
	x, y = c.ScreenToWorld(0, 0)
	return x, y, c.width / c.Zoom, c.height / c.Zoom
}
