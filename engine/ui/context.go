package ui

// Renderer is the subset of the engine renderer the widgets draw with.
// Coordinates are pixels, origin top-left.
type Renderer interface {
	DrawRect(x, y, w, h float32, color [4]float32)
	DrawCircle(cx, cy, radius float32, color [4]float32)
}

type Context struct {
	Viewport [4]float32 // x, y, w, h
	Renderer Renderer
}

type UIElement interface {
	Node() *Base
	Draw(ctx *Context)
}
