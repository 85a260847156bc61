package ui

import "github.com/hubastard/grove-thumbstick/engine/colors"

type Base struct {
	position [2]float32
	size     [2]float32
	color    colors.Color
	hidden   bool
}

func (b *Base) Pos() (x, y float32)     { return b.position[0], b.position[1] }
func (b *Base) Size() (w, h float32)    { return b.size[0], b.size[1] }
func (b *Base) SetPos(x, y float32)     { b.position = [2]float32{x, y} }
func (b *Base) SetSize(w, h float32)    { b.size = [2]float32{w, h} }
func (b *Base) SetColor(c colors.Color) { b.color = c }
func (b *Base) SetHidden(h bool)        { b.hidden = h }
func (b *Base) Hidden() bool            { return b.hidden }

// Contains reports whether (x, y) falls inside the element's box.
func (b *Base) Contains(x, y float32) bool {
	return x >= b.position[0] && x <= b.position[0]+b.size[0] &&
		y >= b.position[1] && y <= b.position[1]+b.size[1]
}

func (b *Base) center() (float32, float32) {
	return b.position[0] + b.size[0]/2, b.position[1] + b.size[1]/2
}

// ------ Helper ------

type Common[T any] struct {
	owner T
	base  Base
}

func NewCommon[T any](owner T) Common[T] {
	return Common[T]{owner: owner}
}

func (c *Common[T]) Node() *Base              { return &c.base }
func (c *Common[T]) Position(x, y float32) T  { c.base.SetPos(x, y); return c.owner }
func (c *Common[T]) Size(w, h float32) T      { c.base.SetSize(w, h); return c.owner }
func (c *Common[T]) Color(col colors.Color) T { c.base.SetColor(col); return c.owner }
func (c *Common[T]) Hidden(h bool) T          { c.base.SetHidden(h); return c.owner }
