package ui

import "github.com/hubastard/grove-thumbstick/engine/colors"

// UIBar shows a value in [-1,1] as a fill growing from the bar's middle.
type UIBar struct {
	Common[*UIBar]
	value     float32
	fillColor colors.Color
}

func Bar() *UIBar {
	b := &UIBar{fillColor: colors.Accent}
	b.Common = NewCommon(b)
	b.base.color = colors.White.WithAlpha(0.15)
	b.base.SetSize(120, 8)
	return b
}

func (b *UIBar) FillColor(c colors.Color) *UIBar { b.fillColor = c; return b }

// Value sets the fill; values outside [-1,1] are clamped.
func (b *UIBar) Value(v float32) *UIBar {
	if v < -1 {
		v = -1
	}
	if v > 1 {
		v = 1
	}
	b.value = v
	return b
}

// FillRect is the filled part of the bar in pixels.
func (b *UIBar) FillRect() (x, y, w, h float32) {
	bx, by := b.base.Pos()
	bw, bh := b.base.Size()
	mid := bx + bw/2
	fill := b.value * bw / 2
	if fill < 0 {
		return mid + fill, by, -fill, bh
	}
	return mid, by, fill, bh
}

func (b *UIBar) Draw(ctx *Context) {
	if b.base.hidden {
		return
	}
	x, y := b.base.Pos()
	w, h := b.base.Size()
	if b.base.color[3] > 0 {
		ctx.Renderer.DrawRect(x, y, w, h, b.base.color)
	}
	if fx, fy, fw, fh := b.FillRect(); fw > 0 {
		ctx.Renderer.DrawRect(fx, fy, fw, fh, b.fillColor)
	}
}
