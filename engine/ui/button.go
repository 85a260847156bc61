package ui

import "github.com/hubastard/grove-thumbstick/engine/colors"

// UIButton is a square icon button. The icon is a four-way "move" cross.
type UIButton struct {
	Common[*UIButton]
	active      bool
	activeColor colors.Color
	iconColor   colors.Color
}

func Button() *UIButton {
	b := &UIButton{
		activeColor: colors.Accent,
		iconColor:   colors.White,
	}
	b.Common = NewCommon(b)
	b.base.color = colors.Black.WithAlpha(0.4)
	return b
}

func (b *UIButton) Active(on bool) *UIButton             { b.active = on; return b }
func (b *UIButton) ActiveColor(c colors.Color) *UIButton { b.activeColor = c; return b }
func (b *UIButton) IconColor(c colors.Color) *UIButton   { b.iconColor = c; return b }
func (b *UIButton) IsActive() bool                       { return b.active }
func (b *UIButton) Hit(x, y float32) bool                { return !b.base.hidden && b.base.Contains(x, y) }

func (b *UIButton) Draw(ctx *Context) {
	if b.base.hidden {
		return
	}
	x, y := b.base.Pos()
	w, h := b.base.Size()
	bg := b.base.color
	if b.active {
		bg = b.activeColor
	}
	if bg[3] > 0 {
		ctx.Renderer.DrawRect(x, y, w, h, bg)
	}

	cx, cy := b.base.center()
	arm := w * 0.6
	thick := maxf(2, w*0.1)
	ctx.Renderer.DrawRect(cx-arm/2, cy-thick/2, arm, thick, b.iconColor)
	ctx.Renderer.DrawRect(cx-thick/2, cy-arm/2, thick, arm, b.iconColor)
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
