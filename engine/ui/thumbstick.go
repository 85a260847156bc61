package ui

import "github.com/hubastard/grove-thumbstick/engine/colors"

// UIThumbstick draws a round base with a handle displaced by an offset.
type UIThumbstick struct {
	Common[*UIThumbstick]
	handleSize   float32
	handleColor  colors.Color
	outlineColor colors.Color
	offset       [2]float32
	editing      bool
}

func Thumbstick(handleSize float32) *UIThumbstick {
	t := &UIThumbstick{
		handleSize:   handleSize,
		handleColor:  colors.White.WithAlpha(0.9),
		outlineColor: colors.Accent,
	}
	t.Common = NewCommon(t)
	t.base.color = colors.Black.WithAlpha(0.2)
	return t
}

func (t *UIThumbstick) Offset(dx, dy float32) *UIThumbstick {
	t.offset = [2]float32{dx, dy}
	return t
}

// Editing outlines the base so the user knows dragging moves the widget.
func (t *UIThumbstick) Editing(on bool) *UIThumbstick { t.editing = on; return t }

func (t *UIThumbstick) Draw(ctx *Context) {
	if t.base.hidden {
		return
	}
	cx, cy := t.base.center()
	w, _ := t.base.Size()
	r := w / 2
	if t.editing {
		ctx.Renderer.DrawCircle(cx, cy, r+3, t.outlineColor)
	}
	if t.base.color[3] > 0 {
		ctx.Renderer.DrawCircle(cx, cy, r, t.base.color)
	}
	handle := t.handleColor
	if t.offset != [2]float32{} {
		handle = handle.Scale(0.9)
	}
	ctx.Renderer.DrawCircle(cx+t.offset[0], cy+t.offset[1], t.handleSize/2, handle)
}
