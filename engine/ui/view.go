package ui

import "github.com/hubastard/grove-thumbstick/engine/colors"

type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

type LayoutDirection int

const (
	LayoutHorizontal LayoutDirection = iota
	LayoutVertical
)

// UIView stacks fixed-size children along one axis and sizes itself to fit
// them plus padding.
type UIView struct {
	Common[*UIView]
	children   []UIElement
	gap        float32
	padding    float32
	crossAlign Align
	flow       LayoutDirection
}

func View(children ...UIElement) *UIView {
	v := &UIView{gap: 10, flow: LayoutVertical}
	v.Common = NewCommon(v)
	v.children = children
	return v
}

func (l *UIView) BgColor(color colors.Color) *UIView              { l.base.color = color; return l }
func (l *UIView) FlowDirection(direction LayoutDirection) *UIView { l.flow = direction; return l }
func (l *UIView) Gap(g float32) *UIView                           { l.gap = g; return l }
func (l *UIView) Padding(p float32) *UIView                       { l.padding = p; return l }
func (l *UIView) AlignCross(a Align) *UIView                      { l.crossAlign = a; return l }
func (l *UIView) Children() []UIElement                           { return l.children }

// Layout positions the children from the view's current position and
// updates the view size.
func (l *UIView) Layout() {
	var main, cross float32
	for i, c := range l.children {
		w, h := c.Node().Size()
		if l.flow == LayoutHorizontal {
			w, h = h, w
		}
		// w is now the cross extent, h the main extent.
		cross = maxf(cross, w)
		main += h
		if i > 0 {
			main += l.gap
		}
	}

	x0, y0 := l.base.Pos()
	x0 += l.padding
	y0 += l.padding
	cursor := float32(0)
	for _, c := range l.children {
		n := c.Node()
		w, h := n.Size()
		if l.flow == LayoutVertical {
			n.SetPos(x0+alignOffset(l.crossAlign, cross, w), y0+cursor)
			cursor += h + l.gap
		} else {
			n.SetPos(x0+cursor, y0+alignOffset(l.crossAlign, cross, h))
			cursor += w + l.gap
		}
	}

	if l.flow == LayoutVertical {
		l.base.SetSize(cross+2*l.padding, main+2*l.padding)
	} else {
		l.base.SetSize(main+2*l.padding, cross+2*l.padding)
	}
}

func (l *UIView) Draw(ctx *Context) {
	if l.base.hidden {
		return
	}
	l.Layout()
	if l.base.color[3] > 0 {
		x, y := l.base.Pos()
		w, h := l.base.Size()
		ctx.Renderer.DrawRect(x, y, w, h, l.base.color)
	}
	for _, c := range l.children {
		c.Draw(ctx)
	}
}

func alignOffset(a Align, avail, size float32) float32 {
	switch a {
	case AlignCenter:
		return (avail - size) / 2
	case AlignEnd:
		return avail - size
	default:
		return 0
	}
}
