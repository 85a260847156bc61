package main

import (
	"github.com/hubastard/grove-thumbstick/engine/colors"
	"github.com/hubastard/grove-thumbstick/engine/core"
	"github.com/hubastard/grove-thumbstick/engine/joystick"
	"github.com/hubastard/grove-thumbstick/engine/ui"
)

// LayerHUD shows the live stick vector as two bars in the top-left corner.
type LayerHUD struct {
	barX, barY *ui.UIBar
	view       *ui.UIView
	cancel     func()
}

func NewLayerHUD(js *joystick.Joystick) *LayerHUD {
	l := &LayerHUD{barX: ui.Bar(), barY: ui.Bar()}
	l.view = ui.View(l.barX, l.barY).
		Position(16, 16).
		Gap(6).
		Padding(8).
		BgColor(colors.Black.WithAlpha(0.35))
	l.cancel = js.Watch(l.onState)
	l.onState(js.State())
	return l
}

func (l *LayerHUD) onState(s joystick.State) {
	l.barX.Value(float32(s.Normalized.X))
	l.barY.Value(float32(s.Normalized.Y))

	fill := colors.Accent
	if s.Mode == joystick.ModeEditing {
		fill = colors.Yellow
	}
	l.barX.FillColor(fill)
	l.barY.FillColor(fill)
}

func (l *LayerHUD) OnAttach(e *core.Engine) {}

func (l *LayerHUD) OnDetach(e *core.Engine) {
	if l.cancel != nil {
		l.cancel()
	}
}

func (l *LayerHUD) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerHUD) OnRender(e *core.Engine, alpha float64) {
	w, h := e.Window.FramebufferSize()
	l.view.Draw(&ui.Context{
		Viewport: [4]float32{0, 0, float32(w), float32(h)},
		Renderer: e.Renderer,
	})
}

func (l *LayerHUD) OnEvent(e *core.Engine, ev core.Event) bool { return false }
