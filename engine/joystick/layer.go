package joystick

import (
	"go.uber.org/zap"

	"github.com/hubastard/grove-thumbstick/engine/core"
	"github.com/hubastard/grove-thumbstick/engine/ui"
)

const (
	toggleSize = 28
	toggleGap  = 8
)

// WindowSurface tracks the framebuffer size reported by the engine.
type WindowSurface struct{ w, h float64 }

func NewWindowSurface(w, h int) *WindowSurface {
	return &WindowSurface{w: float64(w), h: float64(h)}
}

func (s *WindowSurface) Viewport() (float64, float64) { return s.w, s.h }
func (s *WindowSurface) SetSize(w, h int)             { s.w, s.h = float64(w), float64(h) }

// Layer mounts a Joystick into the engine: it routes touch, resize and key
// events to it and draws the widget plus its edit toggle.
type Layer struct {
	js      *Joystick
	surface *WindowSurface
	stick   *ui.UIThumbstick
	toggle  *ui.UIButton
	log     *zap.Logger
}

func NewLayer(js *Joystick, surface *WindowSurface, log *zap.Logger) *Layer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Layer{
		js:      js,
		surface: surface,
		stick:   ui.Thumbstick(float32(js.Options().HandleSize)),
		toggle:  ui.Button(),
		log:     log,
	}
}

func (l *Layer) Joystick() *Joystick { return l.js }

func (l *Layer) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.surface.SetSize(w, h)
	l.js.Resize()
}

func (l *Layer) OnDetach(e *core.Engine) {
	l.js.Close()
	l.log.Debug("joystick layer detached")
}

func (l *Layer) OnUpdate(e *core.Engine, dt float64) {}

func (l *Layer) OnRender(e *core.Engine, alpha float64) {
	s := l.js.State()
	if !s.Visible {
		return
	}
	l.layout(s)
	vw, vh := l.surface.Viewport()
	ctx := &ui.Context{
		Viewport: [4]float32{0, 0, float32(vw), float32(vh)},
		Renderer: e.Renderer,
	}
	l.stick.Draw(ctx)
	l.toggle.Draw(ctx)
}

func (l *Layer) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventTouch:
		return l.handleTouch(v)
	case core.EventResize:
		l.surface.SetSize(v.W, v.H)
		l.js.Resize()
	case core.EventKey:
		if v.Down && v.Key == core.KeyE {
			l.js.ToggleEditing()
			return true
		}
	}
	return false
}

func (l *Layer) handleTouch(ev core.EventTouch) bool {
	switch ev.Phase {
	case core.TouchStart:
		if len(ev.Touches) > 0 && l.js.Visible() {
			l.layout(l.js.State())
			t := ev.Touches[0]
			if l.toggle.Hit(float32(t.X), float32(t.Y)) {
				l.js.ToggleEditing()
				return true
			}
		}
		return l.js.TouchStart(ev.Touches)
	case core.TouchMove:
		return l.js.TouchMove(ev.Touches)
	case core.TouchEnd:
		return l.js.TouchEnd(ev.Touches)
	}
	return false
}

func (l *Layer) layout(s State) {
	b := s.Bounds
	l.stick.
		Position(float32(b.X), float32(b.Y)).
		Size(float32(b.W), float32(b.H)).
		Offset(s.Offset.XY()).
		Editing(s.Mode == ModeEditing)

	tr := ToggleRect(b)
	l.toggle.
		Position(float32(tr.X), float32(tr.Y)).
		Size(float32(tr.W), float32(tr.H)).
		Active(s.Mode == ModeEditing)
}

// ToggleRect places the edit toggle above the widget's right edge, or below
// it when there is no room above.
func ToggleRect(b Rect) Rect {
	r := Rect{X: b.X + b.W - toggleSize, Y: b.Y - toggleGap - toggleSize, W: toggleSize, H: toggleSize}
	if r.Y < 0 {
		r.Y = b.Y + b.H + toggleGap
	}
	return r
}
