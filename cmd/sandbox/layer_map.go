package main

import (
	"math"

	"github.com/hubastard/grove-thumbstick/engine/colors"
	"github.com/hubastard/grove-thumbstick/engine/core"
	"github.com/hubastard/grove-thumbstick/engine/joystick"
	"github.com/hubastard/grove-thumbstick/engine/scene"
)

const tileSize = 64

var (
	gridColor   = colors.White.WithAlpha(0.06)
	axisColor   = colors.White.WithAlpha(0.2)
	playerColor = colors.RGBA8(255, 196, 64, 1)
)

// LayerMap is a grid world panned by the thumbstick (or WASD).
type LayerMap struct {
	cam  *scene.Camera2D
	ctrl *scene.Controller2D
	// Pan speed in pixels per second at zoom 1.
	speed float32
}

func NewLayerMap(speed float32) *LayerMap {
	return &LayerMap{speed: speed}
}

// OnStick receives joystick events; a release stops the camera.
func (l *LayerMap) OnStick(ev joystick.Event) {
	if l.ctrl == nil {
		return
	}
	switch ev.Kind {
	case joystick.EventMove:
		l.ctrl.SetStick(ev.X, ev.Y)
	case joystick.EventRelease:
		l.ctrl.SetStick(0, 0)
	}
}

func (l *LayerMap) OnAttach(e *core.Engine) {
	// Camera sized to framebuffer
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewCamera2D(w, h)
	l.ctrl = scene.NewController2D(l.cam)
	if l.speed > 0 {
		l.ctrl.MoveSpeed = l.speed
	}
}

func (l *LayerMap) OnDetach(e *core.Engine) {}

func (l *LayerMap) OnUpdate(e *core.Engine, dt float64) {
	l.ctrl.Update(e.Input, float32(dt))
}

func (l *LayerMap) OnRender(e *core.Engine, alpha float64) {
	r := e.Renderer
	vw, vh := l.cam.Viewport()
	x0, y0, w, h := l.cam.VisibleRect()

	step := float32(tileSize)
	for step*l.cam.Zoom < 8 {
		step *= 4
	}
	for gx := float32(math.Floor(float64(x0/step))) * step; gx <= x0+w; gx += step {
		sx, _ := l.cam.WorldToScreen(gx, 0)
		c := gridColor
		if gx == 0 {
			c = axisColor
		}
		r.DrawRect(sx, 0, 1, vh, c)
	}
	for gy := float32(math.Floor(float64(y0/step))) * step; gy <= y0+h; gy += step {
		_, sy := l.cam.WorldToScreen(0, gy)
		c := gridColor
		if gy == 0 {
			c = axisColor
		}
		r.DrawRect(0, sy, vw, 1, c)
	}

	// The player is wherever the camera looks.
	r.DrawCircle(vw/2, vh/2, 10, playerColor)
}

func (l *LayerMap) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventResize:
		l.cam.SetViewportPixels(v.W, v.H)
	case core.EventScroll:
		return l.ctrl.HandleEvent(ev)
	}
	return false
}
