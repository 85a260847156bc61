package scene

import "github.com/hubastard/grove-thumbstick/engine/core"

// Controller2D pans a Camera2D from an analog stick vector and WASD, and
// zooms with the scroll wheel.
type Controller2D struct {
	MoveSpeed float32 // world pixels per second at full deflection
	ZoomSpeed float32
	Camera    *Camera2D

	stickX, stickY float32
}

func NewController2D(cam *Camera2D) *Controller2D {
	return &Controller2D{
		MoveSpeed: 240,
		ZoomSpeed: 1.1,
		Camera:    cam,
	}
}

// SetStick stores the analog vector, each axis in [-1,1], Y down.
func (cc *Controller2D) SetStick(x, y float64) {
	cc.stickX, cc.stickY = clampUnit(float32(x)), clampUnit(float32(y))
}

func (cc *Controller2D) Stick() (x, y float32) { return cc.stickX, cc.stickY }

// Velocity is the pan direction for this tick: the stick vector, replaced by
// the keyboard when any movement key is held.
func (cc *Controller2D) Velocity(in *core.Input) (vx, vy float32) {
	vx, vy = cc.stickX, cc.stickY
	if in == nil {
		return vx, vy
	}
	var kx, ky float32
	if in.IsKeyDown(core.KeyW) {
		ky--
	}
	if in.IsKeyDown(core.KeyS) {
		ky++
	}
	if in.IsKeyDown(core.KeyA) {
		kx--
	}
	if in.IsKeyDown(core.KeyD) {
		kx++
	}
	if kx != 0 || ky != 0 {
		return kx, ky
	}
	return vx, vy
}

func (cc *Controller2D) Update(in *core.Input, dt float32) {
	vx, vy := cc.Velocity(in)
	speed := cc.MoveSpeed * dt / cc.Camera.Zoom
	cc.Camera.Move(vx*speed, vy*speed)
}

// HandleEvent zooms on scroll. It reports whether the event was used.
func (cc *Controller2D) HandleEvent(ev core.Event) bool {
	s, ok := ev.(core.EventScroll)
	if !ok || s.Yoff == 0 {
		return false
	}
	if s.Yoff > 0 {
		cc.Camera.SetZoom(cc.Camera.Zoom * cc.ZoomSpeed)
	} else {
		cc.Camera.SetZoom(cc.Camera.Zoom / cc.ZoomSpeed)
	}
	return true
}

func clampUnit(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
