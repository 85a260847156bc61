package main

import (
	"go.uber.org/zap"

	"github.com/hubastard/grove-thumbstick/engine/config"
	"github.com/hubastard/grove-thumbstick/engine/core"
	"github.com/hubastard/grove-thumbstick/engine/joystick"
	"github.com/hubastard/grove-thumbstick/engine/storage"
)

type App struct {
	cfg   *config.Config
	store storage.Store
	log   *zap.Logger

	js    *joystick.Joystick
	world *LayerMap
	hud   *LayerHUD
	sub   *joystick.Subscription
}

func (a *App) OnStart(e *core.Engine) {
	opts := joystickOptions(a.cfg.Joystick)
	if e.Window.TouchCapable() {
		opts.Device.TouchCapable = true
	}

	surface := joystick.NewWindowSurface(e.Window.FramebufferSize())
	js, err := joystick.New(surface, a.store, opts, a.log.Named("joystick"))
	if err != nil {
		a.log.Error("joystick disabled", zap.Error(err))
		e.Window.RequestClose()
		return
	}
	a.js = js

	a.world = NewLayerMap(a.cfg.Joystick.MoveSpeedPixels)
	a.sub = js.Subscribe(a.world.OnStick)
	a.hud = NewLayerHUD(js)

	e.PushLayer(a.world)
	e.PushLayer(joystick.NewLayer(js, surface, a.log.Named("joystick")))
	e.PushLayer(a.hud)
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down {
		return
	}
	switch k.Key {
	case core.KeyEscape:
		e.Window.RequestClose()
	case core.KeyR:
		if a.js == nil {
			return
		}
		if err := a.js.ResetPlacement(); err != nil {
			a.log.Warn("reset placement failed", zap.Error(err))
			return
		}
		a.log.Info("placement reset")
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	if a.sub != nil {
		a.sub.Cancel()
	}
}

// joystickOptions maps the joystick section of the config onto the widget.
func joystickOptions(c config.JoystickConfig) joystick.Options {
	return joystick.Options{
		MaxRadius:    float64(c.MaxRadius),
		Size:         float64(c.Size),
		HandleSize:   float64(c.HandleSize),
		RootFontSize: float64(c.RootFontSize),
		StorageKey:   c.StorageKey,
		Device: joystick.DeviceInfo{
			TouchCapable: c.TouchCapable,
			UserAgent:    c.UserAgent,
		},
		MobilePattern:  c.MobilePattern,
		MobileMaxWidth: float64(c.MobileMaxWidth),
	}
}
