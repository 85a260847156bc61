package core

import (
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error), log *zap.Logger) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	if log == nil {
		log = zap.NewNop()
	}

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	if d, ok := win.(interface{ Destroy() }); ok {
		defer d.Destroy()
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := NewEngine(win, rend, log)
	win.SetEventCallback(func(ev Event) {
		eng.Dispatch(app, ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	app.OnStart(eng)
	log.Info("engine started", zap.Int("width", w), zap.Int("height", h), zap.Bool("touch", win.TouchCapable()))

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			eng.Update(app, float64(tick)/float64(time.Second))
			accum -= tick
			steps++
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		eng.Render(app, alpha)

		win.SwapBuffers()
	}

	eng.Shutdown(app)
	log.Info("engine exit", zap.Duration("uptime", eng.Uptime()))
	return nil
}

// NewEngine builds an Engine without starting a loop; useful for headless wiring.
func NewEngine(win Window, rend Renderer, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{Window: win, Renderer: rend, Input: NewInput(), Log: log, start: time.Now()}
}

// PushLayer attaches l and puts it on top of the stack.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// Dispatch feeds ev to the input state, then to layers top-down, then to the app
// unless a layer handled it.
func (e *Engine) Dispatch(app App, ev Event) {
	e.Input.Handle(ev)
	if _, ok := ev.(EventCloseRequested); ok && e.Window != nil {
		e.Window.RequestClose()
	}
	handled := false
	e.Layers.ForEachReverse(func(l Layer) bool {
		handled = l.OnEvent(e, ev)
		return handled
	})
	if !handled && app != nil {
		app.OnEvent(e, ev)
	}
}

func (e *Engine) Update(app App, dt float64) {
	if app != nil {
		app.OnUpdate(e, dt)
	}
	e.Layers.ForEach(func(l Layer) { l.OnUpdate(e, dt) })
}

func (e *Engine) Render(app App, alpha float64) {
	if app != nil {
		app.OnRender(e, alpha)
	}
	e.Layers.ForEach(func(l Layer) { l.OnRender(e, alpha) })
}

// Shutdown detaches layers top-down and notifies the app.
func (e *Engine) Shutdown(app App) {
	for {
		l, ok := e.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(e)
	}
	if app != nil {
		app.OnShutdown(e)
	}
}
