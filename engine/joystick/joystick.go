// Package joystick implements a virtual on-screen thumbstick: touch drags
// over the widget become a normalized movement vector published on a Bus,
// and an edit mode lets the user drag the widget itself to a new, persisted
// position.
package joystick

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/hubastard/grove-thumbstick/engine/core"
	"github.com/hubastard/grove-thumbstick/engine/storage"
)

// Mode is the widget's interaction state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeTracking
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeTracking:
		return "tracking"
	case ModeEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// Surface is the rendering layer the joystick draws into.
type Surface interface {
	Viewport() (w, h float64)
}

// BoundsReporter may be implemented by a Surface that lays the widget out
// itself. Without it the box is derived from the placement.
type BoundsReporter interface {
	Bounds() Rect
}

type Options struct {
	MaxRadius      float64
	Size           float64
	HandleSize     float64
	RootFontSize   float64
	StorageKey     string
	Device         DeviceInfo
	MobilePattern  string
	MobileMaxWidth float64
}

// DefaultMobilePattern matches the usual handheld user-agent tokens.
const DefaultMobilePattern = `(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`

func DefaultOptions() Options {
	return Options{
		MaxRadius:      35,
		Size:           100,
		HandleSize:     40,
		RootFontSize:   16,
		StorageKey:     "joystickPosition",
		MobilePattern:  DefaultMobilePattern,
		MobileMaxWidth: 768,
	}
}

// State is the observable snapshot handed to watchers.
type State struct {
	Mode       Mode
	Offset     Vec2
	Normalized Vec2
	Placement  Placement
	Bounds     Rect
	Visible    bool
	Dragging   bool
}

type watcher struct {
	id int
	fn func(State)
}

// Joystick is the single owned widget instance.
type Joystick struct {
	opts    Options
	surface Surface
	tracker *Tracker
	editor  *Editor
	policy  *DevicePolicy
	bus     *Bus
	log     *zap.Logger

	mode     Mode
	mobile   bool
	closed   bool
	last     State
	watchers []watcher
	nextID   int
}

// New loads the persisted placement and evaluates the device policy once.
func New(surface Surface, store storage.Store, opts Options, log *zap.Logger) (*Joystick, error) {
	if surface == nil {
		return nil, fmt.Errorf("joystick: nil surface")
	}
	if opts.MaxRadius <= 0 || opts.Size <= 0 {
		return nil, fmt.Errorf("joystick: max radius and size must be positive")
	}
	if log == nil {
		log = zap.NewNop()
	}
	policy, err := NewDevicePolicy(opts.Device, opts.MobilePattern, opts.MobileMaxWidth)
	if err != nil {
		return nil, fmt.Errorf("joystick: %w", err)
	}
	j := &Joystick{
		opts:    opts,
		surface: surface,
		tracker: NewTracker(opts.MaxRadius),
		editor:  NewEditor(store, opts.StorageKey, opts.Size, opts.RootFontSize, log),
		policy:  policy,
		bus:     NewBus(),
		log:     log,
	}
	j.editor.Load()
	vw, vh := surface.Viewport()
	j.editor.Fit(vw, vh)
	j.mobile = policy.IsMobile(vw)
	j.last = j.snapshot()

	log.Debug("joystick ready",
		zap.Float64("left", j.editor.Placement().Left),
		zap.Float64("bottom", j.editor.Placement().Bottom),
		zap.Bool("mobile", j.mobile))
	return j, nil
}

func (j *Joystick) Events() *Bus                      { return j.bus }
func (j *Joystick) Mode() Mode                        { return j.mode }
func (j *Joystick) Options() Options                  { return j.opts }
func (j *Joystick) State() State                      { return j.snapshot() }
func (j *Joystick) Placement() Placement              { return j.editor.Placement() }
func (j *Joystick) Visible() bool                     { return j.mobile || j.mode == ModeEditing }
func (j *Joystick) Subscribe(h Handler) *Subscription { return j.bus.Subscribe(h) }

// Bounds is the widget box in client space.
func (j *Joystick) Bounds() Rect {
	if br, ok := j.surface.(BoundsReporter); ok {
		return br.Bounds()
	}
	_, vh := j.surface.Viewport()
	return j.editor.Placement().Bounds(j.opts.Size, vh)
}

// Watch registers fn to run after every state change. The returned func
// unregisters it.
func (j *Joystick) Watch(fn func(State)) (cancel func()) {
	j.nextID++
	id := j.nextID
	j.watchers = append(j.watchers, watcher{id: id, fn: fn})
	return func() {
		for i, w := range j.watchers {
			if w.id == id {
				j.watchers = append(j.watchers[:i], j.watchers[i+1:]...)
				return
			}
		}
	}
}

// TouchStart handles the first sample of a touch over the widget. It reports
// whether the sample was consumed.
func (j *Joystick) TouchStart(touches []core.Touch) bool {
	if j.closed || len(touches) == 0 || !j.Visible() {
		return false
	}
	p, ok := touchPoint(touches[0])
	if !ok {
		return false
	}
	b := j.Bounds()
	if !b.Contains(p) {
		return false
	}

	if j.mode == ModeEditing {
		vw, vh := j.surface.Viewport()
		j.editor.Begin(p, vw, vh)
		j.notify()
		return true
	}

	j.tracker.Start(b.Center(), p)
	j.setMode(ModeTracking)
	j.emitMove()
	j.notify()
	return true
}

// TouchMove follows the first touch of the sample.
func (j *Joystick) TouchMove(touches []core.Touch) bool {
	if j.closed || len(touches) == 0 {
		return false
	}
	p, ok := touchPoint(touches[0])
	if !ok {
		return false
	}
	switch j.mode {
	case ModeTracking:
		if _, ok := j.tracker.Move(p); !ok {
			return false
		}
		j.emitMove()
		j.notify()
		return true
	case ModeEditing:
		vw, vh := j.surface.Viewport()
		if _, ok := j.editor.Drag(p, vw, vh); !ok {
			return false
		}
		j.notify()
		return true
	}
	return false
}

// TouchEnd finishes the current gesture or drag. The touch list is not read.
func (j *Joystick) TouchEnd(_ []core.Touch) bool {
	if j.closed {
		return false
	}
	switch j.mode {
	case ModeTracking:
		j.endGesture()
		j.notify()
		return true
	case ModeEditing:
		if !j.editor.Dragging() {
			return false
		}
		j.editor.End()
		j.notify()
		return true
	}
	return false
}

// ToggleEditing enters or leaves edit mode. An active gesture is released first.
func (j *Joystick) ToggleEditing() {
	j.SetEditing(j.mode != ModeEditing)
}

func (j *Joystick) SetEditing(on bool) {
	if j.closed || on == (j.mode == ModeEditing) {
		return
	}
	if on {
		if j.mode == ModeTracking {
			j.endGesture()
		}
		j.setMode(ModeEditing)
	} else {
		j.editor.End()
		j.setMode(ModeIdle)
	}
	j.notify()
}

// Resize re-runs device detection and fits the placement into the new
// viewport. An in-flight gesture keeps its anchor.
func (j *Joystick) Resize() {
	if j.closed {
		return
	}
	vw, vh := j.surface.Viewport()
	mobile := j.policy.IsMobile(vw)
	if mobile != j.mobile {
		j.log.Debug("joystick device class changed", zap.Bool("mobile", mobile), zap.Float64("viewport_width", vw))
	}
	j.mobile = mobile
	j.editor.Fit(vw, vh)
	j.notify()
}

// ResetPlacement drops the stored placement and returns to the default.
func (j *Joystick) ResetPlacement() error {
	_, err := j.editor.Reset()
	vw, vh := j.surface.Viewport()
	j.editor.Fit(vw, vh)
	j.notify()
	return err
}

// Close unregisters every subscriber and watcher; later input is ignored.
func (j *Joystick) Close() {
	if j.closed {
		return
	}
	j.bus.Clear()
	j.watchers = nil
	j.tracker.End()
	j.editor.End()
	j.mode = ModeIdle
	j.closed = true
}

func (j *Joystick) endGesture() {
	if !j.tracker.End() {
		return
	}
	j.setMode(ModeIdle)
	j.bus.Publish(Event{Kind: EventMove})
	j.bus.Publish(Event{Kind: EventRelease})
}

func (j *Joystick) emitMove() {
	n := j.tracker.Normalized()
	j.bus.Publish(Event{Kind: EventMove, X: n.X, Y: n.Y})
}

func (j *Joystick) setMode(m Mode) {
	if m == j.mode {
		return
	}
	j.log.Debug("joystick mode", zap.Stringer("from", j.mode), zap.Stringer("to", m))
	j.mode = m
}

func (j *Joystick) snapshot() State {
	return State{
		Mode:       j.mode,
		Offset:     j.tracker.Offset(),
		Normalized: j.tracker.Normalized(),
		Placement:  j.editor.Placement(),
		Bounds:     j.Bounds(),
		Visible:    j.Visible(),
		Dragging:   j.editor.Dragging(),
	}
}

func (j *Joystick) notify() {
	s := j.snapshot()
	if s == j.last {
		return
	}
	j.last = s
	for _, w := range append([]watcher(nil), j.watchers...) {
		w.fn(s)
	}
}

// touchPoint rejects samples with NaN or infinite coordinates.
func touchPoint(t core.Touch) (Vec2, bool) {
	if !finite(t.X) || !finite(t.Y) {
		return Vec2{}, false
	}
	return Vec2{X: t.X, Y: t.Y}, true
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
