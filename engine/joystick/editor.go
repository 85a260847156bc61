package joystick

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/hubastard/grove-thumbstick/engine/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Editor owns the widget placement: loading it, dragging it and writing every
// change back to the store.
type Editor struct {
	store        storage.Store
	key          string
	size         float64
	rootFontSize float64
	log          *zap.Logger

	stored    Placement // last loaded or written value
	placement Placement // stored, fitted to the current viewport
	dragging  bool
}

func NewEditor(store storage.Store, key string, size, rootFontSize float64, log *zap.Logger) *Editor {
	if store == nil {
		store = storage.NewMemoryStore()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Editor{store: store, key: key, size: size, rootFontSize: rootFontSize, log: log}
}

// Load reads the persisted placement. A missing or malformed record yields
// the default placement; errors are logged, never returned.
func (e *Editor) Load() Placement {
	e.stored = e.read()
	e.placement = e.stored
	return e.placement
}

func (e *Editor) read() Placement {
	def, _ := DefaultRecord.Resolve(e.rootFontSize)

	raw, err := e.store.Get(e.key)
	if errors.Is(err, storage.ErrNotFound) {
		return def
	}
	if err != nil {
		e.log.Warn("placement read failed, using default", zap.String("key", e.key), zap.Error(err))
		return def
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		e.log.Warn("placement record malformed, using default", zap.String("key", e.key), zap.Error(err))
		return def
	}
	p, err := rec.Resolve(e.rootFontSize)
	if err != nil {
		e.log.Warn("placement record malformed, using default", zap.String("key", e.key), zap.Error(err))
		return def
	}
	return p
}

// Begin starts a drag at touch and applies it immediately.
func (e *Editor) Begin(touch Vec2, vw, vh float64) Placement {
	e.dragging = true
	p, _ := e.Drag(touch, vw, vh)
	return p
}

// Drag moves the widget under touch and persists the result. It reports
// false when no drag is in progress.
func (e *Editor) Drag(touch Vec2, vw, vh float64) (Placement, bool) {
	if !e.dragging {
		return e.placement, false
	}
	e.placement = PlacementAt(touch, e.size, vw, vh)
	e.stored = e.placement
	e.persist(e.placement)
	return e.placement, true
}

func (e *Editor) End() { e.dragging = false }

// Fit re-clamps the stored placement into a new viewport without writing it.
func (e *Editor) Fit(vw, vh float64) Placement {
	e.placement = e.stored.Clamp(e.size, vw, vh)
	return e.placement
}

// Reset forgets the stored placement and returns the default.
func (e *Editor) Reset() (Placement, error) {
	err := e.store.Delete(e.key)
	e.stored, _ = DefaultRecord.Resolve(e.rootFontSize)
	e.placement = e.stored
	return e.placement, err
}

func (e *Editor) Placement() Placement { return e.placement }
func (e *Editor) Dragging() bool       { return e.dragging }
func (e *Editor) Size() float64        { return e.size }

func (e *Editor) persist(p Placement) {
	b, err := json.Marshal(p.Record())
	if err == nil {
		err = e.store.Set(e.key, b)
	}
	if err != nil {
		e.log.Warn("placement write failed", zap.String("key", e.key), zap.Error(err))
		return
	}
	e.log.Debug("placement saved", zap.String("key", e.key), zap.Float64("left", p.Left), zap.Float64("bottom", p.Bottom))
}
