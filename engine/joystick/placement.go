package joystick

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Placement is the widget's offset from the left and bottom viewport edges, in px.
type Placement struct {
	Left, Bottom float64
}

// Record is the persisted form of a Placement, CSS-style lengths.
type Record struct {
	Left   string `json:"left"`
	Bottom string `json:"bottom"`
}

// DefaultRecord is used when nothing valid has been stored yet.
var DefaultRecord = Record{Left: "2rem", Bottom: "2rem"}

// Record formats p with px units.
func (p Placement) Record() Record {
	return Record{Left: formatPx(p.Left), Bottom: formatPx(p.Bottom)}
}

// Resolve converts the record into pixels; rem lengths use rootFontSize.
func (r Record) Resolve(rootFontSize float64) (Placement, error) {
	left, err := ParseLength(r.Left, rootFontSize)
	if err != nil {
		return Placement{}, fmt.Errorf("left: %w", err)
	}
	bottom, err := ParseLength(r.Bottom, rootFontSize)
	if err != nil {
		return Placement{}, fmt.Errorf("bottom: %w", err)
	}
	return Placement{Left: left, Bottom: bottom}, nil
}

// ParseLength accepts "<n>px" and "<n>rem".
func ParseLength(s string, rootFontSize float64) (float64, error) {
	s = strings.TrimSpace(s)
	var num string
	scale := 1.0
	switch {
	case strings.HasSuffix(s, "rem"):
		num = strings.TrimSuffix(s, "rem")
		scale = rootFontSize
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	default:
		return 0, fmt.Errorf("unsupported length %q", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, fmt.Errorf("length %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("length %q is not finite", s)
	}
	return v * scale, nil
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// Clamp keeps a widget of the given size fully inside a vw×vh viewport.
// When the viewport is smaller than the widget the axis collapses to 0.
func (p Placement) Clamp(size, vw, vh float64) Placement {
	return Placement{
		Left:   clampRange(p.Left, 0, vw-size),
		Bottom: clampRange(p.Bottom, 0, vh-size),
	}
}

// Bounds is the widget box in client space for a viewport of height vh.
func (p Placement) Bounds(size, vh float64) Rect {
	return Rect{X: p.Left, Y: vh - p.Bottom - size, W: size, H: size}
}

// PlacementAt centres a widget of the given size on a client-space touch point,
// clamped to the viewport. Bottom is measured up from the lower edge.
func PlacementAt(touch Vec2, size, vw, vh float64) Placement {
	return Placement{
		Left:   touch.X - size/2,
		Bottom: vh - touch.Y - size/2,
	}.Clamp(size, vw, vh)
}

func clampRange(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
