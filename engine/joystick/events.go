package joystick

import "github.com/google/uuid"

// EventKind distinguishes movement samples from the end of a gesture.
type EventKind int

const (
	// EventMove carries the normalized vector for one input sample.
	EventMove EventKind = iota
	// EventRelease signals that the tracked touch was lifted.
	EventRelease
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers. X and Y are only meaningful for EventMove.
type Event struct {
	Kind EventKind
	X, Y float64
}

type Handler func(Event)

type subscriber struct {
	id string
	h  Handler
}

// Bus delivers events synchronously, in subscription order.
type Bus struct {
	subs []subscriber
}

func NewBus() *Bus { return &Bus{} }

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	id  string
	bus *Bus
}

func (s *Subscription) ID() string { return s.id }

// Cancel removes the handler; calling it twice is harmless.
func (s *Subscription) Cancel() {
	if s.bus == nil {
		return
	}
	s.bus.remove(s.id)
	s.bus = nil
}

func (b *Bus) Subscribe(h Handler) *Subscription {
	id := uuid.NewString()
	b.subs = append(b.subs, subscriber{id: id, h: h})
	return &Subscription{id: id, bus: b}
}

// Publish calls every handler registered at the time of the call.
func (b *Bus) Publish(e Event) {
	if len(b.subs) == 0 {
		return
	}
	snapshot := append([]subscriber(nil), b.subs...)
	for _, s := range snapshot {
		s.h(e)
	}
}

func (b *Bus) Len() int { return len(b.subs) }

// Clear drops every subscriber.
func (b *Bus) Clear() { b.subs = nil }

func (b *Bus) remove(id string) {
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}
