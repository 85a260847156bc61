package joystick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	b := NewBus()
	var got []string
	b.Subscribe(func(e Event) { got = append(got, "a:"+e.Kind.String()) })
	b.Subscribe(func(e Event) { got = append(got, "b:"+e.Kind.String()) })

	b.Publish(Event{Kind: EventMove, X: 1})
	b.Publish(Event{Kind: EventRelease})

	assert.Equal(t, []string{"a:move", "b:move", "a:release", "b:release"}, got)
}

func TestSubscriptionCancel(t *testing.T) {
	b := NewBus()
	calls := 0
	s1 := b.Subscribe(func(Event) { calls++ })
	s2 := b.Subscribe(func(Event) { calls += 10 })
	require.NotEqual(t, s1.ID(), s2.ID())

	s1.Cancel()
	s1.Cancel()
	b.Publish(Event{})
	assert.Equal(t, 10, calls)
	assert.Equal(t, 1, b.Len())
}

func TestCancelDuringPublish(t *testing.T) {
	b := NewBus()
	var sub *Subscription
	calls := 0
	sub = b.Subscribe(func(Event) {
		calls++
		sub.Cancel()
	})
	later := 0
	b.Subscribe(func(Event) { later++ })

	b.Publish(Event{})
	b.Publish(Event{})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, later)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "unknown", EventKind(9).String())
}
