package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerTouchSequence(t *testing.T) {
	p := NewPointerTouch()

	_, ok := p.Move(5, 5)
	assert.False(t, ok, "hover is not a touch")
	_, ok = p.Release()
	assert.False(t, ok)

	ev, ok := p.Press(10, 20)
	assert.True(t, ok)
	assert.Equal(t, EventTouch{Phase: TouchStart, Touches: []Touch{{ID: 0, X: 10, Y: 20}}}, ev)
	assert.True(t, p.Down())

	_, ok = p.Press(11, 21)
	assert.False(t, ok, "double press")

	ev, ok = p.Move(30, 40)
	assert.True(t, ok)
	assert.Equal(t, TouchMove, ev.Phase)
	assert.Equal(t, []Touch{{ID: 0, X: 30, Y: 40}}, ev.Touches)

	ev, ok = p.Release()
	assert.True(t, ok)
	assert.Equal(t, EventTouch{Phase: TouchEnd}, ev)
	assert.False(t, p.Down())
}

func TestPointerTouchScale(t *testing.T) {
	p := NewPointerTouch()
	p.SetScale(2, 2)
	ev, _ := p.Press(10, 20)
	assert.Equal(t, Touch{ID: 0, X: 20, Y: 40}, ev.Touches[0])

	p.SetScale(0, 1)
	ev, _ = p.Move(1, 1)
	assert.Equal(t, Touch{ID: 0, X: 2, Y: 2}, ev.Touches[0], "invalid scale is ignored")
}
