package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBA8(t *testing.T) {
	assert.Equal(t, Color{1, 0, 0.2, 0.5}, RGBA8(255, 0, 51, 0.5))
}

func TestWithAlphaAndScale(t *testing.T) {
	c := Gray.WithAlpha(0.3)
	assert.Equal(t, Color{0.5, 0.5, 0.5, 0.3}, c)
	assert.Equal(t, Gray, Gray.WithAlpha(1), "receiver is a copy")

	assert.Equal(t, Color{1, 1, 1, 0.3}, c.Scale(4))
	assert.Equal(t, Color{0.25, 0.25, 0.25, 0.3}, c.Scale(0.5))
}
