package joystick

import (
	"testing"

	"go.uber.org/goleak"
)

// The widget is driven entirely from the caller's goroutine.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
