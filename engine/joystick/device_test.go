package joystick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevicePolicy(t *testing.T) {
	pattern := DefaultOptions().MobilePattern
	cases := []struct {
		name  string
		info  DeviceInfo
		width float64
		want  bool
	}{
		{"capability flag wins", DeviceInfo{TouchCapable: true}, 1920, true},
		{"android agent", DeviceInfo{UserAgent: "Mozilla/5.0 (Linux; Android 14; Pixel 8)"}, 1920, true},
		{"iphone agent", DeviceInfo{UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"}, 1920, true},
		{"desktop agent wide", DeviceInfo{UserAgent: "Mozilla/5.0 (X11; Linux x86_64)"}, 1920, false},
		{"narrow viewport", DeviceInfo{}, 768, true},
		{"just over the breakpoint", DeviceInfo{}, 769, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewDevicePolicy(tc.info, pattern, 768)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.IsMobile(tc.width))
		})
	}
}

func TestDevicePolicyDisabledChecks(t *testing.T) {
	p, err := NewDevicePolicy(DeviceInfo{UserAgent: "Android"}, "", 0)
	require.NoError(t, err)
	assert.False(t, p.IsMobile(100))
}

func TestDevicePolicyBadPattern(t *testing.T) {
	_, err := NewDevicePolicy(DeviceInfo{}, "(", 0)
	assert.Error(t, err)
}
