package joystick

import (
	"fmt"
	"regexp"
)

// DeviceInfo is what the platform layer knows about the host.
type DeviceInfo struct {
	// TouchCapable is the platform's own capability flag and wins over the
	// heuristics below.
	TouchCapable bool
	UserAgent    string
}

// DevicePolicy decides whether the host should get the mobile layout.
type DevicePolicy struct {
	info     DeviceInfo
	pattern  *regexp.Regexp
	maxWidth float64
}

// NewDevicePolicy compiles pattern (empty disables the user-agent check).
// maxWidth <= 0 disables the narrow-viewport check.
func NewDevicePolicy(info DeviceInfo, pattern string, maxWidth float64) (*DevicePolicy, error) {
	p := &DevicePolicy{info: info, maxWidth: maxWidth}
	if pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("mobile pattern: %w", err)
		}
		p.pattern = re
	}
	return p, nil
}

func (p *DevicePolicy) IsMobile(viewportWidth float64) bool {
	if p.info.TouchCapable {
		return true
	}
	if p.pattern != nil && p.info.UserAgent != "" && p.pattern.MatchString(p.info.UserAgent) {
		return true
	}
	return p.maxWidth > 0 && viewportWidth <= p.maxWidth
}
