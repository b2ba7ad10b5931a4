//go:build darwin

package activity

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"time"
)

// HIDIdleTime is reported by IOKit in nanoseconds since the last input event.
var hidIdleRe = regexp.MustCompile(`HIDIdleTime"\s*=\s*([0-9]+)`)

// ioregMonitor reads idle time from `ioreg -c IOHIDSystem`.
type ioregMonitor struct{}

// NewMonitor returns the idle monitor for this platform.
func NewMonitor() Monitor {
	return ioregMonitor{}
}

// IdleTime parses HIDIdleTime from the IOHIDSystem registry entry.
func (ioregMonitor) IdleTime() (time.Duration, error) {
	out, err := exec.Command("/usr/sbin/ioreg", "-c", "IOHIDSystem").Output()
	if err != nil {
		return 0, fmt.Errorf("running ioreg: %w", err)
	}

	match := hidIdleRe.FindSubmatch(out)
	if match == nil {
		return 0, fmt.Errorf("HIDIdleTime not found in ioreg output")
	}

	ns, err := strconv.ParseInt(string(match[1]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing HIDIdleTime: %w", err)
	}

	return time.Duration(ns) * time.Nanosecond, nil
}
