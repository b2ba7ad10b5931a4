//go:build linux

package activity

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// xprintidleMonitor reads idle time from the xprintidle utility, which
// reports milliseconds since the last X11 input event.
type xprintidleMonitor struct{}

// NewMonitor returns the idle monitor for this platform. When xprintidle is
// not installed (or no X session is available), idle detection degrades to a
// no-op and inactivity handling never triggers.
func NewMonitor() Monitor {
	if _, err := exec.LookPath("xprintidle"); err != nil {
		return NoopMonitor{}
	}
	return xprintidleMonitor{}
}

// IdleTime runs xprintidle and converts its output to a duration.
func (xprintidleMonitor) IdleTime() (time.Duration, error) {
	out, err := exec.Command("xprintidle").Output()
	if err != nil {
		return 0, fmt.Errorf("running xprintidle: %w", err)
	}

	ms, err := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing xprintidle output: %w", err)
	}

	return time.Duration(ms) * time.Millisecond, nil
}
