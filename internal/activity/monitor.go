package activity

import (
	"time"
)

// Monitor reports how long the user has been idle, measured as the time since
// the last detected input. Implementations are platform-specific; a platform
// without idle detection uses NoopMonitor, which reports no idle time so
// inactivity handling simply never triggers.
type Monitor interface {
	IdleTime() (time.Duration, error)
}

// NoopMonitor is a Monitor for platforms without idle detection.
type NoopMonitor struct{}

// IdleTime always reports zero idle time.
func (NoopMonitor) IdleTime() (time.Duration, error) {
	return 0, nil
}
