//go:build !darwin && !linux

package activity

// NewMonitor returns the idle monitor for this platform. No idle detection is
// available here, so inactivity handling never triggers.
func NewMonitor() Monitor {
	return NoopMonitor{}
}
