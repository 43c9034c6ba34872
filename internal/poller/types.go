// internal/poller/types.go
package poller

import "time"

// Event raises IRQ flags on one engine.
// Flags only: which router owns them is decided by the hardware.
type Event struct {
	Engine uint8
	Flags  uint32
}

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	SourceID string
	At       time.Time

	Events []Event
	Err    error // non-nil means the poll cycle failed
}
