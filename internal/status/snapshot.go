// internal/status/snapshot.go
package status

// Snapshot represents exactly what the writer is allowed to deliver.
// Counters saturate at CounterMax and never wrap.
type Snapshot struct {
	Hits     [SlotHitsCount]uint16
	Services uint16
	Storms   uint16
	Unrouted uint16
}

// Saturate clamps a counter to the register width.
func Saturate(n int) uint16 {
	if n < 0 {
		return 0
	}
	if n > CounterMax {
		return CounterMax
	}
	return uint16(n)
}
