// internal/writer/types.go
package writer

import "github.com/tamzrod/pio-irq/internal/status"

// StatusPlan names one simulator's status block. Where the block lives
// (unit, base slot) belongs to the block client.
type StatusPlan struct {
	Endpoint   string
	DeviceName string
}

// StatusWriter is the delivery-only contract for dispatch status.
// It receives a snapshot and writes it verbatim.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// blockClient is the exact contract the writer uses: slot-relative writes
// into one status block.
type blockClient interface {
	WriteSlots(slot int, regs []uint16) error
}
