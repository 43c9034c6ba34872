// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/pio-irq/internal/status"
)

// statusWriter is the concrete implementation used by the simulator.
type statusWriter struct {
	plan StatusPlan
	cli  blockClient

	needFull bool
	last     []uint16
	nameRegs []uint16
}

// NewStatusWriter builds a status writer for plan over cli.
func NewStatusWriter(plan StatusPlan, cli blockClient) StatusWriter {
	return &statusWriter{
		plan:     plan,
		cli:      cli,
		needFull: true, // full re-assert on first write
		nameRegs: status.EncodeDeviceName(plan.DeviceName),
	}
}

// WriteStatus delivers a snapshot into status memory.
// The first write, and the first write after any failure, re-asserts the
// full block. Otherwise only changed runs of registers are written.
func (sw *statusWriter) WriteStatus(s status.Snapshot) error {
	if sw.cli == nil {
		return fmt.Errorf("status writer: missing client for endpoint %s", sw.plan.Endpoint)
	}

	regs := status.Encode(s)
	copy(regs[status.SlotDeviceNameStart:], sw.nameRegs)

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if sw.needFull {
		if err := sw.cli.WriteSlots(0, regs); err != nil {
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}
		sw.needFull = false
		sw.last = regs
		return nil
	}

	var errs []string

	for _, r := range changedRuns(sw.last, regs) {
		if err := sw.cli.WriteSlots(r.start, regs[r.start:r.end]); err != nil {
			errs = append(errs, fmt.Sprintf("slots %d-%d write failed: %v", r.start, r.end-1, err))
			continue
		}
		copy(sw.last[r.start:r.end], regs[r.start:r.end])
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt; re-assert on next call.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}

type run struct {
	start, end int // [start, end)
}

// changedRuns returns the contiguous ranges where next differs from prev.
func changedRuns(prev, next []uint16) []run {
	var out []run
	for i := 0; i < len(next); i++ {
		if i < len(prev) && prev[i] == next[i] {
			continue
		}
		j := i + 1
		for j < len(next) && (j >= len(prev) || prev[j] != next[j]) {
			j++
		}
		out = append(out, run{start: i, end: j})
		i = j
	}
	return out
}
