// internal/simhw/simhw.go
package simhw

import (
	"time"

	"github.com/tamzrod/pio-irq/pioirq"
)

// LineBase matches RP2040 PIO0_IRQ_0.
const LineBase pioirq.Line = 7

// irqRegMask is the width of an engine's IRQ flag register.
const irqRegMask = 0xff

// DurationWindow is how many recent service durations are kept.
const DurationWindow = 1024

// Stats counts what the simulated interrupt controller did.
type Stats struct {
	Raised   int // flags raised
	Services int // chain runs
	Storms   int // raises still asserted after StormLimit services
	Unrouted int // raises with no enabled source on an enabled line
}

// Hardware simulates PIO engines and their interrupt lines.
// Interrupts are serviced synchronously inside Raise, on the caller's
// goroutine. It is not safe for concurrent use.
type Hardware struct {
	engines    int
	stormLimit int

	flags       [pioirq.MaxEngines]uint32
	inte        [pioirq.MaxEngines][2]uint32
	chains      [pioirq.MaxEngines * 2]pioirq.Chain
	lineEnabled [pioirq.MaxEngines * 2]bool

	stats Stats

	// ring of the last DurationWindow chain run times
	durations [DurationWindow]time.Duration
	durNext   int
	durCount  int
}

// New returns simulated hardware with the given number of engines.
func New(engines, stormLimit int) *Hardware {
	if engines < 1 || engines > pioirq.MaxEngines {
		panic(pioirq.ErrInvalidEngine)
	}
	if stormLimit < 1 {
		stormLimit = 1
	}
	return &Hardware{engines: engines, stormLimit: stormLimit}
}

// ---- pioirq.Platform ----

func (h *Hardware) NumEngines() int       { return h.engines }
func (h *Hardware) LineBase() pioirq.Line { return LineBase }

func (h *Hardware) SetIRQ0SourceEnabled(engine pioirq.Engine, source pioirq.Source, enabled bool) {
	h.setSource(engine, 0, source, enabled)
}

func (h *Hardware) SetIRQ1SourceEnabled(engine pioirq.Engine, source pioirq.Source, enabled bool) {
	h.setSource(engine, 1, source, enabled)
}

func (h *Hardware) ClearInterrupt(engine pioirq.Engine, flag uint32) {
	h.flags[h.engine(engine)] &^= 1 << flag
}

func (h *Hardware) Flags(engine pioirq.Engine) uint32 {
	return h.flags[h.engine(engine)]
}

func (h *Hardware) AddSharedHandler(line pioirq.Line, handler func(), order uint8) {
	if err := h.chains[h.line(line)].Add(handler, order); err != nil {
		panic(err)
	}
}

func (h *Hardware) SetLineEnabled(line pioirq.Line, enabled bool) {
	h.lineEnabled[h.line(line)] = enabled
}

// ---- simulation ----

// Raise sets one IRQ flag on an engine, as a state machine executing
// "irq set" would, and services the engine's lines.
func (h *Hardware) Raise(engine pioirq.Engine, flag uint32) {
	h.RaiseMask(engine, 1<<flag)
}

// RaiseMask sets several IRQ flags at once.
func (h *Hardware) RaiseMask(engine pioirq.Engine, mask uint32) {
	mask &= irqRegMask
	if mask == 0 {
		return
	}
	e := h.engine(engine)
	h.flags[e] |= mask
	h.stats.Raised++

	serviced := false
	for ch := 0; ch < 2; ch++ {
		i := e*2 + ch
		if !h.lineEnabled[i] {
			continue
		}
		for n := 0; h.asserted(e, ch); n++ {
			if n == h.stormLimit {
				h.stats.Storms++
				break
			}
			start := time.Now()
			h.chains[i].Run()
			h.recordDuration(time.Since(start))
			h.stats.Services++
			serviced = true
		}
	}
	if !serviced {
		h.stats.Unrouted++
	}
}

// Pending returns the raised flags of an engine.
func (h *Hardware) Pending(engine pioirq.Engine) uint32 {
	return h.flags[h.engine(engine)]
}

// Stats returns the counters.
func (h *Hardware) Stats() Stats {
	return h.stats
}

// Durations returns the most recent chain run times, oldest first. At most
// DurationWindow samples are kept.
func (h *Hardware) Durations() []time.Duration {
	out := make([]time.Duration, 0, h.durCount)
	start := h.durNext - h.durCount
	if start < 0 {
		start += DurationWindow
	}
	for i := 0; i < h.durCount; i++ {
		out = append(out, h.durations[(start+i)%DurationWindow])
	}
	return out
}

func (h *Hardware) recordDuration(d time.Duration) {
	h.durations[h.durNext] = d
	h.durNext = (h.durNext + 1) % DurationWindow
	if h.durCount < DurationWindow {
		h.durCount++
	}
}

// asserted reports whether an enabled source of the channel sees a raised
// flag. Flag n drives INTE bit SourceInterrupt0+n.
func (h *Hardware) asserted(e, ch int) bool {
	return (h.flags[e]<<pioirq.SourceInterrupt0)&h.inte[e][ch] != 0
}

func (h *Hardware) setSource(engine pioirq.Engine, ch int, source pioirq.Source, enabled bool) {
	e := h.engine(engine)
	if source > 15 {
		panic(pioirq.ErrInvalidSource)
	}
	if enabled {
		h.inte[e][ch] |= 1 << source
	} else {
		h.inte[e][ch] &^= 1 << source
	}
}

func (h *Hardware) engine(engine pioirq.Engine) int {
	if int(engine) >= h.engines {
		panic(pioirq.ErrInvalidEngine)
	}
	return int(engine)
}

func (h *Hardware) line(line pioirq.Line) int {
	i := int(line) - int(LineBase)
	if i < 0 || i >= h.engines*2 {
		panic(pioirq.ErrInvalidLine)
	}
	return i
}
