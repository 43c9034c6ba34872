// pioirq/platform.go
package pioirq

// MaxEngines is the largest number of PIO engines on any supported chip.
const MaxEngines = 3

// Engine is the ordinal of a PIO engine (PIO0 = 0, PIO1 = 1, ...).
type Engine uint8

// Channel selects one of the two interrupt outputs of an engine.
type Channel uint8

const (
	Channel0 Channel = 0
	Channel1 Channel = 1
)

// Line is an interrupt controller line number.
type Line uint16

// Source is an interrupt source bit in an engine's INTE register.
type Source uint8

// SourceInterrupt0 is the INTE source of state machine IRQ flag 0. Flag n
// is SourceInterrupt0 + n.
const SourceInterrupt0 Source = 8

// DefaultSharedOrder is the order priority used when installing the
// trampoline as a shared handler.
const DefaultSharedOrder uint8 = 0x80

// Platform is the hardware layer a Router drives.
// Flags, ClearInterrupt and the installed handlers are used from
// interrupt context and must not block.
type Platform interface {
	// NumEngines reports how many PIO engines the chip has.
	NumEngines() int
	// LineBase is the line of engine 0, channel 0. Engine e channel c is
	// LineBase + 2*e + c.
	LineBase() Line

	SetIRQ0SourceEnabled(engine Engine, source Source, enabled bool)
	SetIRQ1SourceEnabled(engine Engine, source Source, enabled bool)

	// ClearInterrupt clears one state machine IRQ flag.
	ClearInterrupt(engine Engine, flag uint32)
	// Flags returns the raw raised IRQ flags of an engine.
	Flags(engine Engine) uint32

	AddSharedHandler(line Line, handler func(), order uint8)
	SetLineEnabled(line Line, enabled bool)
}

// InterruptSource returns the INTE source for a relative IRQ flag.
func InterruptSource(flag uint32) Source {
	return SourceInterrupt0 + Source(flag)
}

// LineFor computes the interrupt line of an engine channel.
func LineFor(p Platform, engine Engine, channel Channel) Line {
	return p.LineBase() + Line(2*uint16(engine)+uint16(channel))
}
