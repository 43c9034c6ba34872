// pioirq/encode.go
package pioirq

import "math/bits"

// StateMachines is the number of state machines in one PIO engine.
const StateMachines = 4

// smMask selects the four flag bits a relative interrupt can land on.
const smMask = 1<<StateMachines - 1

// Encode returns the relative IRQ flag a state machine sets for irq.
// The state machine index is added to the two low bits modulo 4; the
// remaining bits of irq are kept.
func Encode(irq uint32, sm uint8) uint32 {
	rel := (irq&0x03 + uint32(sm)) % StateMachines
	return rel | irq&^0x03
}

// Decode returns the position of the first raised flag in bits 0..3.
// At least one of those bits must be set.
func Decode(flags uint32) uint8 {
	if checks && flags&smMask == 0 {
		panic(ErrNoStateMachine)
	}
	return uint8(bits.TrailingZeros32(flags & smMask))
}

// Origin returns the state machine whose relative flag for irq is bit.
func Origin(irq uint32, bit uint8) uint8 {
	return (bit - uint8(irq&0x03)) % StateMachines
}
