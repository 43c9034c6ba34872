// pioirq/registry.go
package pioirq

import "sync/atomic"

// Handler is the capability a routed handler type must have: *H can be
// invoked with no arguments.
type Handler[H any] interface {
	*H
	Handle()
}

// Router is the routing table for one handler type and one interrupt
// number. Slots hold non-owning references: handler objects belong to the
// caller and must stay valid until they are deregistered.
type Router[H any, P Handler[H]] struct {
	irq      uint32
	platform Platform

	// one slot per engine/state machine: PIO0[0..3], PIO1[0..3], ...
	slots [MaxEngines * StateMachines]atomic.Pointer[H]

	// trampoline already installed on engine/channel
	installed [MaxEngines][2]bool
}

// New returns a Router dispatching interrupt irq through platform.
func New[H any, P Handler[H]](irq uint32, platform Platform) *Router[H, P] {
	return &Router[H, P]{
		irq:      irq,
		platform: platform,
	}
}

// Interrupt returns the logical interrupt number the router serves.
func (r *Router[H, P]) Interrupt() uint32 {
	return r.irq
}

// RegisterHandler binds h to an engine state machine, or clears the slot
// when set is false. It reports whether a handler was bound before the
// call; a replaced handler stops receiving interrupts.
func (r *Router[H, P]) RegisterHandler(engine Engine, sm uint8, h *H, set bool) bool {
	if !set {
		h = nil
	}
	old := r.slots[r.index(engine, sm)].Swap(h)
	return old != nil
}

// Lookup returns the handler bound to an engine state machine, or nil.
func (r *Router[H, P]) Lookup(engine Engine, sm uint8) *H {
	return r.slots[r.index(engine, sm)].Load()
}

func (r *Router[H, P]) index(engine Engine, sm uint8) int {
	if checks {
		if int(engine) >= MaxEngines {
			panic(ErrInvalidEngine)
		}
		if sm >= StateMachines {
			panic(ErrInvalidStateMachine)
		}
	}
	return int(engine)*StateMachines + int(sm)
}
