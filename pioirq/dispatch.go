// pioirq/dispatch.go
package pioirq

// trampoline returns the parameter-less entry point for an engine.
func (r *Router[H, P]) trampoline(engine Engine) func() {
	switch engine {
	case 0:
		return r.handleEngine0
	case 1:
		return r.handleEngine1
	case 2:
		return r.handleEngine2
	}
	panic(ErrInvalidEngine)
}

func (r *Router[H, P]) handleEngine0() { r.dispatch(0) }
func (r *Router[H, P]) handleEngine1() { r.dispatch(1) }
func (r *Router[H, P]) handleEngine2() { r.dispatch(2) }

// dispatch runs in interrupt context.
func (r *Router[H, P]) dispatch(engine Engine) {
	flags := r.platform.Flags(engine)
	if flags&smMask == 0 {
		// nothing attributable to a state machine; the line may be shared
		return
	}

	sm := Origin(r.irq, Decode(flags))

	// cleared even without a handler, or an armed flag storms
	r.platform.ClearInterrupt(engine, Encode(r.irq, sm))

	if h := r.slots[int(engine)*StateMachines+int(sm)].Load(); h != nil {
		P(h).Handle()
	}
}
