// pioirq/register.go
package pioirq

// RegisterInterrupt arms the router's interrupt for one engine state
// machine on the given channel. It enables the relative IRQ source,
// installs the engine trampoline as a shared handler on the channel's line
// and, when enable is set, unmasks the line.
//
// Call it before the state machine starts; arming while the interrupt is
// already firing is not supported.
func (r *Router[H, P]) RegisterInterrupt(channel Channel, engine Engine, sm uint8, enable bool) {
	if checks {
		if channel > Channel1 {
			panic(ErrInvalidChannel)
		}
		if int(engine) >= r.platform.NumEngines() || int(engine) >= MaxEngines {
			panic(ErrInvalidEngine)
		}
		if sm >= StateMachines {
			panic(ErrInvalidStateMachine)
		}
	}

	line := LineFor(r.platform, engine, channel)
	source := InterruptSource(Encode(r.irq, sm))

	if channel == Channel0 {
		r.platform.SetIRQ0SourceEnabled(engine, source, true)
	} else {
		r.platform.SetIRQ1SourceEnabled(engine, source, true)
	}

	if !r.installed[engine][channel] {
		r.platform.AddSharedHandler(line, r.trampoline(engine), DefaultSharedOrder)
		r.installed[engine][channel] = true
	}

	if enable {
		r.platform.SetLineEnabled(line, true)
	}
}
