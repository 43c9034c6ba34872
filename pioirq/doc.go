// pioirq/doc.go

// Package pioirq routes PIO state machine interrupts to handler objects.
//
// PIO interrupt lines can only call functions without parameters. A Router
// owns one shared trampoline per PIO engine, installs it on the engine's
// interrupt lines and forwards each interrupt to the handler registered for
// the state machine that raised it.
//
// One Router exists per (handler type, interrupt number) pair and lives for
// the whole program, usually as a package-level variable:
//
//	var rotary = pioirq.New[Encoder](0, rp2.Platform)
//
//	func init() {
//		rotary.RegisterInterrupt(pioirq.Channel0, 0, 1, true)
//		rotary.RegisterHandler(0, 1, &knob, true)
//	}
//
// Behaviour when more than one Router binds the same engine and state
// machine is undefined. With one handler type and one interrupt number
// there is no conflict.
package pioirq
