// pioirq/register_test.go
package pioirq

import "testing"

func TestRegisterInterrupt_Channel0(t *testing.T) {
	p := newFakePlatform(2)
	r := New[counter](1, p)

	r.RegisterInterrupt(Channel0, 1, 2, true)

	if len(p.sources) != 1 {
		t.Fatalf("expected 1 source enable, got %d", len(p.sources))
	}
	got := p.sources[0]
	want := sourceCall{
		channel: Channel0,
		engine:  1,
		source:  SourceInterrupt0 + Source(Encode(1, 2)),
		enabled: true,
	}
	if got != want {
		t.Fatalf("source call mismatch: got=%+v want=%+v", got, want)
	}

	// PIO1 channel 0 = base + 2
	line := p.base + 2
	if len(p.shared) != 1 || p.shared[0].line != line {
		t.Fatalf("trampoline not installed on line %d: %+v", line, p.shared)
	}
	if p.shared[0].order != DefaultSharedOrder {
		t.Fatalf("order priority = %#x, want %#x", p.shared[0].order, DefaultSharedOrder)
	}
	if !p.enabled[line] {
		t.Fatalf("line %d not enabled", line)
	}
}

func TestRegisterInterrupt_Channel1NoEnable(t *testing.T) {
	p := newFakePlatform(2)
	r := New[counter](0, p)

	r.RegisterInterrupt(Channel1, 0, 3, false)

	if len(p.sources) != 1 || p.sources[0].channel != Channel1 {
		t.Fatalf("expected channel 1 source enable, got %+v", p.sources)
	}
	if p.sources[0].source != SourceInterrupt0+3 {
		t.Fatalf("source = %d, want %d", p.sources[0].source, SourceInterrupt0+3)
	}

	line := p.base + 1
	if len(p.shared) != 1 || p.shared[0].line != line {
		t.Fatalf("trampoline not installed on line %d: %+v", line, p.shared)
	}
	if _, touched := p.enabled[line]; touched {
		t.Fatalf("line %d enabled while enable=false", line)
	}
}

func TestRegisterInterrupt_TrampolineInstalledOnce(t *testing.T) {
	p := newFakePlatform(2)
	r := New[counter](0, p)

	for sm := uint8(0); sm < StateMachines; sm++ {
		r.RegisterInterrupt(Channel0, 0, sm, true)
	}
	r.RegisterInterrupt(Channel1, 0, 0, true)

	if len(p.sources) != StateMachines+1 {
		t.Fatalf("expected %d source enables, got %d", StateMachines+1, len(p.sources))
	}
	if len(p.shared) != 2 {
		t.Fatalf("expected one trampoline per channel, got %d installs", len(p.shared))
	}
}

func TestRegisterInterrupt_InvalidChannelPanics(t *testing.T) {
	if !checks {
		t.Skip("checks disabled")
	}
	p := newFakePlatform(2)
	r := New[counter](0, p)

	mustPanic(t, ErrInvalidChannel, func() { r.RegisterInterrupt(2, 0, 0, true) })
	mustPanic(t, ErrInvalidEngine, func() { r.RegisterInterrupt(Channel0, 2, 0, true) })

	if len(p.sources) != 0 || len(p.shared) != 0 {
		t.Fatalf("hardware touched on invalid registration")
	}
}
