// pioirq/encode_test.go
package pioirq

import "testing"

func TestEncode_DistinctPerStateMachine(t *testing.T) {
	for _, irq := range []uint32{0, 1, 2, 3, 4, 7, 0x100} {
		seen := map[uint32]uint8{}
		for sm := uint8(0); sm < StateMachines; sm++ {
			rel := Encode(irq, sm)
			if prev, dup := seen[rel]; dup {
				t.Fatalf("irq=%d: sm %d and %d both map to %d", irq, prev, sm, rel)
			}
			seen[rel] = sm
		}
	}
}

func TestEncode_KeepsHighBits(t *testing.T) {
	cases := []struct {
		irq  uint32
		sm   uint8
		want uint32
	}{
		{0, 0, 0},
		{0, 3, 3},
		{1, 3, 0},
		{2, 3, 1},
		{3, 1, 0},
		{4, 1, 5},
		{7, 1, 4},
		{0xfc, 2, 0xfe},
	}

	for _, c := range cases {
		if got := Encode(c.irq, c.sm); got != c.want {
			t.Fatalf("Encode(%d, %d) = %d, want %d", c.irq, c.sm, got, c.want)
		}
	}
}

func TestDecode_FirstRaisedBit(t *testing.T) {
	cases := []struct {
		flags uint32
		want  uint8
	}{
		{0b0001, 0},
		{0b0100, 2},
		{0b1000, 3},
		{0b1010, 1},
		{0xf0 | 0b0100, 2},
	}

	for _, c := range cases {
		if got := Decode(c.flags); got != c.want {
			t.Fatalf("Decode(%04b) = %d, want %d", c.flags, got, c.want)
		}
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	for sm := uint8(0); sm < StateMachines; sm++ {
		if got := Decode(1 << Encode(0, sm)); got != sm {
			t.Fatalf("irq 0: round trip sm=%d got=%d", sm, got)
		}
		for irq := uint32(0); irq < 4; irq++ {
			bit := Decode(1 << Encode(irq, sm))
			if got := Origin(irq, bit); got != sm {
				t.Fatalf("irq %d: origin of bit %d = %d, want %d", irq, bit, got, sm)
			}
		}
	}
}

func TestDecode_NoBitPanics(t *testing.T) {
	if !checks {
		t.Skip("checks disabled")
	}
	mustPanic(t, ErrNoStateMachine, func() { Decode(0xf0) })
}
