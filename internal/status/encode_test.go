// internal/status/encode_test.go
package status

import "testing"

func TestEncode_Layout(t *testing.T) {
	var s Snapshot
	s.Hits[0] = 1
	s.Hits[1*4+2] = 7
	s.Services = 9
	s.Storms = 2
	s.Unrouted = 3

	regs := Encode(s)

	if len(regs) != SlotsPerBlock {
		t.Fatalf("block length = %d, want %d", len(regs), SlotsPerBlock)
	}
	if regs[SlotHitsStart] != 1 || regs[SlotHitsStart+6] != 7 {
		t.Fatalf("hit counters misplaced: %v", regs[:SlotHitsCount])
	}
	if regs[SlotServices] != 9 || regs[SlotStorms] != 2 || regs[SlotUnrouted] != 3 {
		t.Fatalf("totals misplaced: %v", regs[SlotServices:SlotReserved+1])
	}
	for i := SlotDeviceNameStart; i < SlotsPerBlock; i++ {
		if regs[i] != 0 {
			t.Fatalf("device name slot %d not zero", i)
		}
	}
}

func TestEncodeDeviceName(t *testing.T) {
	regs := EncodeDeviceName("PIO")
	if regs[0] != uint16('P')<<8|uint16('I') || regs[1] != uint16('O')<<8 {
		t.Fatalf("unexpected packing: %v", regs[:2])
	}

	long := EncodeDeviceName("0123456789abcdefXYZ")
	if long[7] != uint16('e')<<8|uint16('f') {
		t.Fatalf("name not truncated at 16 chars: %#04x", long[7])
	}
}

func TestSaturate(t *testing.T) {
	if Saturate(-1) != 0 || Saturate(12) != 12 || Saturate(1<<20) != CounterMax {
		t.Fatalf("saturation wrong")
	}
}

func TestBlockAddress(t *testing.T) {
	if addr, err := BlockAddress(2); err != nil || addr != 48 {
		t.Fatalf("BlockAddress(2) = %d, %v", addr, err)
	}

	// last block ends exactly at the top of the address space
	addr, err := BlockAddress(MaxBaseSlot)
	if err != nil {
		t.Fatalf("BlockAddress(max) err=%v", err)
	}
	if int(addr)+SlotsPerBlock > 0x10000 {
		t.Fatalf("last block at %d overruns the address space", addr)
	}

	// 2731*24 wraps to 8 in 16 bits
	for _, slot := range []uint16{MaxBaseSlot + 1, 2731, 0xffff} {
		if _, err := BlockAddress(slot); err == nil {
			t.Fatalf("BlockAddress(%d): expected range error", slot)
		}
	}
}
