// internal/status/encode.go
package status

// Encode converts a Snapshot into the live part of a status block.
// Layout is protocol-locked. Device name slots are left zero.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerBlock)

	copy(regs[SlotHitsStart:SlotHitsStart+SlotHitsCount], s.Hits[:])
	regs[SlotServices] = s.Services
	regs[SlotStorms] = s.Storms
	regs[SlotUnrouted] = s.Unrouted

	return regs
}

// EncodeDeviceName packs up to 16 ASCII characters into 8 registers.
// Each register stores two ASCII bytes in big-endian order.
func EncodeDeviceName(name string) []uint16 {
	out := make([]uint16, SlotDeviceNameSlots)

	b := []byte(name)
	if len(b) > DeviceNameMaxChars {
		b = b[:DeviceNameMaxChars]
	}
	for i := 0; i < len(b); i++ {
		if i%2 == 0 {
			out[i/2] |= uint16(b[i]) << 8
		} else {
			out[i/2] |= uint16(b[i])
		}
	}
	return out
}
