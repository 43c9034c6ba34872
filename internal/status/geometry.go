// internal/status/geometry.go
package status

import "fmt"

// BlockAddress returns the first register of block baseSlot.
func BlockAddress(baseSlot uint16) (uint16, error) {
	if baseSlot > MaxBaseSlot {
		return 0, fmt.Errorf("status: base slot %d out of range (max %d)", baseSlot, MaxBaseSlot)
	}
	return baseSlot * SlotsPerBlock, nil
}
