// internal/writer/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/pio-irq/internal/status"
)

// StatusBlock is a Modbus TCP connection bound to one status block.
// Writes are addressed in slots relative to the block start, so a caller
// can never write outside its own block.
// Not safe for concurrent use; the simulator writes from its dispatch loop.
type StatusBlock struct {
	handler *modbus.TCPClientHandler
	client  modbus.Client
	base    uint16
}

type Config struct {
	Endpoint string
	UnitID   uint8
	BaseSlot uint16
	Timeout  time.Duration
}

// Dial resolves the block address and connects to the endpoint.
func Dial(cfg Config) (*StatusBlock, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("status block: endpoint required")
	}
	base, err := status.BlockAddress(cfg.BaseSlot)
	if err != nil {
		return nil, err
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("status block: connect %s: %w", cfg.Endpoint, err)
	}

	return &StatusBlock{
		handler: h,
		client:  modbus.NewClient(h),
		base:    base,
	}, nil
}

func (b *StatusBlock) Close() error {
	return b.handler.Close()
}

// WriteSlots writes regs into the block starting at slot (FC 16).
func (b *StatusBlock) WriteSlots(slot int, regs []uint16) error {
	if err := checkSpan(slot, len(regs)); err != nil {
		return err
	}
	if len(regs) == 0 {
		return nil
	}

	addr := b.base + uint16(slot)
	_, err := b.client.WriteMultipleRegisters(addr, uint16(len(regs)), packRegisters(regs))
	return err
}

// checkSpan keeps [slot, slot+n) inside one status block.
func checkSpan(slot, n int) error {
	if slot < 0 || n < 0 || slot+n > status.SlotsPerBlock {
		return fmt.Errorf("status block: slots %d+%d outside the %d-slot block", slot, n, status.SlotsPerBlock)
	}
	return nil
}

// Modbus register memory order (BIG-ENDIAN)
func packRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}
