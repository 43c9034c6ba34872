// pioirq/rp2/platform_rp2040.go

//go:build rp2040

package rp2

import (
	"device/rp"
	"runtime/interrupt"

	"github.com/tamzrod/pio-irq/pioirq"
)

const (
	numPIO  = 2
	_NUMIRQ = 32

	// FIFO status (bits 0-7) and IRQ flags 0-3 (bits 8-11). Flags 4-7
	// cannot raise CPU interrupts on RP2040.
	validINTEBits = 0x0FFF
)

func pioHW(engine pioirq.Engine) *rp.PIO0_Type {
	switch engine {
	case 0:
		return rp.PIO0
	case 1:
		return rp.PIO1
	}
	panic(pioirq.ErrInvalidEngine)
}

// interrupt.New needs a constant interrupt ID.
func interruptSet(engine, channel uint8) {
	switch {
	case engine == 0 && channel == 0:
		interrupt.New(rp.IRQ_PIO0_IRQ_0, func(interrupt.Interrupt) { runChain(0) })
	case engine == 0 && channel == 1:
		interrupt.New(rp.IRQ_PIO0_IRQ_1, func(interrupt.Interrupt) { runChain(1) })
	case engine == 1 && channel == 0:
		interrupt.New(rp.IRQ_PIO1_IRQ_0, func(interrupt.Interrupt) { runChain(2) })
	case engine == 1 && channel == 1:
		interrupt.New(rp.IRQ_PIO1_IRQ_1, func(interrupt.Interrupt) { runChain(3) })
	}
}

func irqSet(num uint32, enabled bool) {
	if num >= _NUMIRQ {
		return
	}
	mask := uint32(1) << num
	if enabled {
		// clear pending first; a still-asserted line re-pends
		rp.PPB.NVIC_ICPR.Set(mask)
		rp.PPB.NVIC_ISER.Set(mask)
	} else {
		rp.PPB.NVIC_ICER.Set(mask)
	}
}
