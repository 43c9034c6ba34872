// pioirq/rp2/platform_rp2350.go

//go:build rp2350

package rp2

import (
	"device/rp"
	"runtime/interrupt"

	"github.com/tamzrod/pio-irq/pioirq"
)

const (
	numPIO  = 3
	_NUMIRQ = 52

	// all 16 bits: FIFO status (bits 0-7) and IRQ flags 0-7 (bits 8-15)
	validINTEBits = 0xFFFF
)

func pioHW(engine pioirq.Engine) *rp.PIO0_Type {
	switch engine {
	case 0:
		return rp.PIO0
	case 1:
		return rp.PIO1
	case 2:
		return rp.PIO2
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
	case engine == 2 && channel == 0:
		interrupt.New(rp.IRQ_PIO2_IRQ_0, func(interrupt.Interrupt) { runChain(4) })
	case engine == 2 && channel == 1:
		interrupt.New(rp.IRQ_PIO2_IRQ_1, func(interrupt.Interrupt) { runChain(5) })
	}
}

func irqSet(num uint32, enabled bool) {
	if num >= _NUMIRQ {
		return
	}
	mask := uint32(1) << (num % 32)
	icpr := &rp.PPB.NVIC_ICPR0
	iser := &rp.PPB.NVIC_ISER0
	icer := &rp.PPB.NVIC_ICER0
	if num >= 32 {
		icpr = &rp.PPB.NVIC_ICPR1
		iser = &rp.PPB.NVIC_ISER1
		icer = &rp.PPB.NVIC_ICER1
	}
	if enabled {
		icpr.Set(mask)
		iser.Set(mask)
	} else {
		icer.Set(mask)
	}
}
