// pioirq/rp2/platform.go

//go:build rp2040 || rp2350

// Package rp2 implements pioirq.Platform on the RP2040 and RP2350 PIO
// blocks for TinyGo.
package rp2

import (
	"device/rp"
	"runtime/volatile"

	"github.com/tamzrod/pio-irq/pioirq"
)

// Platform drives the chip's PIO interrupt hardware.
var Platform pioirq.Platform = platform{}

// shared handlers per PIO line: PIO0_IRQ_0, PIO0_IRQ_1, PIO1_IRQ_0, ...
var chains [numPIO * 2]pioirq.Chain

var lineInstalled [numPIO * 2]bool

type platform struct{}

func (platform) NumEngines() int { return numPIO }

func (platform) LineBase() pioirq.Line { return rp.IRQ_PIO0_IRQ_0 }

func (platform) SetIRQ0SourceEnabled(engine pioirq.Engine, source pioirq.Source, enabled bool) {
	setSource(&pioHW(engine).IRQ0_INTE, source, enabled)
}

func (platform) SetIRQ1SourceEnabled(engine pioirq.Engine, source pioirq.Source, enabled bool) {
	setSource(&pioHW(engine).IRQ1_INTE, source, enabled)
}

// ClearInterrupt writes one to the flag's bit in IRQ.
func (platform) ClearInterrupt(engine pioirq.Engine, flag uint32) {
	pioHW(engine).IRQ.Set(1 << flag)
}

func (platform) Flags(engine pioirq.Engine) uint32 {
	return pioHW(engine).IRQ.Get()
}

func (platform) AddSharedHandler(line pioirq.Line, handler func(), order uint8) {
	i := int(line) - rp.IRQ_PIO0_IRQ_0
	if i < 0 || i >= len(chains) {
		panic(pioirq.ErrInvalidLine)
	}
	if err := chains[i].Add(handler, order); err != nil {
		panic(err)
	}
	if !lineInstalled[i] {
		interruptSet(uint8(i/2), uint8(i%2))
		lineInstalled[i] = true
	}
}

func (platform) SetLineEnabled(line pioirq.Line, enabled bool) {
	irqSet(uint32(line), enabled)
}

func setSource(inte *volatile.Register32, source pioirq.Source, enabled bool) {
	mask := uint32(1) << source
	if mask&validINTEBits == 0 {
		panic(pioirq.ErrInvalidSource)
	}
	if enabled {
		inte.SetBits(mask)
	} else {
		inte.ClearBits(mask)
	}
}

func runChain(i int) {
	chains[i].Run()
}
