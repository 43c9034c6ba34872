// internal/poller/poller.go
package poller

import (
	"errors"
	"time"

	"github.com/tamzrod/pio-irq/pioirq"
)

// Client abstracts the Modbus read the poller needs.
type Client interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) // FC 3
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	SourceID string
	Interval time.Duration
	Address  uint16 // first register; one register per engine
	Engines  int
}

// Poller reads a bench fixture's raw IRQ flag registers, one per engine.
// Edge detection lives in the run loop.
type Poller struct {
	cfg     Config
	client  Client
	factory func() (Client, error)
}

// New creates a poller with immutable config.
// factory may be nil; without it a failed client is never replaced.
func New(cfg Config, client Client, factory func() (Client, error)) (*Poller, error) {
	if cfg.SourceID == "" {
		return nil, errors.New("poller: source id required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if cfg.Engines < 1 || cfg.Engines > pioirq.MaxEngines {
		return nil, errors.New("poller: engine count out of range")
	}
	return &Poller{cfg: cfg, client: client, factory: factory}, nil
}

// Sample reads the current flag level of every engine.
// All-or-nothing: a failed read returns no levels and drops the client.
func (p *Poller) Sample() ([]uint16, error) {
	if p.client == nil {
		if p.factory == nil {
			return nil, errors.New("poller: no client")
		}
		c, err := p.factory()
		if err != nil {
			return nil, err
		}
		p.client = c
	}

	regs, err := p.client.ReadHoldingRegisters(p.cfg.Address, uint16(p.cfg.Engines))
	if err != nil {
		p.client = nil
		return nil, err
	}
	if len(regs) < p.cfg.Engines {
		return nil, errors.New("poller: short register read")
	}

	levels := make([]uint16, p.cfg.Engines)
	for e := range levels {
		// the PIO IRQ register is 8 bits wide
		levels[e] = regs[e] & 0xff
	}
	return levels, nil
}
