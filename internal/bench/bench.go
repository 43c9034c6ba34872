// internal/bench/bench.go
package bench

import (
	"fmt"

	cfg "github.com/tamzrod/pio-irq/internal/config"
	"github.com/tamzrod/pio-irq/internal/poller"
	"github.com/tamzrod/pio-irq/internal/report"
	"github.com/tamzrod/pio-irq/internal/simhw"
	"github.com/tamzrod/pio-irq/internal/status"
	"github.com/tamzrod/pio-irq/pioirq"
)

// Probe is the handler bound to one state machine. It counts interrupts.
type Probe struct {
	Router string
	Name   string
	Engine uint8
	SM     uint8

	Hits int
}

func (p *Probe) Handle() { p.Hits++ }

// Label names the probe in reports.
func (p *Probe) Label() string {
	return fmt.Sprintf("%s/%s@%d.%d", p.Router, p.Name, p.Engine, p.SM)
}

// Bench wires the configured routers onto simulated hardware.
// Like the hardware, it is driven from one goroutine.
type Bench struct {
	hw      *simhw.Hardware
	routers []*pioirq.Router[Probe, *Probe]
	probes  []*Probe
}

// Build arms every router and binds one probe per binding. Interrupts are
// armed before handlers are bound, the order firmware uses.
// Assumes config has already passed validation and normalization.
func Build(s cfg.SimConfig) (*Bench, error) {
	engines := s.Engines()
	if engines == 0 {
		return nil, fmt.Errorf("bench: unknown chip %q", s.Chip)
	}

	b := &Bench{hw: simhw.New(engines, s.StormLimit)}

	for _, rc := range s.Routers {
		r := pioirq.New[Probe](rc.IRQ, b.hw)
		enable := rc.Enable == nil || *rc.Enable

		for _, bc := range rc.Bindings {
			r.RegisterInterrupt(pioirq.Channel(rc.Channel), pioirq.Engine(bc.Engine), bc.SM, enable)
		}

		for _, bc := range rc.Bindings {
			p := &Probe{Router: rc.ID, Name: bc.Name, Engine: bc.Engine, SM: bc.SM}
			if p.Name == "" {
				p.Name = fmt.Sprintf("sm%d", bc.SM)
			}
			if prev := r.RegisterHandler(pioirq.Engine(bc.Engine), bc.SM, p, true); prev {
				return nil, fmt.Errorf("bench: router %q: engine %d sm %d bound twice", rc.ID, bc.Engine, bc.SM)
			}
			b.probes = append(b.probes, p)
		}

		b.routers = append(b.routers, r)
	}

	return b, nil
}

// Apply raises every event of a poll result on the hardware.
func (b *Bench) Apply(res poller.PollResult) {
	for _, ev := range res.Events {
		b.hw.RaiseMask(pioirq.Engine(ev.Engine), ev.Flags)
	}
}

// Hardware exposes the simulated hardware.
func (b *Bench) Hardware() *simhw.Hardware {
	return b.hw
}

// Probes returns the bound probes in configuration order.
func (b *Bench) Probes() []*Probe {
	return b.probes
}

// Snapshot renders the counters for the status block.
func (b *Bench) Snapshot() status.Snapshot {
	var s status.Snapshot
	for _, p := range b.probes {
		i := int(p.Engine)*pioirq.StateMachines + int(p.SM)
		s.Hits[i] = status.Saturate(int(s.Hits[i]) + p.Hits)
	}
	st := b.hw.Stats()
	s.Services = status.Saturate(st.Services)
	s.Storms = status.Saturate(st.Storms)
	s.Unrouted = status.Saturate(st.Unrouted)
	return s
}

// Summary builds the end-of-run report.
func (b *Bench) Summary() report.Summary {
	hits := make(map[string]int, len(b.probes))
	for _, p := range b.probes {
		hits[p.Label()] += p.Hits
	}
	st := b.hw.Stats()
	return report.Build(hits, st.Raised, st.Services, st.Storms, st.Unrouted, b.hw.Durations())
}
