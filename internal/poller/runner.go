// internal/poller/runner.go
package poller

import (
	"context"
	"time"

	"github.com/tamzrod/pio-irq/pioirq"
)

// edges turns successive flag levels into rising-flag events. A flag held
// high across samples is raised once; it must drop before it raises again.
type edges struct {
	last [pioirq.MaxEngines]uint16
}

func (d *edges) rising(levels []uint16) []Event {
	var events []Event
	for e, v := range levels {
		rose := v &^ d.last[e]
		d.last[e] = v
		if rose != 0 {
			events = append(events, Event{Engine: uint8(e), Flags: uint32(rose)})
		}
	}
	return events
}

// cycle samples once and reports what rose. A failed sample leaves the
// previous levels in place, so flags still high after a reconnect are not
// raised twice.
func (p *Poller) cycle(d *edges) PollResult {
	res := PollResult{
		SourceID: p.cfg.SourceID,
		At:       time.Now(),
	}

	levels, err := p.Sample()
	if err != nil {
		res.Err = err
		return res
	}
	res.Events = d.rising(levels)
	return res
}

// Run starts the ticker loop and emits a PollResult for every cycle that
// raised flags or failed. Quiet cycles emit nothing.
// One goroutine per source. No overlap. No retries.
func (p *Poller) Run(ctx context.Context, out chan<- PollResult) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	var d edges
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res := p.cycle(&d)
			if res.Err == nil && len(res.Events) == 0 {
				continue
			}
			select {
			case out <- res:
			case <-ctx.Done():
				return
			}
		}
	}
}
