// internal/poller/script.go
package poller

import (
	"context"
	"time"

	cfg "github.com/tamzrod/pio-irq/internal/config"
	"github.com/tamzrod/pio-irq/pioirq"
)

// ScriptEvents expands scripted events. An event naming a state machine
// raises that state machine's relative flag for its irq.
func ScriptEvents(events []cfg.EventConfig) []Event {
	var out []Event
	for _, e := range events {
		ev := Event{Engine: e.Engine}
		if e.SM != nil {
			ev.Flags = 1 << pioirq.Encode(e.IRQ, *e.SM)
		} else if e.Flags != nil {
			ev.Flags = *e.Flags
		}

		n := e.Repeat
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			out = append(out, ev)
		}
	}
	return out
}

// Replay emits each event as its own PollResult, then closes out.
func Replay(ctx context.Context, sourceID string, events []Event, out chan<- PollResult) {
	defer close(out)

	for _, ev := range events {
		res := PollResult{
			SourceID: sourceID,
			At:       time.Now(),
			Events:   []Event{ev},
		}
		select {
		case out <- res:
		case <-ctx.Done():
			return
		}
	}
}
