// cmd/pioirq-sim/run.go
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/tamzrod/pio-irq/internal/bench"
	"github.com/tamzrod/pio-irq/internal/config"
	"github.com/tamzrod/pio-irq/internal/poller"
	"github.com/tamzrod/pio-irq/internal/writer"
)

func run(parent context.Context, cfg *config.Config, kind string, duration time.Duration, out io.Writer) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	s := cfg.Sim

	// --------------------
	// Arm routers on simulated hardware
	// --------------------

	b, err := bench.Build(s)
	if err != nil {
		return err
	}
	log.Printf("armed %d routers, %d handlers on %s", len(s.Routers), len(b.Probes()), s.Chip)

	// --------------------
	// Status writer (optional)
	// --------------------

	var statusWriter writer.StatusWriter
	if s.Status != nil {
		sw, closeWriter, err := writer.BuildStatusWriter(*s.Status)
		if err != nil {
			return fmt.Errorf("status writer failed (endpoint=%s): %w", s.Status.Endpoint, err)
		}
		defer closeWriter()
		statusWriter = sw

		// full block on start
		if err := statusWriter.WriteStatus(b.Snapshot()); err != nil {
			log.Printf("status write failed on start: %v", err)
		}
	}

	// --------------------
	// Event source
	// --------------------

	results := make(chan poller.PollResult)

	switch kind {
	case config.SourceScript:
		go poller.Replay(ctx, "script", poller.ScriptEvents(s.Events), results)

	case config.SourceModbus:
		p, closePoller, err := poller.Build(*s.Source.Modbus, s.Engines())
		if err != nil {
			return fmt.Errorf("poller build failed (endpoint=%s): %w", s.Source.Modbus.Endpoint, err)
		}
		defer closePoller()

		go func() {
			p.Run(ctx, results)
			close(results)
		}()

	case config.SourceTTY:
		var engine uint8
		var irq uint32
		device := ""
		if t := s.Source.TTY; t != nil {
			engine, irq, device = t.Engine, t.IRQ, t.Device
		}
		kb, err := poller.OpenKeyboard(device, engine, irq)
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		defer kb.Close()

		go func() {
			if err := kb.Run(ctx, results); err != nil && ctx.Err() == nil {
				log.Printf("keyboard source stopped: %v", err)
			}
		}()

	default:
		return fmt.Errorf("unknown source %q", kind)
	}

	// --------------------
	// Dispatch loop (single simulated interrupt context)
	// --------------------

loop:
	for {
		select {
		case <-ctx.Done():
			break loop

		case res, ok := <-results:
			if !ok {
				break loop
			}
			if res.Err != nil {
				log.Printf("source error (source=%s): %v", res.SourceID, res.Err)
				continue
			}
			if len(res.Events) == 0 {
				continue
			}

			b.Apply(res)

			if statusWriter != nil {
				if err := statusWriter.WriteStatus(b.Snapshot()); err != nil {
					log.Printf("status write failed: %v", err)
				}
			}
		}
	}

	sum := b.Summary()
	if sum.Storms > 0 {
		log.Printf("warning: %d interrupt storms (flags never cleared)", sum.Storms)
	}
	return sum.Write(out)
}
