// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/pio-irq/internal/status"
	"github.com/tamzrod/pio-irq/pioirq"
)

// Validate checks scenario correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}
	s := cfg.Sim

	engines := s.Engines()
	if engines == 0 {
		return fmt.Errorf("sim: unknown chip %q (want %s or %s)", s.Chip, ChipRP2040, ChipRP2350)
	}
	if s.StormLimit < 0 {
		return fmt.Errorf("sim: storm_limit must be >= 0")
	}
	if len(s.Routers) == 0 {
		return fmt.Errorf("sim: at least one router required")
	}

	// ------------------------------------------------------------
	// ROUTER VALIDATION
	// ------------------------------------------------------------

	ids := make(map[string]struct{})

	for _, r := range s.Routers {
		if r.ID == "" {
			return fmt.Errorf("router: id required")
		}
		if _, dup := ids[r.ID]; dup {
			return fmt.Errorf("router %q: duplicate id", r.ID)
		}
		ids[r.ID] = struct{}{}

		if r.Channel > 1 {
			return fmt.Errorf("router %q: channel must be 0 or 1, got %d", r.ID, r.Channel)
		}
		if r.IRQ >= pioirq.StateMachines {
			return fmt.Errorf("router %q: irq %d raises flags outside 0..3 that no state machine can be decoded from", r.ID, r.IRQ)
		}

		for _, b := range r.Bindings {
			if int(b.Engine) >= engines {
				return fmt.Errorf("router %q: engine %d out of range (%s has %d)", r.ID, b.Engine, s.Chip, engines)
			}
			if b.SM >= pioirq.StateMachines {
				return fmt.Errorf("router %q: sm %d out of range", r.ID, b.SM)
			}
		}
	}

	// ------------------------------------------------------------
	// OVERLAP VALIDATION (ACROSS ROUTERS)
	// ------------------------------------------------------------

	// key = engine | sm
	slotOwner := make(map[string]string)
	// every router on an engine reads the same flag register and claims the
	// first raised bit as its own, so an engine belongs to one router
	engineOwner := make(map[uint8]string)

	for _, r := range s.Routers {
		for _, b := range r.Bindings {
			slot := fmt.Sprintf("%d|%d", b.Engine, b.SM)
			if prev, exists := slotOwner[slot]; exists {
				return fmt.Errorf(
					"binding collision: engine=%d sm=%d bound by routers %q and %q",
					b.Engine,
					b.SM,
					prev,
					r.ID,
				)
			}
			slotOwner[slot] = r.ID

			if prev, exists := engineOwner[b.Engine]; exists && prev != r.ID {
				return fmt.Errorf(
					"engine collision: engine=%d flags read by routers %q and %q",
					b.Engine,
					prev,
					r.ID,
				)
			}
			engineOwner[b.Engine] = r.ID
		}
	}

	// ------------------------------------------------------------
	// EVENTS
	// ------------------------------------------------------------

	for i, e := range s.Events {
		if int(e.Engine) >= engines {
			return fmt.Errorf("event %d: engine %d out of range", i, e.Engine)
		}
		if (e.SM == nil) == (e.Flags == nil) {
			return fmt.Errorf("event %d: exactly one of sm or flags required", i)
		}
		if e.SM != nil && *e.SM >= pioirq.StateMachines {
			return fmt.Errorf("event %d: sm %d out of range", i, *e.SM)
		}
		if e.Flags != nil && *e.Flags > 0xff {
			return fmt.Errorf("event %d: flags %#x exceed the 8-bit IRQ register", i, *e.Flags)
		}
		if e.Repeat < 0 {
			return fmt.Errorf("event %d: repeat must be >= 0", i)
		}
	}

	// ------------------------------------------------------------
	// SOURCE
	// ------------------------------------------------------------

	switch s.Source.Kind {
	case "", SourceScript:
	case SourceModbus:
		m := s.Source.Modbus
		if m == nil || m.Endpoint == "" {
			return fmt.Errorf("source: modbus requires an endpoint")
		}
		if int(m.Address)+engines > 0x10000 {
			return fmt.Errorf("source: modbus register block exceeds address space")
		}
	case SourceTTY:
		if t := s.Source.TTY; t != nil && int(t.Engine) >= engines {
			return fmt.Errorf("source: tty engine %d out of range", t.Engine)
		}
	default:
		return fmt.Errorf("source: unknown kind %q", s.Source.Kind)
	}

	// ------------------------------------------------------------
	// STATUS (OPT-IN)
	// ------------------------------------------------------------

	if st := s.Status; st != nil {
		if st.Endpoint == "" {
			return fmt.Errorf("status: endpoint required")
		}
		if _, err := status.BlockAddress(st.BaseSlot); err != nil {
			return fmt.Errorf("status: %w", err)
		}
		for i := 0; i < len(st.DeviceName); i++ {
			if st.DeviceName[i] > 0x7F {
				return fmt.Errorf("status: device_name must contain ASCII characters only")
			}
		}
	}

	return nil
}
