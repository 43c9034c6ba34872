// internal/poller/builder.go
package poller

import (
	"time"

	cfg "github.com/tamzrod/pio-irq/internal/config"
	pmodbus "github.com/tamzrod/pio-irq/internal/poller/modbus"
)

// Build constructs a Poller for a Modbus bench fixture and wires the
// client lifecycle. Connection is reused while healthy; after a transport
// failure the poller dials again on a future tick.
func Build(m cfg.ModbusSourceConfig, engines int) (*Poller, func() error, error) {
	var current *pmodbus.Client

	// client factory: ONE attempt per call
	factory := func() (Client, error) {
		if current != nil {
			_ = current.Close()
			current = nil
		}
		c, err := pmodbus.New(pmodbus.Config{
			Endpoint: m.Endpoint,
			UnitID:   m.UnitID,
			Timeout:  time.Duration(m.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return nil, err
		}
		current = c
		return c, nil
	}

	// initial client (fail fast at startup)
	client, err := factory()
	if err != nil {
		return nil, nil, err
	}

	p, err := New(
		Config{
			SourceID: m.Endpoint,
			Interval: time.Duration(m.IntervalMs) * time.Millisecond,
			Address:  m.Address,
			Engines:  engines,
		},
		client,
		factory,
	)
	if err != nil {
		_ = current.Close()
		return nil, nil, err
	}

	closer := func() error {
		if current == nil {
			return nil
		}
		return current.Close()
	}
	return p, closer, nil
}
