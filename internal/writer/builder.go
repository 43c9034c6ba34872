// internal/writer/builder.go
package writer

import (
	"time"

	cfg "github.com/tamzrod/pio-irq/internal/config"
	wmodbus "github.com/tamzrod/pio-irq/internal/writer/modbus"
)

// BuildPlan converts the status config into a StatusPlan.
// Assumes config has already passed validation and normalization.
func BuildPlan(s cfg.StatusConfig) StatusPlan {
	return StatusPlan{
		Endpoint:   s.Endpoint,
		DeviceName: s.DeviceName,
	}
}

// BuildStatusWriter dials the status endpoint and returns a writer plus
// its closer.
func BuildStatusWriter(s cfg.StatusConfig) (StatusWriter, func() error, error) {
	c, err := wmodbus.Dial(wmodbus.Config{
		Endpoint: s.Endpoint,
		UnitID:   s.UnitID,
		BaseSlot: s.BaseSlot,
		Timeout:  time.Duration(s.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}
	return NewStatusWriter(BuildPlan(s), c), c.Close, nil
}
