// internal/config/validate_test.go
package config

import "testing"

// helper to build a single-binding router quickly
func router(id string, irq uint32, engine, sm uint8) RouterConfig {
	return RouterConfig{
		ID:      id,
		IRQ:     irq,
		Channel: 0,
		Bindings: []BindingConfig{
			{Engine: engine, SM: sm, Name: id},
		},
	}
}

func sim(routers ...RouterConfig) *Config {
	return &Config{
		Sim: SimConfig{
			Chip:    ChipRP2040,
			Routers: routers,
		},
	}
}

func u8(v uint8) *uint8    { return &v }
func u32(v uint32) *uint32 { return &v }

// ---- tests ----

func TestValidate_DistinctEnginesAllowed(t *testing.T) {
	cfg := sim(
		router("r1", 0, 0, 0),
		router("r2", 1, 1, 0),
	)

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_SlotCollisionDetected(t *testing.T) {
	cfg := sim(
		router("r1", 0, 0, 2),
		router("r2", 1, 0, 2),
	)

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected binding collision error, got nil")
	}
}

func TestValidate_SameFlagSameEngineRejected(t *testing.T) {
	// irq 0 on sm 1 and irq 1 on sm 0 both raise flag 1
	cfg := sim(
		router("r1", 0, 0, 1),
		router("r2", 1, 0, 0),
	)

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected engine collision error, got nil")
	}
}

func TestValidate_SharedEngineRejected(t *testing.T) {
	// flags differ, but r1 (irq 1) would read r2's flag 2 as its sm 1
	cfg := sim(
		router("r1", 1, 0, 0),
		router("r2", 0, 0, 2),
	)
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected engine collision error, got nil")
	}

	// separate channels share the flag register too
	cfg.Sim.Routers[1].Channel = 1
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected engine collision across channels, got nil")
	}
}

func TestValidate_OneRouterManyBindings(t *testing.T) {
	r := router("r1", 0, 0, 0)
	r.Bindings = append(r.Bindings, BindingConfig{Engine: 0, SM: 1}, BindingConfig{Engine: 1, SM: 3})
	if err := Validate(sim(r)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.Bindings = append(r.Bindings, BindingConfig{Engine: 0, SM: 1})
	if err := Validate(sim(r)); err == nil {
		t.Fatalf("expected duplicate binding error, got nil")
	}
}

func TestValidate_SameFlagDifferentEngineAllowed(t *testing.T) {
	cfg := sim(
		router("r1", 0, 0, 1),
		router("r2", 1, 1, 0),
	)

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_EngineOutOfRange(t *testing.T) {
	cfg := sim(router("r1", 0, 2, 0))
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected engine range error on rp2040, got nil")
	}

	cfg.Sim.Chip = ChipRP2350
	if err := Validate(cfg); err != nil {
		t.Fatalf("engine 2 valid on rp2350: %v", err)
	}
}

func TestValidate_RouterChecks(t *testing.T) {
	cases := map[string]RouterConfig{
		"missing id":  router("", 0, 0, 0),
		"bad channel": {ID: "r", Channel: 2},
		"high irq":    router("r", 4, 0, 0),
		"bad sm":      router("r", 0, 0, 4),
	}

	for name, r := range cases {
		if err := Validate(sim(r)); err == nil {
			t.Fatalf("%s: expected error, got nil", name)
		}
	}

	if err := Validate(sim(router("r", 0, 0, 0), router("r", 0, 0, 1))); err == nil {
		t.Fatalf("duplicate id: expected error, got nil")
	}
}

func TestValidate_Events(t *testing.T) {
	cfg := sim(router("r1", 0, 0, 0))

	cfg.Sim.Events = []EventConfig{{Engine: 0, SM: u8(2)}, {Engine: 1, Flags: u32(0b1000)}}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []EventConfig{
		{Engine: 0},
		{Engine: 0, SM: u8(1), Flags: u32(1)},
		{Engine: 0, SM: u8(4)},
		{Engine: 2, SM: u8(0)},
		{Engine: 0, Flags: u32(0x100)},
		{Engine: 0, SM: u8(0), Repeat: -1},
	}
	for i, e := range bad {
		cfg.Sim.Events = []EventConfig{e}
		if err := Validate(cfg); err == nil {
			t.Fatalf("bad event %d: expected error, got nil", i)
		}
	}
}

func TestValidate_SourceAndStatus(t *testing.T) {
	cfg := sim(router("r1", 0, 0, 0))

	cfg.Sim.Source = SourceConfig{Kind: SourceModbus}
	if err := Validate(cfg); err == nil {
		t.Fatalf("modbus source without endpoint: expected error")
	}

	cfg.Sim.Source = SourceConfig{Kind: "carrier-pigeon"}
	if err := Validate(cfg); err == nil {
		t.Fatalf("unknown source: expected error")
	}

	cfg.Sim.Source = SourceConfig{}
	cfg.Sim.Status = &StatusConfig{Endpoint: "127.0.0.1:502", DeviceName: "bänk"}
	if err := Validate(cfg); err == nil {
		t.Fatalf("non-ASCII device name: expected error")
	}
}

func TestValidate_StatusBlockInsideAddressSpace(t *testing.T) {
	cfg := sim(router("r1", 0, 0, 0))

	// block 2729 ends at register 0xffef
	cfg.Sim.Status = &StatusConfig{Endpoint: "127.0.0.1:502", BaseSlot: 2729}
	if err := Validate(cfg); err != nil {
		t.Fatalf("last block rejected: %v", err)
	}

	// 2731*24 would wrap to address 8
	for _, slot := range []uint16{2730, 2731} {
		cfg.Sim.Status.BaseSlot = slot
		if err := Validate(cfg); err == nil {
			t.Fatalf("base_slot %d: expected range error", slot)
		}
	}
}

func TestValidate_UnknownChip(t *testing.T) {
	cfg := sim(router("r1", 0, 0, 0))
	cfg.Sim.Chip = "esp32"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected unknown chip error")
	}
}
