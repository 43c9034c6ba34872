// internal/config/config.go
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Sim SimConfig `yaml:"sim"`
}

type SimConfig struct {
	Chip       string         `yaml:"chip"`        // rp2040 | rp2350
	StormLimit int            `yaml:"storm_limit"` // max services per raised flag
	Routers    []RouterConfig `yaml:"routers"`
	Events     []EventConfig  `yaml:"events"`
	Source     SourceConfig   `yaml:"source"`
	Status     *StatusConfig  `yaml:"status"` // optional
}

// ---- ROUTER ----

type RouterConfig struct {
	ID       string          `yaml:"id"`
	IRQ      uint32          `yaml:"irq"`
	Channel  uint8           `yaml:"channel"`
	Enable   *bool           `yaml:"enable"` // default true
	Bindings []BindingConfig `yaml:"bindings"`
}

type BindingConfig struct {
	Engine uint8  `yaml:"engine"`
	SM     uint8  `yaml:"sm"`
	Name   string `yaml:"name"`
}

// ---- EVENTS (script source) ----

// EventConfig raises either the relative flag of (sm, irq) or a raw flag
// mask on one engine.
type EventConfig struct {
	Engine uint8   `yaml:"engine"`
	SM     *uint8  `yaml:"sm"`
	IRQ    uint32  `yaml:"irq"`
	Flags  *uint32 `yaml:"flags"`
	Repeat int     `yaml:"repeat"`
}

// ---- SOURCE ----

type SourceConfig struct {
	Kind   string              `yaml:"kind"` // script | modbus | tty
	Modbus *ModbusSourceConfig `yaml:"modbus"`
	TTY    *TTYSourceConfig    `yaml:"tty"`
}

// ModbusSourceConfig polls a bench fixture exposing one holding register
// per engine with the flags to raise.
type ModbusSourceConfig struct {
	Endpoint   string `yaml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id"`
	Address    uint16 `yaml:"address"`
	TimeoutMs  int    `yaml:"timeout_ms"`
	IntervalMs int    `yaml:"interval_ms"`
}

type TTYSourceConfig struct {
	Device string `yaml:"device"` // empty = controlling terminal
	Engine uint8  `yaml:"engine"`
	IRQ    uint32 `yaml:"irq"`
}

// ---- STATUS ----

type StatusConfig struct {
	Endpoint   string `yaml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id"`
	BaseSlot   uint16 `yaml:"base_slot"`
	TimeoutMs  int    `yaml:"timeout_ms"`
	DeviceName string `yaml:"device_name"`
}

// Engines returns the number of PIO engines of the configured chip, or 0
// for an unknown chip.
func (s SimConfig) Engines() int {
	switch s.Chip {
	case ChipRP2040:
		return 2
	case ChipRP2350:
		return 3
	}
	return 0
}

const (
	ChipRP2040 = "rp2040"
	ChipRP2350 = "rp2350"

	SourceScript = "script"
	SourceModbus = "modbus"
	SourceTTY    = "tty"
)

// Load reads a scenario file. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a scenario document.
func Parse(raw []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return &cfg, nil
}
