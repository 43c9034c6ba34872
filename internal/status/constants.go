// internal/status/constants.go
package status

import "github.com/tamzrod/pio-irq/pioirq"

// Dispatch Status Block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerBlock is the fixed number of registers in one status block.
const SlotsPerBlock = 24

// MaxBaseSlot is the last block index whose block still ends inside the
// 16-bit register address space.
const MaxBaseSlot = 0x10000/SlotsPerBlock - 1

// ---- SLOT INDICES ----

// SlotHitsStart is the first per-state-machine hit counter.
// Engine e state machine s lives at SlotHitsStart + e*4 + s.
const SlotHitsStart = 0

// SlotHitsCount is the number of hit counters.
const SlotHitsCount = pioirq.MaxEngines * pioirq.StateMachines

// SlotServices counts interrupt line services.
const SlotServices = 12

// SlotStorms counts flags still asserted after the storm limit.
const SlotStorms = 13

// SlotUnrouted counts raised flags that reached no enabled line.
const SlotUnrouted = 14

// ---- RESERVED RANGE ----

// Slot 15 is reserved for future use.
const SlotReserved = 15

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// Device name is always placed at the END of the status block.
const SlotDeviceNameStart = 16

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = 16

// CounterMax is where counters saturate.
const CounterMax = 0xffff
