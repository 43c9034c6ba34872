// pioirq/errors.go
package pioirq

import "errors"

var (
	ErrInvalidChannel      = errors.New("pioirq: interrupt channel must be 0 or 1")
	ErrInvalidEngine       = errors.New("pioirq: engine out of range")
	ErrInvalidStateMachine = errors.New("pioirq: state machine out of range")
	ErrInvalidSource       = errors.New("pioirq: interrupt source not available")
	ErrInvalidLine         = errors.New("pioirq: interrupt line not served by a PIO engine")
	ErrNoStateMachine      = errors.New("pioirq: no state machine bit raised")
	ErrChainFull           = errors.New("pioirq: shared handler chain full")
)
