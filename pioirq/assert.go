// pioirq/assert.go

//go:build !pioirq_nochecks

package pioirq

// checks enables precondition panics. Build with -tags pioirq_nochecks to
// drop them from interrupt paths.
const checks = true
