// pioirq/assert_nochecks.go

//go:build pioirq_nochecks

package pioirq

const checks = false
