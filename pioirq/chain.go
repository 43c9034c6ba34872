// pioirq/chain.go
package pioirq

// ChainCapacity is the number of handlers one line can share.
const ChainCapacity = 8

type chainEntry struct {
	fn    func()
	order uint8
}

// Chain is the list of shared handlers installed on one interrupt line.
// Entries run from highest to lowest order priority; equal priorities run
// in insertion order. Add is main-line only; Run is safe from interrupt
// context and does not allocate.
type Chain struct {
	entries [ChainCapacity]chainEntry
	n       int
}

// Add inserts fn at the given order priority.
func (c *Chain) Add(fn func(), order uint8) error {
	if fn == nil {
		return nil
	}
	if c.n == ChainCapacity {
		return ErrChainFull
	}

	i := c.n
	for i > 0 && c.entries[i-1].order < order {
		c.entries[i] = c.entries[i-1]
		i--
	}
	c.entries[i] = chainEntry{fn: fn, order: order}
	c.n++
	return nil
}

// Len reports the number of installed handlers.
func (c *Chain) Len() int {
	return c.n
}

// Run calls every installed handler once.
func (c *Chain) Run() {
	for i := 0; i < c.n; i++ {
		c.entries[i].fn()
	}
}
