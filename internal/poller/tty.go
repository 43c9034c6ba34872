// internal/poller/tty.go
package poller

import (
	"context"
	"time"

	tty "github.com/mattn/go-tty"

	"github.com/tamzrod/pio-irq/pioirq"
)

// Keyboard raises flags from key presses: '0'..'3' fire that state
// machine's relative flag for irq on one engine. 'q' ends the session.
type Keyboard struct {
	term   *tty.TTY
	engine uint8
	irq    uint32
}

// OpenKeyboard opens the terminal device, or the controlling terminal
// when device is empty.
func OpenKeyboard(device string, engine uint8, irq uint32) (*Keyboard, error) {
	var (
		t   *tty.TTY
		err error
	)
	if device == "" {
		t, err = tty.Open()
	} else {
		t, err = tty.OpenDevice(device)
	}
	if err != nil {
		return nil, err
	}
	return &Keyboard{term: t, engine: engine, irq: irq}, nil
}

func (k *Keyboard) Close() error {
	return k.term.Close()
}

// KeyEvent maps one key to an event. ok is false for keys that raise
// nothing.
func KeyEvent(r rune, engine uint8, irq uint32) (Event, bool) {
	if r < '0' || r > '3' {
		return Event{}, false
	}
	sm := uint8(r - '0')
	return Event{Engine: engine, Flags: 1 << pioirq.Encode(irq, sm)}, true
}

// Run reads keys until 'q', EOF or ctx is done, then closes out.
func (k *Keyboard) Run(ctx context.Context, out chan<- PollResult) error {
	defer close(out)

	for {
		r, err := k.term.ReadRune()
		if err != nil {
			return err
		}
		if r == 'q' {
			return nil
		}

		ev, ok := KeyEvent(r, k.engine, k.irq)
		if !ok {
			continue
		}

		res := PollResult{SourceID: "tty", At: time.Now(), Events: []Event{ev}}
		select {
		case out <- res:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
