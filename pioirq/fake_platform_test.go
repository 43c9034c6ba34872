// pioirq/fake_platform_test.go
package pioirq

import "testing"

// ---- fake platform ----

type sourceCall struct {
	channel Channel
	engine  Engine
	source  Source
	enabled bool
}

type sharedCall struct {
	line    Line
	handler func()
	order   uint8
}

type fakePlatform struct {
	engines int
	base    Line

	flags   [MaxEngines]uint32
	sources []sourceCall
	clears  []uint32
	shared  []sharedCall
	enabled map[Line]bool
}

func newFakePlatform(engines int) *fakePlatform {
	return &fakePlatform{
		engines: engines,
		base:    7,
		enabled: make(map[Line]bool),
	}
}

func (f *fakePlatform) NumEngines() int { return f.engines }
func (f *fakePlatform) LineBase() Line  { return f.base }

func (f *fakePlatform) SetIRQ0SourceEnabled(engine Engine, source Source, enabled bool) {
	f.sources = append(f.sources, sourceCall{Channel0, engine, source, enabled})
}

func (f *fakePlatform) SetIRQ1SourceEnabled(engine Engine, source Source, enabled bool) {
	f.sources = append(f.sources, sourceCall{Channel1, engine, source, enabled})
}

func (f *fakePlatform) ClearInterrupt(engine Engine, flag uint32) {
	f.clears = append(f.clears, flag)
	f.flags[engine] &^= 1 << flag
}

func (f *fakePlatform) Flags(engine Engine) uint32 { return f.flags[engine] }

func (f *fakePlatform) AddSharedHandler(line Line, handler func(), order uint8) {
	f.shared = append(f.shared, sharedCall{line, handler, order})
}

func (f *fakePlatform) SetLineEnabled(line Line, enabled bool) {
	f.enabled[line] = enabled
}

// ---- counting handler ----

type counter struct {
	hits int
}

func (c *counter) Handle() { c.hits++ }

// mustPanic fails the test unless fn panics with want.
func mustPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		got := recover()
		if got == nil {
			t.Fatalf("expected panic %v, got none", want)
		}
		if got != want {
			t.Fatalf("panic mismatch: got=%v want=%v", got, want)
		}
	}()
	fn()
}
