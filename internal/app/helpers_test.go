package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gogazub/edf-demo/internal/core"
	"github.com/gogazub/edf-demo/internal/gpio"
	"github.com/gogazub/edf-demo/internal/kernel"
	"github.com/gogazub/edf-demo/internal/serial"
)

const testTick = 100 * time.Microsecond

type testBoard struct {
	deps   Deps
	pins   *gpio.Sim
	out    *serial.Recorder
	cancel context.CancelFunc
}

func newTestBoard(t *testing.T) *testBoard {
	t.Helper()
	pins := gpio.NewSim(1 << 14)
	out := &serial.Recorder{}
	d := Setup(kernel.New(testTick), pins, out, core.QueueSize)
	return &testBoard{deps: d, pins: pins, out: out}
}

// start runs the registered tasks; stop is registered as cleanup.
func (b *testBoard) start(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.deps.Kernel.Start(ctx)
	t.Cleanup(b.stop)
}

func (b *testBoard) stop() {
	if b.cancel != nil {
		b.cancel()
	}
	b.deps.Kernel.Wait()
}

func waitFor(t *testing.T, what string, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("waitFor timeout: %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func (b *testBoard) printed(s string) bool {
	for _, l := range b.out.Lines() {
		if l == s {
			return true
		}
	}
	return false
}

func (b *testBoard) dump() string {
	return strings.Join(b.out.Lines(), " | ")
}
