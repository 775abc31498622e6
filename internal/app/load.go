package app

import (
	"context"
	"time"

	"github.com/gogazub/edf-demo/internal/core"
	"github.com/gogazub/edf-demo/internal/gpio"
	"github.com/gogazub/edf-demo/internal/kernel"
)

// Load describes a synthetic CPU-bound task. The pin is high exactly while
// the task is spinning.
type Load struct {
	Name       string
	Port       gpio.Port
	Pin        gpio.Pin
	Iterations int
	// Budget, when set, spins for this long instead of Iterations.
	Budget time.Duration
	Delay  kernel.Tick
}

func LoadSimulator(d Deps, l Load) kernel.TaskFunc {
	return func(ctx context.Context) {
		for {
			d.Stats.Inc(l.Name, core.CounterActivations)
			d.Pins.Write(l.Port, l.Pin, gpio.High)
			spin(l.Iterations, l.Budget)
			d.Pins.Write(l.Port, l.Pin, gpio.Low)
			if !d.Kernel.Delay(ctx, l.Delay) {
				return
			}
		}
	}
}

// spin burns CPU and returns the number of iterations performed.
func spin(iterations int, budget time.Duration) int {
	n := 0
	if budget > 0 {
		start := time.Now()
		for time.Since(start) < budget {
			n++
		}
		return n
	}
	for n < iterations {
		n++
	}
	return n
}
