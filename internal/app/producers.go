package app

import (
	"context"

	"github.com/gogazub/edf-demo/internal/core"
	"github.com/gogazub/edf-demo/internal/gpio"
	"github.com/gogazub/edf-demo/internal/kernel"
)

// Button binds a monitor task to one input pin.
type Button struct {
	Name   string
	Number int
	Port   gpio.Port
	Pin    gpio.Pin
}

// ButtonMonitor samples b's pin every ButtonDelay ticks and publishes the
// level. A message that finds the queue full for SendTimeout is dropped.
func ButtonMonitor(d Deps, b Button) kernel.TaskFunc {
	return func(ctx context.Context) {
		for {
			level := d.Pins.Read(b.Port, b.Pin)
			publish(ctx, d, b.Name, core.ButtonState(b.Number, level))
			if !d.Kernel.Delay(ctx, ButtonDelay) {
				return
			}
		}
	}
}

// PeriodicTransmitter publishes PeriodicText every TransmitterDelay ticks.
func PeriodicTransmitter(d Deps) kernel.TaskFunc {
	return func(ctx context.Context) {
		for {
			publish(ctx, d, TransmitterName, core.PeriodicString(PeriodicText))
			if !d.Kernel.Delay(ctx, TransmitterDelay) {
				return
			}
		}
	}
}

func publish(ctx context.Context, d Deps, name string, m core.Message) {
	d.Stats.Inc(name, core.CounterActivations)
	if d.Queue.Send(ctx, m, d.Kernel.Ticks(SendTimeout)) {
		d.Stats.Inc(name, core.CounterSent)
		return
	}
	d.Stats.Inc(name, core.CounterDropped)
}
