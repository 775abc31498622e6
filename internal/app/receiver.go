package app

import (
	"context"
	"fmt"

	"github.com/gogazub/edf-demo/internal/core"
	"github.com/gogazub/edf-demo/internal/gpio"
	"github.com/gogazub/edf-demo/internal/kernel"
)

// UARTReceiver is the only consumer of the queue. Every ReceiverDelay ticks it
// takes at most one message and writes its rendering to the serial sink.
func UARTReceiver(d Deps) kernel.TaskFunc {
	return func(ctx context.Context) {
		for {
			d.Stats.Inc(ReceiverName, core.CounterActivations)
			if m, ok := d.Queue.Receive(ctx, d.Kernel.Ticks(ReceiveTimeout)); ok {
				d.Stats.Inc(ReceiverName, core.CounterReceived)
				if out, ok := Render(m); ok {
					d.Serial.PutString([]byte(out))
					d.Stats.Inc(ReceiverName, core.CounterRendered)
				}
			}
			if !d.Kernel.Delay(ctx, ReceiverDelay) {
				return
			}
		}
	}
}

// Render returns the serial text for m. Unknown kinds render nothing.
func Render(m core.Message) (string, bool) {
	switch m.Kind {
	case core.KindButton1State, core.KindButton2State:
		level, _ := m.Level()
		if level == gpio.High {
			return fmt.Sprintf("Button %d is HIGH", m.Kind.Button()), true
		}
		return fmt.Sprintf("Button %d is low", m.Kind.Button()), true
	case core.KindPeriodicString:
		text, _ := m.Text()
		if len(text) > PeriodicTextLen {
			text = text[:PeriodicTextLen]
		}
		return text, true
	default:
		return "", false
	}
}
