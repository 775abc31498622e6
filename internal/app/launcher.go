package app

import (
	"github.com/gogazub/edf-demo/internal/core"
	"github.com/gogazub/edf-demo/internal/gpio"
	"github.com/gogazub/edf-demo/internal/kernel"
	"github.com/gogazub/edf-demo/internal/serial"
)

// Setup creates the shared queue and the stats store and binds them to the
// board collaborators. It must run before any task is started.
func Setup(k *kernel.Kernel, pins gpio.Driver, sink serial.Sink, queueSize int) Deps {
	return Deps{
		Kernel: k,
		Queue:  core.NewQueue(queueSize),
		Pins:   pins,
		Serial: sink,
		Stats:  core.NewStats(),
	}
}

type registrar func(k *kernel.Kernel, def TaskDef) bool

func registerPlain(k *kernel.Kernel, def TaskDef) bool {
	return k.CreateTask(def.Body, def.Name, def.Stack, def.Priority)
}

func registerPeriodic(k *kernel.Kernel, def TaskDef) bool {
	return k.CreatePeriodicTask(def.Body, def.Name, def.Stack, def.Priority, def.Period)
}

func registrarFor(mode Mode) registrar {
	if mode == ModeEDF {
		return registerPeriodic
	}
	return registerPlain
}

// Launch registers every task in the table with d.Kernel using the strategy
// for mode and returns how many were created. A failed creation is not
// retried.
func Launch(d Deps, mode Mode) int {
	register := registrarFor(mode)
	created := 0
	for _, def := range Table(d) {
		d.Stats.Register(def.Name)
		if register(d.Kernel, def) {
			created++
		}
	}
	return created
}
