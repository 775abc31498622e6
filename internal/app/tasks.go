package app

import (
	"time"

	"github.com/gogazub/edf-demo/internal/core"
	"github.com/gogazub/edf-demo/internal/gpio"
	"github.com/gogazub/edf-demo/internal/kernel"
	"github.com/gogazub/edf-demo/internal/serial"
)

const (
	Button1Name     = "Button_1_Monitor"
	Button2Name     = "Button_2_Monitor"
	TransmitterName = "Periodic Transmitter"
	ReceiverName    = "UART Receiver"
	Load1Name       = "Load1Simulator"
	Load2Name       = "Load2Simulator"
)

const (
	// SendTimeout and ReceiveTimeout bound every queue wait.
	SendTimeout    kernel.Tick = 10
	ReceiveTimeout kernel.Tick = 10

	ButtonDelay      kernel.Tick = 50
	TransmitterDelay kernel.Tick = 100
	ReceiverDelay    kernel.Tick = 50

	// PeriodicText is what the transmitter sends; the receiver prints
	// PeriodicTextLen bytes of it.
	PeriodicText    = "Test EDF"
	PeriodicTextLen = 8

	Load1Iterations = 36791
	Load2Iterations = 88298
)

// Pin assignments.
const (
	Button1Port, Button1Pin = gpio.Port0, gpio.Pin(0)
	Button2Port, Button2Pin = gpio.Port0, gpio.Pin(1)
	Load1Port, Load1Pin     = gpio.Port0, gpio.Pin(2)
	Load2Port, Load2Pin     = gpio.Port1, gpio.Pin(0)
)

// Deps are the collaborators handed to every task at creation.
type Deps struct {
	Kernel *kernel.Kernel
	Queue  *core.Queue
	Pins   gpio.Driver
	Serial serial.Sink
	Stats  *core.Stats

	// Load budgets replace the iteration counts when non-zero.
	Load1Budget time.Duration
	Load2Budget time.Duration
}

// TaskDef is one row of the registration table.
type TaskDef struct {
	Name     string
	Stack    kernel.StackClass
	Priority int
	Period   kernel.Tick
	Body     kernel.TaskFunc
}

// Buttons lists the monitored buttons.
func Buttons() []Button {
	return []Button{
		{Name: Button1Name, Number: 1, Port: Button1Port, Pin: Button1Pin},
		{Name: Button2Name, Number: 2, Port: Button2Port, Pin: Button2Pin},
	}
}

// Table builds the six application tasks bound to d.
func Table(d Deps) []TaskDef {
	buttons := Buttons()
	return []TaskDef{
		{
			Name: Button1Name, Stack: kernel.StackMinimal, Priority: 1, Period: 50,
			Body: ButtonMonitor(d, buttons[0]),
		},
		{
			Name: Button2Name, Stack: kernel.StackMinimal, Priority: 1, Period: 50,
			Body: ButtonMonitor(d, buttons[1]),
		},
		{
			Name: TransmitterName, Stack: kernel.StackMinimal, Priority: 2, Period: 100,
			Body: PeriodicTransmitter(d),
		},
		{
			Name: ReceiverName, Stack: kernel.StackMinimal, Priority: 2, Period: 20,
			Body: UARTReceiver(d),
		},
		{
			Name: Load1Name, Stack: kernel.StackMinimal, Priority: 3, Period: 10,
			Body: LoadSimulator(d, Load{
				Name: Load1Name, Port: Load1Port, Pin: Load1Pin,
				Iterations: Load1Iterations, Budget: d.Load1Budget, Delay: 10,
			}),
		},
		{
			Name: Load2Name, Stack: kernel.StackMinimal, Priority: 3, Period: 100,
			Body: LoadSimulator(d, Load{
				Name: Load2Name, Port: Load2Port, Pin: Load2Pin,
				Iterations: Load2Iterations, Budget: d.Load2Budget, Delay: 100,
			}),
		},
	}
}
