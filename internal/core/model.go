package core

import "github.com/gogazub/edf-demo/internal/gpio"

// Kind tags the variant carried by a Message.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindButton1State
	KindButton2State
	KindPeriodicString
)

const (
	// PayloadSize is the fixed payload capacity of a queued message.
	PayloadSize = 10
	// QueueSize is the number of messages the system queue holds.
	QueueSize = 10
)

func (k Kind) String() string {
	switch k {
	case KindButton1State:
		return "button1"
	case KindButton2State:
		return "button2"
	case KindPeriodicString:
		return "periodic"
	default:
		return "invalid"
	}
}

// Button returns the button number for a button-state kind, or 0.
func (k Kind) Button() int {
	switch k {
	case KindButton1State:
		return 1
	case KindButton2State:
		return 2
	default:
		return 0
	}
}

// ButtonKind returns the state kind for button n (1 or 2).
func ButtonKind(n int) Kind {
	switch n {
	case 1:
		return KindButton1State
	case 2:
		return KindButton2State
	default:
		return KindInvalid
	}
}

// Message is a tagged variant. Only the accessor matching Kind returns data.
type Message struct {
	Kind  Kind
	level gpio.Level
	text  [PayloadSize]byte
	n     uint8
}

// ButtonState builds a button-state message for button n. The level is kept
// as read; only gpio.High counts as a pressed pin downstream.
func ButtonState(n int, level gpio.Level) Message {
	return Message{Kind: ButtonKind(n), level: level}
}

// PeriodicString builds a text message; text beyond PayloadSize is cut.
func PeriodicString(text string) Message {
	m := Message{Kind: KindPeriodicString}
	m.n = uint8(copy(m.text[:], text))
	return m
}

func (m Message) Level() (gpio.Level, bool) {
	if m.Kind.Button() == 0 {
		return gpio.Low, false
	}
	return m.level, true
}

func (m Message) Text() (string, bool) {
	if m.Kind != KindPeriodicString {
		return "", false
	}
	return string(m.text[:m.n]), true
}
