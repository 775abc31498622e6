package core

import (
	"testing"

	"github.com/gogazub/edf-demo/internal/gpio"
)

func TestButtonStateAccessors(t *testing.T) {
	m := ButtonState(2, gpio.High)
	if m.Kind != KindButton2State || m.Kind.Button() != 2 {
		t.Fatalf("kind=%s button=%d", m.Kind, m.Kind.Button())
	}
	if lvl, ok := m.Level(); !ok || lvl != gpio.High {
		t.Fatalf("level=%s ok=%v", lvl, ok)
	}
	if _, ok := m.Text(); ok {
		t.Fatal("button message exposed text")
	}

	// The observed level travels unchanged, even if it is not binary.
	if lvl, _ := ButtonState(1, gpio.Level(7)).Level(); lvl != gpio.Level(7) {
		t.Fatalf("level=%d want=7", lvl)
	}
	if ButtonState(3, gpio.High).Kind != KindInvalid {
		t.Fatal("button 3 should map to the invalid kind")
	}
}

func TestPeriodicStringAccessors(t *testing.T) {
	m := PeriodicString("Test EDF")
	if txt, ok := m.Text(); !ok || txt != "Test EDF" {
		t.Fatalf("text=%q ok=%v", txt, ok)
	}
	if _, ok := m.Level(); ok {
		t.Fatal("periodic message exposed a level")
	}

	long := PeriodicString("0123456789abcdef")
	if txt, _ := long.Text(); txt != "0123456789" {
		t.Fatalf("text=%q want payload-sized prefix", txt)
	}
}

func TestZeroMessageIsInvalid(t *testing.T) {
	var m Message
	if m.Kind != KindInvalid || m.Kind.String() != "invalid" {
		t.Fatalf("kind=%s", m.Kind)
	}
	if _, ok := m.Level(); ok {
		t.Fatal("zero message exposed a level")
	}
	if _, ok := m.Text(); ok {
		t.Fatal("zero message exposed text")
	}
}
