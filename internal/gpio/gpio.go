package gpio

import (
	"sync"
	"time"
)

type Port uint8

type Pin uint8

// Level is a binary pin level.
type Level uint8

const (
	Low  Level = 0
	High Level = 1
)

const (
	Port0 Port = 0
	Port1 Port = 1
)

func (l Level) String() string {
	if l == High {
		return "high"
	}
	return "low"
}

// Driver is the board's digital I/O contract.
type Driver interface {
	Read(port Port, pin Pin) Level
	Write(port Port, pin Pin, level Level)
}

// Edge is one recorded level transition.
type Edge struct {
	Port  Port
	Pin   Pin
	Level Level
	At    time.Time
}

type pinKey struct {
	port Port
	pin  Pin
}

// Sim is an in-memory pin bank. Every level change, whether written by a task
// or injected from outside with Set, is appended to a bounded edge trace.
type Sim struct {
	mu       sync.RWMutex
	levels   map[pinKey]Level
	edges    []Edge
	traceCap int
	now      func() time.Time
}

func NewSim(traceCap int) *Sim {
	if traceCap < 0 {
		traceCap = 0
	}
	return &Sim{
		levels:   make(map[pinKey]Level),
		traceCap: traceCap,
		now:      time.Now,
	}
}

func (s *Sim) Read(port Port, pin Pin) Level {
	s.mu.RLock()
	l := s.levels[pinKey{port, pin}]
	s.mu.RUnlock()
	return l
}

func (s *Sim) Write(port Port, pin Pin, level Level) {
	s.set(port, pin, level)
}

// Set drives an input pin from outside the board, e.g. a button press.
func (s *Sim) Set(port Port, pin Pin, level Level) {
	s.set(port, pin, level)
}

func (s *Sim) set(port Port, pin Pin, level Level) {
	if level != Low {
		level = High
	}
	k := pinKey{port, pin}

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.levels[k]; ok && prev == level {
		return
	}
	s.levels[k] = level
	if s.traceCap == 0 {
		return
	}
	if len(s.edges) == s.traceCap {
		copy(s.edges, s.edges[1:])
		s.edges = s.edges[:len(s.edges)-1]
	}
	s.edges = append(s.edges, Edge{Port: port, Pin: pin, Level: level, At: s.now()})
}

// Edges returns a copy of the recorded trace, oldest first.
func (s *Sim) Edges() []Edge {
	s.mu.RLock()
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)
	s.mu.RUnlock()
	return out
}
