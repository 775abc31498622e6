package core

import (
	"sort"
	"sync"
)

// Counters are the liveness counts of one task. A counter only moves when the
// task completed that step successfully.
type Counters struct {
	Activations uint64 `json:"activations"`
	Sent        uint64 `json:"sent"`
	Dropped     uint64 `json:"dropped"`
	Received    uint64 `json:"received"`
	Rendered    uint64 `json:"rendered"`
}

type Counter int

const (
	CounterActivations Counter = iota
	CounterSent
	CounterDropped
	CounterReceived
	CounterRendered
)

// Stats holds per-task counters keyed by task name.
type Stats struct {
	mu    sync.RWMutex
	tasks map[string]*Counters
}

func NewStats() *Stats {
	return &Stats{tasks: make(map[string]*Counters)}
}

// Register заводит нулевые счётчики для name. Возвращает true, если создали.
func (s *Stats) Register(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[name]; ok {
		return false
	}
	s.tasks[name] = &Counters{}
	return true
}

func (s *Stats) Inc(name string, c Counter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[name]
	if !ok {
		t = &Counters{}
		s.tasks[name] = t
	}
	switch c {
	case CounterActivations:
		t.Activations++
	case CounterSent:
		t.Sent++
	case CounterDropped:
		t.Dropped++
	case CounterReceived:
		t.Received++
	case CounterRendered:
		t.Rendered++
	}
}

func (s *Stats) Get(name string) (Counters, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[name]
	if !ok {
		return Counters{}, false
	}
	return *t, true
}

// Names returns the registered task names in lexical order.
func (s *Stats) Names() []string {
	s.mu.RLock()
	out := make([]string, 0, len(s.tasks))
	for name := range s.tasks {
		out = append(out, name)
	}
	s.mu.RUnlock()
	sort.Strings(out)
	return out
}

func (s *Stats) Snapshot() map[string]Counters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Counters, len(s.tasks))
	for name, t := range s.tasks {
		out[name] = *t
	}
	return out
}
