package gpio

import "testing"

func TestSimRecordsTransitionsOnly(t *testing.T) {
	s := NewSim(16)
	if s.Read(Port0, 3) != Low {
		t.Fatal("unset pin is not low")
	}

	s.Write(Port0, 2, High)
	s.Write(Port0, 2, High)
	s.Write(Port0, 2, Low)
	s.Set(Port1, 0, Level(5))

	if s.Read(Port0, 2) != Low || s.Read(Port1, 0) != High {
		t.Fatalf("levels p0.2=%s p1.0=%s", s.Read(Port0, 2), s.Read(Port1, 0))
	}

	edges := s.Edges()
	if len(edges) != 3 {
		t.Fatalf("edges=%d want=3", len(edges))
	}
	want := []Level{High, Low, High}
	for i, e := range edges {
		if e.Level != want[i] {
			t.Fatalf("edge %d level=%s want=%s", i, e.Level, want[i])
		}
		if i > 0 && e.At.Before(edges[i-1].At) {
			t.Fatalf("edge %d out of order", i)
		}
	}
}

func TestSimTraceIsBounded(t *testing.T) {
	s := NewSim(4)
	for i := 0; i < 10; i++ {
		s.Write(Port0, 0, Level(i%2))
	}
	edges := s.Edges()
	if len(edges) != 4 {
		t.Fatalf("edges=%d want=4", len(edges))
	}
	// Oldest edges are discarded; the last write was high.
	if edges[3].Level != High || edges[2].Level != Low {
		t.Fatalf("tail=%v", edges[2:])
	}

	off := NewSim(0)
	off.Write(Port0, 0, High)
	if len(off.Edges()) != 0 || off.Read(Port0, 0) != High {
		t.Fatal("trace-less sim misbehaved")
	}
}
