package serial

import (
	"bufio"
	"io"
	"sync"
)

// Sink is the serial output contract. PutString transmits exactly the bytes
// given; framing is the sink's concern.
type Sink interface {
	PutString(b []byte)
}

// Port writes each PutString as one CRLF-terminated line to w.
type Port struct {
	mu sync.Mutex
	w  *bufio.Writer
}

func NewPort(w io.Writer) *Port {
	return &Port{w: bufio.NewWriter(w)}
}

func (p *Port) PutString(b []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	// A UART has nowhere to report a failed write either.
	_, _ = p.w.Write(b)
	_, _ = p.w.WriteString("\r\n")
	_ = p.w.Flush()
}

// Recorder keeps every transmitted string in memory.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *Recorder) PutString(b []byte) {
	r.mu.Lock()
	r.lines = append(r.lines, string(b))
	r.mu.Unlock()
}

// Lines returns a copy of everything transmitted so far.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}
