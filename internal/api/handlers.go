package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gogazub/edf-demo/internal/app"
	"github.com/gogazub/edf-demo/internal/gpio"
	"github.com/gogazub/edf-demo/internal/scope"
)

var (
	ErrInvalidButton = errors.New("invalid button")
	ErrInvalidLevel  = errors.New("invalid level")
)

// Handlers expose the simulated board over HTTP.
type Handlers struct {
	Deps     app.Deps
	Board    *gpio.Sim
	Mode     app.Mode
	Buttons  []app.Button
	Channels []scope.Channel
}

// Press drives a button's input pin.
func (h *Handlers) Press(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req PressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	b, level, err := h.resolve(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Уровень меняется сразу; монитор кнопки увидит его на следующем опросе
	h.Board.Set(b.Port, b.Pin, level)
	log.Printf("api: button set button=%d level=%s", b.Number, level)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(PressResponse{Button: b.Number, Level: level.String()})
}

func (h *Handlers) resolve(req PressRequest) (app.Button, gpio.Level, error) {
	var level gpio.Level
	switch req.Level {
	case 0:
		level = gpio.Low
	case 1:
		level = gpio.High
	default:
		return app.Button{}, 0, fmt.Errorf("%w: %d", ErrInvalidLevel, req.Level)
	}
	for _, b := range h.Buttons {
		if b.Number == req.Button {
			return b, level, nil
		}
	}
	return app.Button{}, 0, fmt.Errorf("%w: %d", ErrInvalidButton, req.Button)
}

func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	resp := StatsResponse{
		BootID:     h.Deps.Kernel.ID().String(),
		Mode:       h.Mode.String(),
		QueueDepth: h.Deps.Queue.Len(),
		QueueCap:   h.Deps.Queue.Cap(),
	}
	for _, t := range h.Deps.Kernel.Tasks() {
		c, _ := h.Deps.Stats.Get(t.Name)
		resp.Tasks = append(resp.Tasks, TaskStats{
			Name:     t.Name,
			Priority: t.Priority,
			Period:   uint32(t.Period),
			Counters: c,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// Scope renders the recorded pin trace.
func (h *Handlers) Scope(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var buf bytes.Buffer
	if err := scope.Render(&buf, h.Board.Edges(), h.Channels, scope.Options{}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(buf.Bytes())
}

func (h *Handlers) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Mux routes every handler.
func (h *Handlers) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/buttons", h.Press)
	mux.HandleFunc("/stats", h.Stats)
	mux.HandleFunc("/scope.png", h.Scope)
	mux.HandleFunc("/healthz", h.Healthz)
	return mux
}
