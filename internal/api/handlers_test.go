package api

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gogazub/edf-demo/internal/app"
	"github.com/gogazub/edf-demo/internal/core"
	"github.com/gogazub/edf-demo/internal/gpio"
	"github.com/gogazub/edf-demo/internal/kernel"
	"github.com/gogazub/edf-demo/internal/scope"
	"github.com/gogazub/edf-demo/internal/serial"
)

type testApp struct {
	srv   *httptest.Server
	board *gpio.Sim
	deps  app.Deps
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	board := gpio.NewSim(64)
	d := app.Setup(kernel.New(time.Millisecond), board, &serial.Recorder{}, core.QueueSize)
	app.Launch(d, app.ModeEDF)

	h := &Handlers{
		Deps:    d,
		Board:   board,
		Mode:    app.ModeEDF,
		Buttons: app.Buttons(),
		Channels: []scope.Channel{
			{Label: "BTN1", Port: app.Button1Port, Pin: app.Button1Pin},
		},
	}
	srv := httptest.NewServer(h.Mux())
	t.Cleanup(srv.Close)
	return &testApp{srv: srv, board: board, deps: d}
}

func press(t *testing.T, baseURL string, body any) *http.Response {
	t.Helper()
	raw, _ := json.Marshal(body)
	resp, err := http.Post(baseURL+"/buttons", "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	return resp
}

func TestHealthz(t *testing.T) {
	a := newTestApp(t)
	resp, err := http.Get(a.srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=200", resp.StatusCode)
	}
}

func TestPressDrivesPin(t *testing.T) {
	a := newTestApp(t)

	resp := press(t, a.srv.URL, PressRequest{Button: 2, Level: 1})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status=%d want=202", resp.StatusCode)
	}
	var out PressResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Button != 2 || out.Level != "high" {
		t.Fatalf("resp=%+v", out)
	}
	if a.board.Read(app.Button2Port, app.Button2Pin) != gpio.High {
		t.Fatal("button 2 pin not high")
	}
	if a.board.Read(app.Button1Port, app.Button1Pin) != gpio.Low {
		t.Fatal("button 1 pin changed")
	}
}

func TestPressRejectsBadInput(t *testing.T) {
	a := newTestApp(t)
	cases := []struct {
		name string
		body any
	}{
		{"unknown button", PressRequest{Button: 3, Level: 1}},
		{"bad level", PressRequest{Button: 1, Level: 2}},
		{"bad json", "not an object"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resp := press(t, a.srv.URL, c.body)
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status=%d want=400", resp.StatusCode)
			}
		})
	}

	resp, err := http.Get(a.srv.URL + "/buttons")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("GET /buttons status=%d want=405", resp.StatusCode)
	}
}

func TestStats(t *testing.T) {
	a := newTestApp(t)
	a.deps.Stats.Inc(app.ReceiverName, core.CounterReceived)

	resp, err := http.Get(a.srv.URL + "/stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	defer resp.Body.Close()
	var out StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.BootID != a.deps.Kernel.ID().String() || out.Mode != "edf" {
		t.Fatalf("boot=%s mode=%s", out.BootID, out.Mode)
	}
	if out.QueueCap != core.QueueSize || out.QueueDepth != 0 {
		t.Fatalf("queue depth=%d cap=%d", out.QueueDepth, out.QueueCap)
	}
	if len(out.Tasks) != 6 {
		t.Fatalf("tasks=%d want=6", len(out.Tasks))
	}
	var found bool
	for _, ts := range out.Tasks {
		if ts.Name == app.ReceiverName {
			found = true
			if ts.Counters.Received != 1 || ts.Period != 20 {
				t.Fatalf("receiver=%+v", ts)
			}
		}
	}
	if !found {
		t.Fatal("receiver missing from stats")
	}
}

func TestScopePNG(t *testing.T) {
	a := newTestApp(t)
	a.board.Set(app.Button1Port, app.Button1Pin, gpio.High)
	a.board.Set(app.Button1Port, app.Button1Pin, gpio.Low)

	resp, err := http.Get(a.srv.URL + "/scope.png")
	if err != nil {
		t.Fatalf("scope: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content-type=%q", ct)
	}
	if _, err := png.Decode(resp.Body); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestWrongMethodRejected(t *testing.T) {
	a := newTestApp(t)
	for _, path := range []string{"/scope.png", "/stats"} {
		resp, err := http.Post(a.srv.URL+path, "application/json", bytes.NewReader([]byte("{}")))
		if err != nil {
			t.Fatalf("post %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Fatalf("POST %s status=%d want=405", path, resp.StatusCode)
		}
	}
}
