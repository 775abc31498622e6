package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogazub/edf-demo/internal/api"
	"github.com/gogazub/edf-demo/internal/app"
	"github.com/gogazub/edf-demo/internal/core"
	"github.com/gogazub/edf-demo/internal/gpio"
	"github.com/gogazub/edf-demo/internal/kernel"
	"github.com/gogazub/edf-demo/internal/scope"
	"github.com/gogazub/edf-demo/internal/serial"
	"github.com/gogazub/edf-demo/internal/util"
)

var channels = []scope.Channel{
	{Label: "BTN1 P0.0", Port: app.Button1Port, Pin: app.Button1Pin},
	{Label: "BTN2 P0.1", Port: app.Button2Port, Pin: app.Button2Pin},
	{Label: "LOAD1 P0.2", Port: app.Load1Port, Pin: app.Load1Pin},
	{Label: "LOAD2 P1.0", Port: app.Load2Port, Pin: app.Load2Pin},
}

func main() {
	// Конфиг
	tickUS := util.GetInt("TICK_US", 1000)
	queueSize := util.GetInt("QUEUE_SIZE", core.QueueSize)
	traceEdges := util.GetInt("TRACE_EDGES", 4096)
	addr := util.GetString("HTTP_ADDR", ":8080")
	httpOn := util.GetBool("HTTP_ENABLED", true)
	scopePath := util.GetString("SCOPE_PNG", "")

	mode, err := app.ParseMode(util.GetString("SCHED_MODE", ""))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Плата, ядро и задачи
	board := gpio.NewSim(traceEdges)
	k := kernel.New(time.Duration(tickUS) * time.Microsecond)
	d := app.Setup(k, board, serial.NewPort(os.Stdout), queueSize)
	d.Load1Budget = util.GetDuration("LOAD1_BUDGET", 0)
	d.Load2Budget = util.GetDuration("LOAD2_BUDGET", 0)

	created := app.Launch(d, mode)
	log.Printf("launcher: tasks created=%d mode=%s queue=%d", created, mode, d.Queue.Cap())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	k.Start(ctx)

	// HTTP
	h := &api.Handlers{Deps: d, Board: board, Mode: mode, Buttons: app.Buttons(), Channels: channels}
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if httpOn {
		go func() {
			log.Printf("listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("http server error: %v", err)
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)

	// Задачи выходят в ближайшей точке ожидания
	cancel()
	k.Wait()

	if scopePath != "" {
		if err := writeScope(scopePath, board.Edges()); err != nil {
			log.Printf("scope: write failed path=%s: %v", scopePath, err)
		} else {
			log.Printf("scope: written path=%s", scopePath)
		}
	}

	log.Print("shutdown complete")
}

func writeScope(path string, edges []gpio.Edge) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := scope.Render(f, edges, channels, scope.Options{}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
