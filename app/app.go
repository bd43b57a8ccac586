// Package app wires configuration, signal handling and the server
// into a runnable application.
package app

import (
	"log"
	"syscall"

	"github.com/crustyrustacean/flux-http/config"
	"github.com/crustyrustacean/flux-http/core"
	"github.com/crustyrustacean/flux-http/core/http"
	"github.com/crustyrustacean/flux-http/core/shutdown"
	"github.com/crustyrustacean/flux-http/internal/obs"
)

// App is the application instance.
type App struct {
	cfg    *config.Config
	flag   *shutdown.Flag
	server *core.Server
}

// New creates an application instance from cfg.
func New(cfg *config.Config) *App {
	flag := &shutdown.Flag{}

	server := &core.Server{
		Host:                cfg.Host,
		Port:                cfg.Port,
		PollInterval:        cfg.PollInterval,
		ReadTimeout:         cfg.ReadTimeout,
		ReadBufferSize:      cfg.ReadBufferSize,
		UseReadinessPolling: cfg.ReadinessPolling,
		Shutdown:            flag,
		Logger:              obs.StdLogger{L: log.Default(), Min: obs.Info},
		Meter:               obs.NopMeter{},
	}

	return &App{
		cfg:    cfg,
		flag:   flag,
		server: server,
	}
}

// Server returns the underlying server, e.g. to set its Handler.
func (a *App) Server() *core.Server {
	return a.server
}

// SetHandler sets the response hook for valid requests.
func (a *App) SetHandler(h http.Handler) {
	a.server.Handler = h
}

// Run starts the server and blocks until cooperative shutdown or a
// fatal transport error, which exits the process via the error stream.
func (a *App) Run() {
	stop := shutdown.Notify(a.flag, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("flux-http starting on %s:%d", a.cfg.Host, a.cfg.Port)

	if err := a.server.ListenAndServe(); err != nil {
		log.Fatalf("server failed: %v", err)
	}

	log.Printf("flux-http stopped")
}
