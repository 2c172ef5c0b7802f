package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abrezinsky/reviewwheel/internal/auth"
	"github.com/abrezinsky/reviewwheel/internal/browser"
	"github.com/abrezinsky/reviewwheel/internal/config"
	"github.com/abrezinsky/reviewwheel/internal/handlers"
	"github.com/abrezinsky/reviewwheel/internal/logger"
	"github.com/abrezinsky/reviewwheel/internal/models"
	"github.com/abrezinsky/reviewwheel/internal/repository"
	"github.com/abrezinsky/reviewwheel/internal/services"
	"github.com/abrezinsky/reviewwheel/internal/websocket"
)

const shutdownTimeout = 5 * time.Second

// Options holds the optional collaborators of an App (for testing)
type Options struct {
	Scheduler services.Scheduler
	Navigator services.Navigator
}

// App holds all application dependencies
type App struct {
	log      logger.Logger
	cfg      config.Config
	handlers *handlers.Handlers
	repo     *repository.Repository
	roulette *services.RouletteService
	hub      *websocket.Hub

	mu     sync.Mutex
	server *http.Server
	closed bool
}

// New creates and initializes a new application instance and restores the
// last saved wheel session.
func New(log logger.Logger, cfg config.Config, templatesFS, staticFS fs.FS, staffAuth *auth.Auth, opts Options) (*App, error) {
	repo, err := repository.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	roulette := services.NewRouletteService(log.With("component", "roulette"), repo, services.RouletteOptions{
		Prizes:       cfg.Prizes,
		ReviewURL:    cfg.ReviewURL,
		SpinDuration: cfg.SpinDuration,
		Scheduler:    opts.Scheduler,
	})

	// Initialize WebSocket hub with DI
	hub := websocket.New(log.With("component", "websocket"), roulette)
	hub.Start()
	roulette.SetBroadcaster(hub)

	switch {
	case opts.Navigator != nil:
		roulette.SetNavigator(opts.Navigator)
	case cfg.Navigate == config.NavigateClient:
		roulette.SetNavigator(hub)
	default:
		roulette.SetNavigator(browser.NewNavigator(log.With("component", "browser")))
	}

	snap := roulette.Restore(context.Background())
	log.Info("Wheel ready", "state", snap.State, "prizes", len(cfg.Prizes), "navigate", cfg.Navigate)

	// Create static file server
	staticServer := handlers.NewStaticServer(staticFS)

	h, err := handlers.New(roulette, templatesFS, staticServer, staffAuth, hub, log, cfg.CORSOrigins)
	if err != nil {
		hub.Stop()
		repo.Close()
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	return &App{
		log:      log,
		cfg:      cfg,
		handlers: h,
		repo:     repo,
		roulette: roulette,
		hub:      hub,
	}, nil
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// Snapshot returns the current wheel state
func (a *App) Snapshot() models.Snapshot {
	return a.roulette.Snapshot()
}

// Reset returns the wheel to IDLE for the next customer
func (a *App) Reset(ctx context.Context) models.Snapshot {
	return a.roulette.Reset(ctx)
}

// Run starts the HTTP server and blocks until it stops
func (a *App) Run(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return a.Serve(ln)
}

// Serve accepts connections on ln until Close is called
func (a *App) Serve(ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		ln.Close()
		return nil
	}
	a.server = srv
	a.mu.Unlock()

	baseURL := fmt.Sprintf("http://%s:%d", getPreferredIP(realNetworkProvider{}), listenerPort(ln))
	a.log.Info("Server starting", "url", baseURL)
	a.log.Info("Staff URL", "url", baseURL+"/staff")

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close performs graceful shutdown of app resources. Calling it again is a no-op.
func (a *App) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	srv := a.server
	a.mu.Unlock()

	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			a.log.Warn("HTTP shutdown incomplete", "error", err)
		}
	}

	a.roulette.Close()
	a.hub.Stop()
	if err := a.repo.Close(); err != nil {
		a.log.Warn("Failed to close database", "error", err)
	}
}

func listenerPort(ln net.Listener) int {
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return 0
}
