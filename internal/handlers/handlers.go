package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/abrezinsky/reviewwheel/internal/auth"
	"github.com/abrezinsky/reviewwheel/internal/services"
	"github.com/abrezinsky/reviewwheel/internal/websocket"
)

// NewStaticServer creates a static file server from an fs.FS
func NewStaticServer(staticFS fs.FS) http.Handler {
	return http.FileServer(http.FS(staticFS))
}

// Templates holds all parsed HTML templates
type Templates struct {
	Index      *template.Template
	StaffLogin *template.Template
	StaffPanel *template.Template
}

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Roulette     services.RouletteServicer
	Auth         *auth.Auth
	Hub          *websocket.Hub
	Log          HTTPLogger
	CORSOrigins  []string
	templates    *Templates
	staticServer http.Handler
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// New creates a new Handlers instance with all dependencies
func New(
	roulette services.RouletteServicer,
	templatesFS fs.FS,
	staticServer http.Handler,
	staffAuth *auth.Auth,
	hub *websocket.Hub,
	log HTTPLogger,
	corsOrigins []string,
) (*Handlers, error) {
	templates, err := loadTemplates(templatesFS)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return &Handlers{
		Roulette:     roulette,
		Auth:         staffAuth,
		Hub:          hub,
		Log:          log,
		CORSOrigins:  corsOrigins,
		templates:    templates,
		staticServer: staticServer,
	}, nil
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }

// NewForTesting creates a Handlers instance without loading templates (for testing API endpoints)
func NewForTesting(roulette services.RouletteServicer) *Handlers {
	return &Handlers{
		Roulette: roulette,
		Auth:     auth.New("test-password"),
		Log:      NoopHTTPLogger{},
		// templates left nil - API endpoints don't use templates
	}
}

// loadTemplates parses all templates once at startup
func loadTemplates(templatesFS fs.FS) (*Templates, error) {
	t := &Templates{}
	var err error

	if t.Index, err = template.ParseFS(templatesFS, "index.html"); err != nil {
		return nil, fmt.Errorf("index template: %w", err)
	}
	if t.StaffLogin, err = template.ParseFS(templatesFS, "staff/login.html"); err != nil {
		return nil, fmt.Errorf("staff login template: %w", err)
	}
	if t.StaffPanel, err = template.ParseFS(templatesFS, "staff/panel.html"); err != nil {
		return nil, fmt.Errorf("staff panel template: %w", err)
	}

	return t, nil
}
