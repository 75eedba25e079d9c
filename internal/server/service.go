// Package server provides the HTTP service for devacia-os: the auth gate,
// CRM and vault routes, and the agent endpoints that drive the external tool
// adapters.
package server

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/devacia/devacia-os/internal/agent/pdfgen"
	"github.com/devacia/devacia-os/internal/config"
	"github.com/devacia/devacia-os/internal/store"
)

// Researcher is the web research capability used by the agent endpoints.
type Researcher interface {
	Lookup(ctx context.Context, query string) (string, error)
}

// Mailer is the email delivery capability.
type Mailer interface {
	SendEmail(ctx context.Context, to, subject, body, attachmentPath string) error
}

// Texter is the SMS/WhatsApp delivery capability.
type Texter interface {
	SendSMS(ctx context.Context, to, body string) error
	SendWhatsApp(ctx context.Context, to, body string) error
}

// Service is the devacia-os HTTP service.
type Service struct {
	version   string
	cfg       *config.Config
	apiKey    atomic.Value // string; swapped by the config watcher
	clients   store.ClientStore
	scripts   store.ScriptStore
	research  Researcher
	pdf       *pdfgen.Renderer
	mailer    Mailer
	texter    Texter
	router    chi.Router
	metrics   *serviceMetrics
	startTime time.Time
}

// New creates the service and wires its routes.
func New(version string, cfg *config.Config, clients store.ClientStore, scripts store.ScriptStore,
	research Researcher, pdf *pdfgen.Renderer, mailer Mailer, texter Texter) *Service {

	s := &Service{
		version:   version,
		cfg:       cfg,
		clients:   clients,
		scripts:   scripts,
		research:  research,
		pdf:       pdf,
		mailer:    mailer,
		texter:    texter,
		router:    chi.NewRouter(),
		metrics:   newServiceMetrics(),
		startTime: time.Now(),
	}
	s.apiKey.Store(cfg.APIKey)
	s.setupRoutes()
	return s
}

// Handler returns the HTTP handler for the service.
func (s *Service) Handler() http.Handler {
	return s.router
}

// SetAPIKey swaps the shared secret. Called by the config watcher on reload.
func (s *Service) SetAPIKey(key string) {
	s.apiKey.Store(key)
}

// currentAPIKey returns the active shared secret.
func (s *Service) currentAPIKey() string {
	key, _ := s.apiKey.Load().(string)
	return key
}

// uptime reports how long the service has been running.
func (s *Service) uptime() time.Duration {
	return time.Since(s.startTime)
}
