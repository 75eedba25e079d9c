// Package server provides the HTTP service for devacia-os.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/devacia/devacia-os/docs" // swag-generated OpenAPI spec
)

// setupRoutes wires middleware and routes.
func (s *Service) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	// Browser frontends call this API directly from any origin; the gate is
	// the x-api-key header, not the origin.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	s.router.Use(s.instrument)

	s.router.Get("/api/health", s.handleHealth)
	s.router.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// Everything below the gate touches records.
	s.router.Group(func(r chi.Router) {
		r.Use(s.requireAPIKey)

		r.Route("/crm", func(r chi.Router) {
			r.Post("/add-lead", s.handleAddLead)
			r.Get("/get-leads", s.handleGetLeads)
			r.Get("/pipeline", s.handlePipeline)
			r.Post("/log-activity", s.handleLogActivity)
			r.Delete("/delete-lead", s.handleDeleteLead)
		})

		r.Route("/vault", func(r chi.Router) {
			r.Post("/save-script", s.handleSaveScript)
			r.Get("/get-latest-script", s.handleGetLatestScript)
		})

		r.Route("/agent", func(r chi.Router) {
			r.Post("/research", s.handleAgentResearch)
			r.Post("/create-contract", s.handleAgentCreateContract)
			r.Post("/send-packet", s.handleAgentSendPacket)
			r.Post("/send-sms", s.handleAgentSendSMS)
			r.Post("/send-whatsapp", s.handleAgentSendWhatsApp)
		})
	})
}

// healthResponse is the /api/health payload.
type healthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// handleHealth reports liveness.
//
//	@Summary	Service health
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	healthResponse
//	@Router		/api/health [get]
func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Version:       s.version,
		UptimeSeconds: int64(s.uptime().Seconds()),
	})
}
