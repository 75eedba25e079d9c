// Package server provides the HTTP service for devacia-os.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/devacia/devacia-os/internal/store"
	"github.com/devacia/devacia-os/pkg/models"
)

// logOutcome records an agent outcome against the first matching client.
// A name that matches no client is fine (research can target prospects not
// yet in the CRM); a storage failure is logged but does not fail the agent
// call, which already succeeded.
func (s *Service) logOutcome(ctx context.Context, clientName, eventType, content string) {
	_, err := s.clients.LogActivity(ctx, clientName, eventType, content)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Error().Err(err).Str("client", clientName).Msg("Failed to log agent outcome")
	}
}

// researchResponse is the /agent/research payload.
type researchResponse struct {
	Report string `json:"report"`
	PDF    string `json:"pdf"`
}

// handleAgentResearch researches a client and renders a dossier PDF.
//
//	@Summary	Research a client and generate a dossier PDF
//	@Tags		agent
//	@Produce	json
//	@Param		client_name	query		string	true	"Client name"
//	@Success	200			{object}	researchResponse
//	@Failure	502			{object}	errorResponse
//	@Router		/agent/research [post]
func (s *Service) handleAgentResearch(w http.ResponseWriter, r *http.Request) {
	clientName := r.URL.Query().Get("client_name")
	if clientName == "" {
		respondError(w, http.StatusBadRequest, "client_name is required")
		return
	}

	report, err := s.research.Lookup(r.Context(), clientName)
	s.metrics.recordAgentCall(r.Context(), "research", err)
	if err != nil {
		log.Error().Err(err).Str("client", clientName).Msg("Research lookup failed")
		respondError(w, http.StatusBadGateway, "research failed: "+err.Error())
		return
	}

	pdfPath, err := s.pdf.RenderDossier(clientName, report)
	if err != nil {
		log.Error().Err(err).Str("client", clientName).Msg("Dossier rendering failed")
		respondError(w, http.StatusInternalServerError, "pdf generation failed")
		return
	}

	s.logOutcome(r.Context(), clientName, models.InteractionTypeSystem, "Research dossier generated")
	respondJSON(w, http.StatusOK, researchResponse{Report: report, PDF: pdfPath})
}

// contractResponse is the /agent/create-contract payload.
type contractResponse struct {
	PDF string `json:"pdf"`
}

// handleAgentCreateContract renders a service contract PDF.
//
//	@Summary	Generate a contract PDF for a client
//	@Tags		agent
//	@Produce	json
//	@Param		client_name		query		string	true	"Client name"
//	@Param		service_name	query		string	true	"Service"
//	@Param		price			query		string	true	"Price"
//	@Success	200				{object}	contractResponse
//	@Router		/agent/create-contract [post]
func (s *Service) handleAgentCreateContract(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	clientName := q.Get("client_name")
	serviceName := q.Get("service_name")
	price := q.Get("price")
	if clientName == "" || serviceName == "" || price == "" {
		respondError(w, http.StatusBadRequest, "client_name, service_name and price are required")
		return
	}

	pdfPath, err := s.pdf.RenderContract(clientName, serviceName, price)
	if err != nil {
		log.Error().Err(err).Str("client", clientName).Msg("Contract rendering failed")
		respondError(w, http.StatusInternalServerError, "pdf generation failed")
		return
	}

	s.logOutcome(r.Context(), clientName, models.InteractionTypeSystem,
		fmt.Sprintf("Contract generated: %s at %s", serviceName, price))
	respondJSON(w, http.StatusOK, contractResponse{PDF: pdfPath})
}

// sentResponse acknowledges a delivery.
type sentResponse struct {
	Sent bool `json:"sent"`
}

// handleAgentSendPacket emails a previously generated document to a client.
// A delivery failure surfaces as 502; the generated artifact is not rolled
// back.
//
//	@Summary	Email a generated document to a client
//	@Tags		agent
//	@Produce	json
//	@Param		client_email	query		string	true	"Recipient"
//	@Param		client_name		query		string	true	"Client name"
//	@Param		doc_type		query		string	false	"contract or dossier"
//	@Success	200				{object}	sentResponse
//	@Failure	502				{object}	errorResponse
//	@Router		/agent/send-packet [post]
func (s *Service) handleAgentSendPacket(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	clientEmail := q.Get("client_email")
	clientName := q.Get("client_name")
	if clientEmail == "" || clientName == "" {
		respondError(w, http.StatusBadRequest, "client_email and client_name are required")
		return
	}

	docType := q.Get("doc_type")
	switch docType {
	case "", "contract":
		docType = "contract"
	case "research", "dossier":
		docType = "dossier"
	default:
		respondError(w, http.StatusBadRequest, "doc_type must be contract or dossier")
		return
	}

	// Attach the document if it has been generated; the packet still goes
	// out without one.
	attachment := s.pdf.DocumentPath(docType, clientName)
	if _, err := os.Stat(attachment); err != nil {
		attachment = ""
	}

	subject := fmt.Sprintf("Your %s from Devacia", docType)
	body := fmt.Sprintf("Hi %s,\n\nPlease find your %s attached.\n\n- Devacia", clientName, docType)

	err := s.mailer.SendEmail(r.Context(), clientEmail, subject, body, attachment)
	s.metrics.recordAgentCall(r.Context(), "email", err)
	if err != nil {
		log.Error().Err(err).Str("client", clientName).Msg("Packet delivery failed")
		respondError(w, http.StatusBadGateway, "email delivery failed: "+err.Error())
		return
	}

	s.logOutcome(r.Context(), clientName, models.InteractionTypeEmail,
		fmt.Sprintf("Sent %s packet to %s", docType, clientEmail))
	respondJSON(w, http.StatusOK, sentResponse{Sent: true})
}

// handleAgentSendSMS sends a text message and logs it.
//
//	@Summary	Send an SMS to a client
//	@Tags		agent
//	@Produce	json
//	@Param		client_name	query		string	true	"Client name"
//	@Param		phone		query		string	true	"Phone number"
//	@Param		message		query		string	true	"Message"
//	@Success	200			{object}	sentResponse
//	@Failure	502			{object}	errorResponse
//	@Router		/agent/send-sms [post]
func (s *Service) handleAgentSendSMS(w http.ResponseWriter, r *http.Request) {
	s.handleSendText(w, r, "sms")
}

// handleAgentSendWhatsApp sends a WhatsApp message and logs it.
//
//	@Summary	Send a WhatsApp message to a client
//	@Tags		agent
//	@Produce	json
//	@Param		client_name	query		string	true	"Client name"
//	@Param		phone		query		string	true	"Phone number"
//	@Param		message		query		string	true	"Message"
//	@Success	200			{object}	sentResponse
//	@Failure	502			{object}	errorResponse
//	@Router		/agent/send-whatsapp [post]
func (s *Service) handleAgentSendWhatsApp(w http.ResponseWriter, r *http.Request) {
	s.handleSendText(w, r, "whatsapp")
}

func (s *Service) handleSendText(w http.ResponseWriter, r *http.Request, channel string) {
	q := r.URL.Query()
	clientName := q.Get("client_name")
	phone := q.Get("phone")
	message := q.Get("message")
	if clientName == "" || phone == "" || message == "" {
		respondError(w, http.StatusBadRequest, "client_name, phone and message are required")
		return
	}

	var (
		err       error
		eventType string
	)
	switch channel {
	case "sms":
		err = s.texter.SendSMS(r.Context(), phone, message)
		eventType = models.InteractionTypeSMS
	case "whatsapp":
		err = s.texter.SendWhatsApp(r.Context(), phone, message)
		eventType = models.InteractionTypeWhatsApp
	}
	s.metrics.recordAgentCall(r.Context(), channel, err)
	if err != nil {
		log.Error().Err(err).Str("client", clientName).Str("channel", channel).Msg("Message delivery failed")
		respondError(w, http.StatusBadGateway, "message delivery failed: "+err.Error())
		return
	}

	s.logOutcome(r.Context(), clientName, eventType, message)
	respondJSON(w, http.StatusOK, sentResponse{Sent: true})
}
