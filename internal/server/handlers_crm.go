// Package server provides the HTTP service for devacia-os.
package server

import (
	"errors"
	"net/http"

	"github.com/devacia/devacia-os/internal/store"
	"github.com/devacia/devacia-os/pkg/models"
)

// handleAddLead creates a new lead.
//
//	@Summary	Add a new lead to the CRM
//	@Tags		crm
//	@Accept		json
//	@Produce	json
//	@Param		profile	body		models.LeadProfile	true	"Lead profile"
//	@Success	200		{object}	models.Client
//	@Failure	400		{object}	errorResponse
//	@Failure	403		{object}	errorResponse
//	@Router		/crm/add-lead [post]
func (s *Service) handleAddLead(w http.ResponseWriter, r *http.Request) {
	var profile models.LeadProfile
	if err := decodeJSON(r, &profile); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if profile.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	client, err := s.clients.Add(r.Context(), profile)
	if err != nil {
		respondStorageError(w, "add lead", err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

// handleGetLeads lists all leads in creation order.
//
//	@Summary	Get all leads from the CRM
//	@Tags		crm
//	@Produce	json
//	@Success	200	{array}		models.Client
//	@Failure	403	{object}	errorResponse
//	@Router		/crm/get-leads [get]
func (s *Service) handleGetLeads(w http.ResponseWriter, r *http.Request) {
	clients, err := s.clients.ListAll(r.Context())
	if err != nil {
		respondStorageError(w, "list leads", err)
		return
	}
	if clients == nil {
		clients = []*models.Client{}
	}
	respondJSON(w, http.StatusOK, clients)
}

// pipelineResponse groups leads by status. Grouping is computed here, at the
// presentation layer; the store has no status filtering.
type pipelineResponse struct {
	Statuses []string                    `json:"statuses"`
	Groups   map[string][]*models.Client `json:"groups"`
}

// handlePipeline returns leads partitioned by status.
//
//	@Summary	Get leads grouped by status
//	@Tags		crm
//	@Produce	json
//	@Success	200	{object}	pipelineResponse
//	@Failure	403	{object}	errorResponse
//	@Router		/crm/pipeline [get]
func (s *Service) handlePipeline(w http.ResponseWriter, r *http.Request) {
	clients, err := s.clients.ListAll(r.Context())
	if err != nil {
		respondStorageError(w, "list leads", err)
		return
	}

	resp := pipelineResponse{Groups: map[string][]*models.Client{}}
	for _, c := range clients {
		if _, seen := resp.Groups[c.Status]; !seen {
			resp.Statuses = append(resp.Statuses, c.Status)
		}
		resp.Groups[c.Status] = append(resp.Groups[c.Status], c)
	}
	if resp.Statuses == nil {
		resp.Statuses = []string{}
	}
	respondJSON(w, http.StatusOK, resp)
}

// logActivityRequest is the /crm/log-activity body.
type logActivityRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// handleLogActivity appends an interaction event to the first lead whose
// name contains the query.
//
//	@Summary	Log an interaction against a lead
//	@Tags		crm
//	@Accept		json
//	@Produce	json
//	@Param		activity	body		logActivityRequest	true	"Activity"
//	@Success	200			{object}	models.Client
//	@Failure	404			{object}	errorResponse
//	@Router		/crm/log-activity [post]
func (s *Service) handleLogActivity(w http.ResponseWriter, r *http.Request) {
	var req logActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Type == "" {
		respondError(w, http.StatusBadRequest, "type is required")
		return
	}

	client, err := s.clients.LogActivity(r.Context(), req.Name, req.Type, req.Content)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Client not found")
		return
	}
	if err != nil {
		respondStorageError(w, "log activity", err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

// deleteLeadRequest is the /crm/delete-lead body.
type deleteLeadRequest struct {
	Name string `json:"name"`
}

// deleteLeadResponse reports how many leads a delete removed.
type deleteLeadResponse struct {
	Deleted int `json:"deleted"`
}

// handleDeleteLead deletes every lead whose name contains the query.
//
//	@Summary	Delete leads by name
//	@Tags		crm
//	@Accept		json
//	@Produce	json
//	@Param		lead	body		deleteLeadRequest	true	"Name query"
//	@Success	200		{object}	deleteLeadResponse
//	@Failure	404		{object}	errorResponse
//	@Router		/crm/delete-lead [delete]
func (s *Service) handleDeleteLead(w http.ResponseWriter, r *http.Request) {
	var req deleteLeadRequest
	if err := decodeJSON(r, &req); err != nil {
		// Fall back to a query parameter for callers that can't put a body
		// on DELETE.
		req.Name = r.URL.Query().Get("name")
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	removed, err := s.clients.DeleteByName(r.Context(), req.Name)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Client not found")
		return
	}
	if err != nil {
		respondStorageError(w, "delete lead", err)
		return
	}
	respondJSON(w, http.StatusOK, deleteLeadResponse{Deleted: removed})
}
