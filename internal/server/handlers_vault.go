// Package server provides the HTTP service for devacia-os.
package server

import (
	"errors"
	"net/http"

	"github.com/devacia/devacia-os/internal/store"
	"github.com/devacia/devacia-os/pkg/models"
)

// handleSaveScript appends a generated script to the vault.
//
//	@Summary	Save a generated script to the Vault
//	@Tags		vault
//	@Accept		json
//	@Produce	json
//	@Param		script	body		models.Script	true	"Script"
//	@Success	200		{object}	models.Script
//	@Failure	400		{object}	errorResponse
//	@Router		/vault/save-script [post]
func (s *Service) handleSaveScript(w http.ResponseWriter, r *http.Request) {
	var script models.Script
	if err := decodeJSON(r, &script); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if script.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}

	saved, err := s.scripts.Save(r.Context(), &script)
	if err != nil {
		respondStorageError(w, "save script", err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

// handleGetLatestScript returns the most recently created script.
//
//	@Summary	Get the most recently saved script
//	@Tags		vault
//	@Produce	json
//	@Success	200	{object}	models.Script
//	@Failure	404	{object}	errorResponse
//	@Router		/vault/get-latest-script [get]
func (s *Service) handleGetLatestScript(w http.ResponseWriter, r *http.Request) {
	script, err := s.scripts.Latest(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "No scripts found")
		return
	}
	if err != nil {
		respondStorageError(w, "latest script", err)
		return
	}
	respondJSON(w, http.StatusOK, script)
}
