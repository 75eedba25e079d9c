// Package server provides the HTTP service for devacia-os.
package server

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// maxBodyBytes caps request body size.
const maxBodyBytes = 1 << 20

// errorResponse mirrors the {"detail": ...} error shape existing callers
// expect.
type errorResponse struct {
	Detail string `json:"detail"`
}

// respondJSON writes v as a JSON response.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// respondError writes a {"detail": ...} error response.
func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, errorResponse{Detail: detail})
}

// respondStorageError logs a storage failure and answers 500.
func respondStorageError(w http.ResponseWriter, op string, err error) {
	log.Error().Err(err).Str("op", op).Msg("Storage operation failed")
	respondError(w, http.StatusInternalServerError, "storage failure")
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
