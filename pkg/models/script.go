// Package models contains domain models for devacia-os.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTone is the tone label assigned to scripts that don't specify one.
const DefaultTone = "Wolf"

// Script is a generated text artifact stored in the vault. Scripts are
// immutable once created; the vault only appends.
type Script struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tone       string    `json:"tone"`
	CreatedAt  time.Time `json:"created_at"`
}

// Normalize fills in the generated fields of a script if absent: ID,
// CreatedAt (stamped with now) and the default tone.
func (s *Script) Normalize(now time.Time) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.Tone == "" {
		s.Tone = DefaultTone
	}
}
