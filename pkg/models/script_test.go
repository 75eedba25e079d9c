// Package models contains domain models for devacia-os.
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScriptNormalize(t *testing.T) {
	now := time.Date(2025, 11, 30, 14, 30, 0, 0, time.Local)

	script := &Script{
		ClientName: "John Doe",
		Title:      "Cold Email",
		Content:    "Hello John...",
	}
	script.Normalize(now)

	assert.NotEmpty(t, script.ID)
	assert.Equal(t, DefaultTone, script.Tone)
	assert.Equal(t, now, script.CreatedAt)
}

func TestScriptNormalize_PreservesExisting(t *testing.T) {
	now := time.Date(2025, 11, 30, 14, 30, 0, 0, time.Local)
	earlier := now.Add(-time.Hour)

	script := &Script{
		ID:        "fixed-id",
		Tone:      "Calm",
		CreatedAt: earlier,
	}
	script.Normalize(now)

	assert.Equal(t, "fixed-id", script.ID)
	assert.Equal(t, "Calm", script.Tone)
	assert.Equal(t, earlier, script.CreatedAt)
}
