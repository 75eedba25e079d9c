// Package models contains domain models for devacia-os.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the fixed-precision local date-time format used for
// interaction timestamps. Seconds resolution, local time.
const TimestampLayout = "2006-01-02 15:04:05"

// Well-known interaction types. The set is open; these are the ones the
// service itself writes.
const (
	InteractionTypeSystem   = "System"
	InteractionTypeEmail    = "Email"
	InteractionTypeSMS      = "SMS"
	InteractionTypeWhatsApp = "WhatsApp"
)

// StatusLead is the default status assigned to new clients.
const StatusLead = "Lead"

// Interaction is a single timestamped event in a client's history.
// The timestamp is assigned at append time by the store, never by the caller.
type Interaction struct {
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Content   string `json:"content"`
}

// Client is a tracked contact with profile fields and an append-only
// event history. History insertion order is chronological order.
type Client struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Company   string        `json:"company"`
	PainPoint string        `json:"pain_point"`
	Status    string        `json:"status"`
	History   []Interaction `json:"history"`
}

// LeadProfile is the caller-supplied portion of a client record.
// Notes is accepted for compatibility with the deprecated schema generation
// that carried a notes field instead of a history; it is folded into the
// creation event and not stored as a field of its own.
type LeadProfile struct {
	Name      string `json:"name"`
	Company   string `json:"company"`
	PainPoint string `json:"pain_point"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
}

// NewClient creates a client record from a profile. It assigns a fresh ID
// and initializes the history with exactly one System creation event stamped
// with now.
func NewClient(profile LeadProfile, now time.Time) *Client {
	status := profile.Status
	if status == "" {
		status = StatusLead
	}

	content := "Lead created"
	if profile.Notes != "" {
		content += ": " + profile.Notes
	}

	return &Client{
		ID:        uuid.NewString(),
		Name:      profile.Name,
		Company:   profile.Company,
		PainPoint: profile.PainPoint,
		Status:    status,
		History: []Interaction{{
			Timestamp: now.Format(TimestampLayout),
			Type:      InteractionTypeSystem,
			Content:   content,
		}},
	}
}

// NewInteraction creates an interaction stamped with now.
func NewInteraction(eventType, content string, now time.Time) Interaction {
	return Interaction{
		Timestamp: now.Format(TimestampLayout),
		Type:      eventType,
		Content:   content,
	}
}

// MatchesName reports whether the client matches a name query.
//
// The matching policy is a case-insensitive substring match against Name.
// A query may match zero, one, or several clients ("Ann" matches both "Ann"
// and "Anna"); callers take the first match for logging and all matches for
// deletion. This is kept for compatibility with existing callers; exact
// match by ID is the likely long-term direction.
func (c *Client) MatchesName(query string) bool {
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(query))
}

// AppendInteraction appends an event to the client's history.
func (c *Client) AppendInteraction(ev Interaction) {
	c.History = append(c.History, ev)
}
