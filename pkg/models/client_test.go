// Package models contains domain models for devacia-os.
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// ClientSuite is a test suite for Client operations.
type ClientSuite struct {
	suite.Suite
	now time.Time
}

func (s *ClientSuite) SetupTest() {
	s.now = time.Date(2025, 11, 30, 14, 30, 5, 0, time.Local)
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

// TestNewClient tests client creation and the creation event invariant.
func (s *ClientSuite) TestNewClient() {
	client := NewClient(LeadProfile{
		Name:      "John Doe",
		Company:   "Acme Corp",
		PainPoint: "Low sales",
	}, s.now)

	s.NotEmpty(client.ID)
	s.Equal("John Doe", client.Name)
	s.Equal("Acme Corp", client.Company)
	s.Equal("Low sales", client.PainPoint)
	s.Equal(StatusLead, client.Status)

	s.Require().Len(client.History, 1)
	s.Equal(InteractionTypeSystem, client.History[0].Type)
	s.Equal("2025-11-30 14:30:05", client.History[0].Timestamp)
}

// TestNewClient_UniqueIDs tests that each client gets a fresh ID.
func (s *ClientSuite) TestNewClient_UniqueIDs() {
	a := NewClient(LeadProfile{Name: "A"}, s.now)
	b := NewClient(LeadProfile{Name: "B"}, s.now)
	s.NotEqual(a.ID, b.ID)
}

// TestNewClient_StatusPreserved tests that a supplied status is kept.
func (s *ClientSuite) TestNewClient_StatusPreserved() {
	client := NewClient(LeadProfile{Name: "Jane", Status: "VIP"}, s.now)
	s.Equal("VIP", client.Status)
}

// TestNewClient_NotesFolded tests that a legacy notes field is folded into
// the creation event rather than stored as a field.
func (s *ClientSuite) TestNewClient_NotesFolded() {
	client := NewClient(LeadProfile{
		Name:  "Jane",
		Notes: "Interested in AI",
	}, s.now)

	s.Require().Len(client.History, 1)
	s.Contains(client.History[0].Content, "Interested in AI")
}

// TestMatchesName tests the substring matching policy.
func (s *ClientSuite) TestMatchesName() {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "John Doe", query: "john", want: true},
		{name: "John Doe", query: "DOE", want: true},
		{name: "John Doe", query: "ohn d", want: true},
		{name: "Anna", query: "Ann", want: true},
		{name: "Ann", query: "Anna", want: false},
		{name: "John Doe", query: "smith", want: false},
	}

	for _, tt := range tests {
		s.Run(tt.name+"/"+tt.query, func() {
			c := &Client{Name: tt.name}
			s.Equal(tt.want, c.MatchesName(tt.query))
		})
	}
}

// TestAppendInteraction tests that history order is insertion order.
func (s *ClientSuite) TestAppendInteraction() {
	client := NewClient(LeadProfile{Name: "Jane"}, s.now)
	client.AppendInteraction(NewInteraction(InteractionTypeEmail, "Sent pitch", s.now.Add(time.Minute)))
	client.AppendInteraction(NewInteraction(InteractionTypeSMS, "Followed up", s.now.Add(2*time.Minute)))

	s.Require().Len(client.History, 3)
	s.Equal(InteractionTypeSystem, client.History[0].Type)
	s.Equal(InteractionTypeEmail, client.History[1].Type)
	s.Equal(InteractionTypeSMS, client.History[2].Type)
	s.LessOrEqual(client.History[1].Timestamp, client.History[2].Timestamp)
}
