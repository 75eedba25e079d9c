// Package gormstore provides the relational backend for devacia-os.
package gormstore

import (
	"time"

	"github.com/devacia/devacia-os/pkg/models"
)

// GORM models. RowID gives storage (creation) order; ClientID/ScriptID carry
// the opaque domain identifiers.

// ClientRecord is a stored client row.
type ClientRecord struct {
	RowID     int64  `gorm:"primaryKey;autoIncrement"`
	ClientID  string `gorm:"uniqueIndex;not null"`
	Name      string `gorm:"index;not null"`
	Company   string
	PainPoint string
	Status    string             `gorm:"index;default:'Lead'"`
	History   []InteractionEvent `gorm:"foreignKey:ClientRowID;constraint:OnDelete:CASCADE"`
}

func (ClientRecord) TableName() string { return "clients" }

// InteractionEvent is a stored history event. Rows are append-only; event ID
// order is chronological order within a client.
type InteractionEvent struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	ClientRowID int64  `gorm:"index;not null"`
	Timestamp   string `gorm:"not null"`
	Type        string `gorm:"not null"`
	Content     string
}

func (InteractionEvent) TableName() string { return "interaction_events" }

// ScriptRecord is a stored vault script. CreatedAtEpoch exists so "latest"
// is an ordering query instead of a scan.
type ScriptRecord struct {
	RowID          int64  `gorm:"primaryKey;autoIncrement"`
	ScriptID       string `gorm:"uniqueIndex;not null"`
	ClientName     string `gorm:"index"`
	Title          string
	Content        string
	Tone           string
	CreatedAt      string `gorm:"not null"`
	CreatedAtEpoch int64  `gorm:"index:idx_scripts_created,sort:desc;not null"`
}

func (ScriptRecord) TableName() string { return "scripts" }

// toClientRecord converts a domain client to its stored form.
func toClientRecord(c *models.Client) *ClientRecord {
	rec := &ClientRecord{
		ClientID:  c.ID,
		Name:      c.Name,
		Company:   c.Company,
		PainPoint: c.PainPoint,
		Status:    c.Status,
	}
	for _, ev := range c.History {
		rec.History = append(rec.History, InteractionEvent{
			Timestamp: ev.Timestamp,
			Type:      ev.Type,
			Content:   ev.Content,
		})
	}
	return rec
}

// toModelClient converts a stored row back to the domain model.
func toModelClient(rec *ClientRecord) *models.Client {
	c := &models.Client{
		ID:        rec.ClientID,
		Name:      rec.Name,
		Company:   rec.Company,
		PainPoint: rec.PainPoint,
		Status:    rec.Status,
	}
	for _, ev := range rec.History {
		c.History = append(c.History, models.Interaction{
			Timestamp: ev.Timestamp,
			Type:      ev.Type,
			Content:   ev.Content,
		})
	}
	return c
}

// toScriptRecord converts a domain script to its stored form.
func toScriptRecord(s *models.Script) *ScriptRecord {
	return &ScriptRecord{
		ScriptID:       s.ID,
		ClientName:     s.ClientName,
		Title:          s.Title,
		Content:        s.Content,
		Tone:           s.Tone,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339Nano),
		CreatedAtEpoch: s.CreatedAt.UnixMilli(),
	}
}

// toModelScript converts a stored row back to the domain model.
func toModelScript(rec *ScriptRecord) *models.Script {
	createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		createdAt = time.UnixMilli(rec.CreatedAtEpoch)
	}
	return &models.Script{
		ID:         rec.ScriptID,
		ClientName: rec.ClientName,
		Title:      rec.Title,
		Content:    rec.Content,
		Tone:       rec.Tone,
		CreatedAt:  createdAt,
	}
}
