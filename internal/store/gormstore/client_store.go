// Package gormstore provides the relational backend for devacia-os.
package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/devacia/devacia-os/internal/store"
	"github.com/devacia/devacia-os/pkg/models"
)

// ClientStore provides client record operations on the relational backend.
type ClientStore struct {
	db    *gorm.DB
	clock store.Clock
}

var _ store.ClientStore = (*ClientStore)(nil)

// NewClientStore creates a client store on s.
func NewClientStore(s *Store, clock store.Clock) *ClientStore {
	return &ClientStore{db: s.DB, clock: clock}
}

// Add creates a client record with a single System creation event.
func (s *ClientStore) Add(ctx context.Context, profile models.LeadProfile) (*models.Client, error) {
	client := models.NewClient(profile, s.clock.Now())
	rec := toClientRecord(client)

	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return toModelClient(rec), nil
}

// ListAll returns every client in creation order with full histories.
func (s *ClientStore) ListAll(ctx context.Context) ([]*models.Client, error) {
	var recs []ClientRecord
	err := s.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("interaction_events.id ASC")
		}).
		Order("row_id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	clients := make([]*models.Client, len(recs))
	for i := range recs {
		clients[i] = toModelClient(&recs[i])
	}
	return clients, nil
}

// LogActivity appends an event to the first client, in storage order, whose
// name contains nameQuery case-insensitively.
//
// The substring match runs in Go over the name column rather than SQL LIKE,
// so the policy is byte-identical across SQLite and Postgres and the query
// string never needs wildcard escaping.
func (s *ClientStore) LogActivity(ctx context.Context, nameQuery, eventType, content string) (*models.Client, error) {
	var updated *models.Client

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rowID, err := s.findFirstMatch(tx, nameQuery)
		if err != nil {
			return err
		}

		ev := models.NewInteraction(eventType, content, s.clock.Now())
		row := InteractionEvent{
			ClientRowID: rowID,
			Timestamp:   ev.Timestamp,
			Type:        ev.Type,
			Content:     ev.Content,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		var rec ClientRecord
		err = tx.Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("interaction_events.id ASC")
		}).First(&rec, rowID).Error
		if err != nil {
			return err
		}
		updated = toModelClient(&rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteByName removes every matching client, cascading their events.
func (s *ClientStore) DeleteByName(ctx context.Context, nameQuery string) (int, error) {
	removed := 0

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rowIDs, err := s.findAllMatches(tx, nameQuery)
		if err != nil {
			return err
		}
		if len(rowIDs) == 0 {
			return store.ErrNotFound
		}

		if err := tx.Where("client_row_id IN ?", rowIDs).Delete(&InteractionEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("row_id IN ?", rowIDs).Delete(&ClientRecord{}).Error; err != nil {
			return err
		}
		removed = len(rowIDs)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// findFirstMatch returns the row ID of the first client matching the query.
func (s *ClientStore) findFirstMatch(tx *gorm.DB, nameQuery string) (int64, error) {
	rows, err := s.nameRows(tx)
	if err != nil {
		return 0, err
	}
	for _, r := range rows {
		c := models.Client{Name: r.Name}
		if c.MatchesName(nameQuery) {
			return r.RowID, nil
		}
	}
	return 0, store.ErrNotFound
}

// findAllMatches returns the row IDs of every client matching the query.
func (s *ClientStore) findAllMatches(tx *gorm.DB, nameQuery string) ([]int64, error) {
	rows, err := s.nameRows(tx)
	if err != nil {
		return nil, err
	}
	var ids []int64
	for _, r := range rows {
		c := models.Client{Name: r.Name}
		if c.MatchesName(nameQuery) {
			ids = append(ids, r.RowID)
		}
	}
	return ids, nil
}

type nameRow struct {
	RowID int64
	Name  string
}

// nameRows fetches (row_id, name) pairs in storage order.
func (s *ClientStore) nameRows(tx *gorm.DB) ([]nameRow, error) {
	var rows []nameRow
	err := tx.Model(&ClientRecord{}).
		Select("row_id", "name").
		Order("row_id ASC").
		Scan(&rows).Error
	return rows, err
}
