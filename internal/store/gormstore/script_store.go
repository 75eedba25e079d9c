// Package gormstore provides the relational backend for devacia-os.
package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/devacia/devacia-os/internal/store"
	"github.com/devacia/devacia-os/pkg/models"
)

// ScriptStore provides vault operations on the relational backend.
type ScriptStore struct {
	db    *gorm.DB
	clock store.Clock
}

var _ store.ScriptStore = (*ScriptStore)(nil)

// NewScriptStore creates a script store on s.
func NewScriptStore(s *Store, clock store.Clock) *ScriptStore {
	return &ScriptStore{db: s.DB, clock: clock}
}

// Save appends a script, assigning ID and creation timestamp if absent.
func (s *ScriptStore) Save(ctx context.Context, script *models.Script) (*models.Script, error) {
	stored := *script
	stored.Normalize(s.clock.Now())

	rec := toScriptRecord(&stored)
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return toModelScript(rec), nil
}

// Latest returns the script with the greatest creation timestamp. Ties on
// the millisecond are broken by insertion order.
func (s *ScriptStore) Latest(ctx context.Context) (*models.Script, error) {
	var rec ScriptRecord
	err := s.db.WithContext(ctx).
		Order("created_at_epoch DESC, row_id DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toModelScript(&rec), nil
}
