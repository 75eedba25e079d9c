// Package jsonfile implements the devacia-os stores on flat JSON files.
package jsonfile

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/devacia/devacia-os/internal/store"
	"github.com/devacia/devacia-os/pkg/models"
)

// ScriptStore keeps vault scripts in a single JSON file. It only ever
// appends; Latest is the last-appended element (the file backend has no
// ordering query, see store.ScriptStore).
type ScriptStore struct {
	path  string
	clock store.Clock

	mu      sync.Mutex
	scripts []*models.Script
}

var _ store.ScriptStore = (*ScriptStore)(nil)

// NewScriptStore loads the vault from path, degrading to an empty vault on a
// read or decode failure.
func NewScriptStore(path string, clock store.Clock) *ScriptStore {
	s := &ScriptStore{path: path, clock: clock}
	if err := readJSONFile(path, &s.scripts); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to load script vault, starting empty")
		s.scripts = nil
	}
	return s
}

// Save appends a script, assigning ID and creation timestamp if absent.
func (s *ScriptStore) Save(ctx context.Context, script *models.Script) (*models.Script, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *script
	stored.Normalize(s.clock.Now())
	s.scripts = append(s.scripts, &stored)

	if err := writeJSONFile(s.path, s.scripts); err != nil {
		s.scripts = s.scripts[:len(s.scripts)-1]
		return nil, err
	}

	out := stored
	return &out, nil
}

// Latest returns the last-appended script, or ErrNotFound if the vault is
// empty.
func (s *ScriptStore) Latest(ctx context.Context) (*models.Script, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.scripts) == 0 {
		return nil, store.ErrNotFound
	}
	out := *s.scripts[len(s.scripts)-1]
	return &out, nil
}
