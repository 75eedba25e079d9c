// Package jsonfile implements the devacia-os stores on flat JSON files.
package jsonfile

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/devacia/devacia-os/internal/store"
	"github.com/devacia/devacia-os/pkg/models"
)

// ClientStore keeps client records in a single JSON file.
type ClientStore struct {
	path  string
	clock store.Clock

	mu      sync.Mutex
	clients []*models.Client
}

var _ store.ClientStore = (*ClientStore)(nil)

// NewClientStore loads the store from path. A read or decode failure
// degrades to an empty store rather than failing startup.
func NewClientStore(path string, clock store.Clock) *ClientStore {
	s := &ClientStore{path: path, clock: clock}
	if err := readJSONFile(path, &s.clients); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to load client store, starting empty")
		s.clients = nil
	}
	return s
}

// Add creates a client record with a single System creation event.
func (s *ClientStore) Add(ctx context.Context, profile models.LeadProfile) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client := models.NewClient(profile, s.clock.Now())
	s.clients = append(s.clients, client)

	if err := writeJSONFile(s.path, s.clients); err != nil {
		s.clients = s.clients[:len(s.clients)-1]
		return nil, err
	}
	return cloneClient(client), nil
}

// ListAll returns all records in creation order.
func (s *ClientStore) ListAll(ctx context.Context) ([]*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Client, len(s.clients))
	for i, c := range s.clients {
		out[i] = cloneClient(c)
	}
	return out, nil
}

// LogActivity appends an event to the first matching client.
func (s *ClientStore) LogActivity(ctx context.Context, nameQuery, eventType, content string) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.clients {
		if !c.MatchesName(nameQuery) {
			continue
		}

		c.AppendInteraction(models.NewInteraction(eventType, content, s.clock.Now()))
		if err := writeJSONFile(s.path, s.clients); err != nil {
			c.History = c.History[:len(c.History)-1]
			return nil, err
		}
		return cloneClient(c), nil
	}
	return nil, store.ErrNotFound
}

// DeleteByName removes every matching client and reports how many.
func (s *ClientStore) DeleteByName(ctx context.Context, nameQuery string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.clients[:0:0]
	removed := 0
	for _, c := range s.clients {
		if c.MatchesName(nameQuery) {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	if removed == 0 {
		return 0, store.ErrNotFound
	}

	if err := writeJSONFile(s.path, kept); err != nil {
		return 0, err
	}
	s.clients = kept
	return removed, nil
}

// cloneClient returns a deep copy so callers can't mutate store-owned state.
func cloneClient(c *models.Client) *models.Client {
	cp := *c
	cp.History = append([]models.Interaction(nil), c.History...)
	return &cp
}
