// Package gormstore provides the relational backend for devacia-os.
package gormstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm/logger"

	"github.com/devacia/devacia-os/internal/store"
	"github.com/devacia/devacia-os/pkg/models"
)

// fakeClock is a deterministic clock that advances one second per read.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(time.Second)
	return t
}

// GormStoreSuite is a test suite for the relational stores on SQLite.
type GormStoreSuite struct {
	suite.Suite
	store   *Store
	clock   *fakeClock
	clients *ClientStore
	scripts *ScriptStore
	ctx     context.Context
}

func (s *GormStoreSuite) SetupTest() {
	dbPath := filepath.Join(s.T().TempDir(), "devacia.db")
	st, err := NewStore(Config{Path: dbPath, LogLevel: logger.Silent})
	s.Require().NoError(err)

	s.store = st
	s.clock = &fakeClock{now: time.Date(2025, 11, 30, 14, 30, 0, 0, time.Local)}
	s.clients = NewClientStore(st, s.clock)
	s.scripts = NewScriptStore(st, s.clock)
	s.ctx = context.Background()
}

func (s *GormStoreSuite) TearDownTest() {
	if s.store != nil {
		s.store.Close()
	}
}

func TestGormStoreSuite(t *testing.T) {
	suite.Run(t, new(GormStoreSuite))
}

func (s *GormStoreSuite) addClient(name string) *models.Client {
	client, err := s.clients.Add(s.ctx, models.LeadProfile{
		Name:      name,
		Company:   "Acme Corp",
		PainPoint: "Low sales",
	})
	s.Require().NoError(err)
	return client
}

// TestAdd_CreationEvent tests the creation event invariant.
func (s *GormStoreSuite) TestAdd_CreationEvent() {
	client := s.addClient("John Doe")

	s.NotEmpty(client.ID)
	s.Equal(models.StatusLead, client.Status)
	s.Require().Len(client.History, 1)
	s.Equal(models.InteractionTypeSystem, client.History[0].Type)
}

// TestListAll_RoundTrip tests add-then-list equality and storage order.
func (s *GormStoreSuite) TestListAll_RoundTrip() {
	created := s.addClient("John Doe")
	s.addClient("Jane Roe")

	all, err := s.clients.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(created, all[0])
	s.Equal("Jane Roe", all[1].Name)
}

// TestLogActivity_FirstMatch tests first-match semantics in storage order.
func (s *GormStoreSuite) TestLogActivity_FirstMatch() {
	s.addClient("Ann")
	s.addClient("Anna")

	updated, err := s.clients.LogActivity(s.ctx, "ANN", models.InteractionTypeEmail, "Sent the pitch deck")
	s.Require().NoError(err)

	s.Equal("Ann", updated.Name)
	s.Require().Len(updated.History, 2)
	s.Equal(models.InteractionTypeEmail, updated.History[1].Type)
	s.Equal("Sent the pitch deck", updated.History[1].Content)
	s.LessOrEqual(updated.History[0].Timestamp, updated.History[1].Timestamp)
}

// TestLogActivity_NotFound tests that a miss mutates nothing.
func (s *GormStoreSuite) TestLogActivity_NotFound() {
	s.addClient("John Doe")
	before, err := s.clients.ListAll(s.ctx)
	s.Require().NoError(err)

	_, err = s.clients.LogActivity(s.ctx, "nobody", models.InteractionTypeEmail, "x")
	s.ErrorIs(err, store.ErrNotFound)

	after, err := s.clients.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Equal(before, after)
}

// TestDeleteByName tests delete-all-matching and the not-found path.
func (s *GormStoreSuite) TestDeleteByName() {
	s.addClient("Ann")
	s.addClient("Anna")
	s.addClient("Bob")

	_, err := s.clients.DeleteByName(s.ctx, "smith")
	s.ErrorIs(err, store.ErrNotFound)

	removed, err := s.clients.DeleteByName(s.ctx, "ann")
	s.Require().NoError(err)
	s.Equal(2, removed)

	all, err := s.clients.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal("Bob", all[0].Name)
}

// TestDeleteByName_CascadesEvents tests that deleted clients leave no
// orphaned history rows behind.
func (s *GormStoreSuite) TestDeleteByName_CascadesEvents() {
	s.addClient("John Doe")
	_, err := s.clients.LogActivity(s.ctx, "john", models.InteractionTypeEmail, "Sent pitch")
	s.Require().NoError(err)

	_, err = s.clients.DeleteByName(s.ctx, "john")
	s.Require().NoError(err)

	var count int64
	s.Require().NoError(s.store.DB.Model(&InteractionEvent{}).Count(&count).Error)
	s.Zero(count)
}

// TestVault_LatestEmpty tests Latest on an empty vault.
func (s *GormStoreSuite) TestVault_LatestEmpty() {
	_, err := s.scripts.Latest(s.ctx)
	s.ErrorIs(err, store.ErrNotFound)
}

// TestVault_LatestByCreatedAt tests that latest is the greatest created_at,
// with insertion order breaking ties.
func (s *GormStoreSuite) TestVault_LatestByCreatedAt() {
	for _, title := range []string{"s1", "s2", "s3"} {
		_, err := s.scripts.Save(s.ctx, &models.Script{
			ClientName: "John Doe",
			Title:      title,
			Content:    "Hello...",
		})
		s.Require().NoError(err)
	}

	latest, err := s.scripts.Latest(s.ctx)
	s.Require().NoError(err)
	s.Equal("s3", latest.Title)
	s.Equal(models.DefaultTone, latest.Tone)
}

// TestVault_SaveAssignsFields tests ID/timestamp assignment on save.
func (s *GormStoreSuite) TestVault_SaveAssignsFields() {
	saved, err := s.scripts.Save(s.ctx, &models.Script{Title: "s1", Content: "c"})
	s.Require().NoError(err)

	s.NotEmpty(saved.ID)
	s.False(saved.CreatedAt.IsZero())
	s.Equal(models.DefaultTone, saved.Tone)
}
