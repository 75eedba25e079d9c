// Package gormstore provides the relational backend for devacia-os.
package gormstore

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// runMigrations runs all database migrations using gormigrate.
func runMigrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		// Migration 001: CRM and vault tables.
		{
			ID: "001_crm_tables",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&ClientRecord{}); err != nil {
					return err
				}
				if err := tx.AutoMigrate(&InteractionEvent{}); err != nil {
					return err
				}
				return tx.AutoMigrate(&ScriptRecord{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("scripts", "interaction_events", "clients")
			},
		},
	})

	return m.Migrate()
}
