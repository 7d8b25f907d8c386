package postgres

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"freight/internal/adapters/out/postgres/bookingrepo"
	"freight/internal/adapters/out/postgres/customerrepo"
	"freight/internal/adapters/out/postgres/lrcounter"
	"freight/internal/adapters/out/postgres/manifestrepo"
	"freight/internal/adapters/out/postgres/unloadingrepo"
)

// Migrate applies the schema migrations in order. Safe to run on every
// startup; gormigrate records applied ids in its own table.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20260114_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&customerrepo.CustomerDTO{},
					&bookingrepo.BookingDTO{},
					&manifestrepo.ManifestDTO{},
					&manifestrepo.LoadingRecordDTO{},
					&lrcounter.CounterDTO{},
				)
			},
		},
		{
			ID: "20260114_create_unloading_tables",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(
					&unloadingrepo.SessionDTO{},
					&unloadingrepo.SagaDTO{},
				); err != nil {
					return err
				}

				// At most one live saga per manifest. AutoMigrate cannot
				// express a partial index, so it is created by hand.
				return tx.Exec(`
					CREATE UNIQUE INDEX IF NOT EXISTS idx_unloading_sagas_live
					ON unloading_sagas (manifest_id)
					WHERE completed_at IS NULL
				`).Error
			},
		},
	})

	return m.Migrate()
}
