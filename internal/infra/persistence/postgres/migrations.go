package postgres

import (
	gormigrate "github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"qualifica/internal/errors"
	"qualifica/internal/infra/persistence/model"
)

// runMigrations applies the versioned schema on startup.
func runMigrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "202608010001_init_schema",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&model.SellerModel{},
					&model.GroupModel{},
					&model.AdminModel{},
					&model.AdminGroupModel{},
					&model.RatingModel{},
					&model.BannerModel{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					"ratings", "banners", "admin_groups", "admins", "groups", "sellers",
				)
			},
		},
		{
			// At most one active banner per position, enforced by the database
			// as the backstop behind the transactional deactivate-then-insert.
			ID: "202608010002_banner_single_active",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(
					`CREATE UNIQUE INDEX IF NOT EXISTS idx_banners_active_position
					 ON banners (position) WHERE active`,
				).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec(`DROP INDEX IF EXISTS idx_banners_active_position`).Error
			},
		},
	})

	if err := m.Migrate(); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}
