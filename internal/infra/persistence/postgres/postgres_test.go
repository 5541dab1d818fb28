package postgres

import (
	"testing"
	"time"

	"qualifica/internal/domain/entity"
	"qualifica/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory database with the full schema, including the
// partial unique index behind the banner single-active invariant.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.SellerModel{},
		&model.GroupModel{},
		&model.AdminModel{},
		&model.AdminGroupModel{},
		&model.RatingModel{},
		&model.BannerModel{},
	)
	require.NoError(t, err)

	err = db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_banners_active_position
		 ON banners (position) WHERE active`,
	).Error
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return db
}

func newTestSeller(phone, name string) *entity.Seller {
	now := time.Now()

	return &entity.Seller{
		ID:        uuid.New(),
		Phone:     phone,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newTestGroup(name string) *entity.Group {
	now := time.Now()

	return &entity.Group{
		ID:        uuid.New(),
		Name:      name,
		OwnerName: "Dono",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newTestAdmin(email string) *entity.Admin {
	now := time.Now()

	return &entity.Admin{
		ID:           uuid.New(),
		Name:         "Admin Teste",
		Email:        email,
		PasswordHash: "hash",
		Role:         entity.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newTestRating(sellerID, groupID, adminID uuid.UUID, category entity.Category, stars int) *entity.Rating {
	return &entity.Rating{
		ID:           uuid.New(),
		SellerID:     sellerID,
		GroupID:      groupID,
		RecordedByID: adminID,
		BuyerPhone:   "11988887777",
		BuyerName:    "Comprador",
		Category:     category,
		Stars:        stars,
		PhotoURL:     "https://example.com/foto.jpg",
		CreatedAt:    time.Now(),
	}
}
