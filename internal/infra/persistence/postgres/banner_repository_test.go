package postgres

import (
	"context"
	"testing"
	"time"

	"qualifica/internal/domain/entity"
	"qualifica/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBanner(position entity.BannerPosition, active bool) *entity.Banner {
	now := time.Now()

	return &entity.Banner{
		ID:        uuid.New(),
		Position:  position,
		Title:     "Promoção",
		ImageURL:  "https://example.com/banner.jpg",
		LinkURL:   "https://example.com/loja",
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestBannerRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBannerRepository(db)
	ctx := context.Background()

	banner := newTestBanner(entity.BannerLeft, true)
	require.NoError(t, repo.Create(ctx, banner))

	found, err := repo.FindByID(ctx, banner.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.BannerLeft, found.Position)
	assert.True(t, found.Active)
	assert.Zero(t, found.Visits)
}

func TestBannerRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBannerRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrBannerNotFound)
}

func TestBannerRepository_FindActive_OnePerPosition(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBannerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestBanner(entity.BannerRight, true)))
	require.NoError(t, repo.Create(ctx, newTestBanner(entity.BannerLeft, true)))
	require.NoError(t, repo.Create(ctx, newTestBanner(entity.BannerLeft, false)))

	banners, err := repo.FindActive(ctx)
	assert.NoError(t, err)
	require.Len(t, banners, 2)
	assert.Equal(t, entity.BannerRight, banners[0].Position)
	assert.Equal(t, entity.BannerLeft, banners[1].Position)
}

func TestBannerRepository_DeactivateByPosition(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBannerRepository(db)
	ctx := context.Background()

	occupant := newTestBanner(entity.BannerLeft, true)
	require.NoError(t, repo.Create(ctx, occupant))

	require.NoError(t, repo.DeactivateByPosition(ctx, entity.BannerLeft))

	replacement := newTestBanner(entity.BannerLeft, true)
	require.NoError(t, repo.Create(ctx, replacement))

	banners, err := repo.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, banners, 1)
	assert.Equal(t, replacement.ID, banners[0].ID)

	// Deactivating an empty slot is a no-op.
	assert.NoError(t, repo.DeactivateByPosition(ctx, entity.BannerRight))
}

func TestBannerRepository_SecondActiveSamePositionRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBannerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestBanner(entity.BannerRight, true)))

	// The partial unique index refuses a second active occupant of the slot.
	err := repo.Create(ctx, newTestBanner(entity.BannerRight, true))
	assert.Error(t, err)
}

func TestBannerRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBannerRepository(db)
	ctx := context.Background()

	banner := newTestBanner(entity.BannerLeft, true)
	require.NoError(t, repo.Create(ctx, banner))
	require.NoError(t, repo.IncrementVisits(ctx, banner.ID))

	banner.Title = "Novo título"
	banner.Active = false
	require.NoError(t, repo.Update(ctx, banner))

	found, err := repo.FindByID(ctx, banner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Novo título", found.Title)
	assert.False(t, found.Active)
	// The access counter is not writable through Update.
	assert.EqualValues(t, 1, found.Visits)
}

func TestBannerRepository_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBannerRepository(db)

	ghost := newTestBanner(entity.BannerRight, false)
	err := repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, repository.ErrBannerNotFound)
}

func TestBannerRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBannerRepository(db)
	ctx := context.Background()

	banner := newTestBanner(entity.BannerLeft, false)
	require.NoError(t, repo.Create(ctx, banner))
	require.NoError(t, repo.Delete(ctx, banner.ID))

	_, err := repo.FindByID(ctx, banner.ID)
	assert.ErrorIs(t, err, repository.ErrBannerNotFound)

	err = repo.Delete(ctx, banner.ID)
	assert.ErrorIs(t, err, repository.ErrBannerNotFound)
}

func TestBannerRepository_IncrementVisits(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBannerRepository(db)
	ctx := context.Background()

	banner := newTestBanner(entity.BannerRight, true)
	require.NoError(t, repo.Create(ctx, banner))

	require.NoError(t, repo.IncrementVisits(ctx, banner.ID))
	require.NoError(t, repo.IncrementVisits(ctx, banner.ID))

	found, err := repo.FindByID(ctx, banner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, found.Visits)

	err = repo.IncrementVisits(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrBannerNotFound)
}
