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

func TestAdminRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	admin := newTestAdmin("joana@example.com")
	require.NoError(t, repo.Create(ctx, admin))

	found, err := repo.FindByID(ctx, admin.ID)
	assert.NoError(t, err)
	assert.Equal(t, admin.Email, found.Email)
	assert.Equal(t, entity.RoleAdmin, found.Role)
	assert.True(t, found.Active)
	assert.Empty(t, found.Groups)
}

func TestAdminRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrAdminNotFound)
}

func TestAdminRepository_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	admin := newTestAdmin("carlos@example.com")
	require.NoError(t, repo.Create(ctx, admin))

	found, err := repo.FindByEmail(ctx, "carlos@example.com")
	assert.NoError(t, err)
	assert.Equal(t, admin.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "ninguem@example.com")
	assert.ErrorIs(t, err, repository.ErrAdminNotFound)
}

func TestAdminRepository_Create_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestAdmin("dup@example.com")))

	err := repo.Create(ctx, newTestAdmin("dup@example.com"))
	assert.ErrorIs(t, err, repository.ErrDuplicateAdminEmail)
}

func TestAdminRepository_FindAll_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	older := newTestAdmin("antigo@example.com")
	older.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, older))

	newer := newTestAdmin("recente@example.com")
	newer.CreatedAt = time.Now()
	require.NoError(t, repo.Create(ctx, newer))

	admins, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, newer.ID, admins[0].ID)
	assert.Equal(t, older.ID, admins[1].ID)
}

func TestAdminRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	admin := newTestAdmin("mut@example.com")
	require.NoError(t, repo.Create(ctx, admin))

	admin.Name = "Nome alterado"
	admin.Active = false
	require.NoError(t, repo.Update(ctx, admin))

	found, err := repo.FindByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nome alterado", found.Name)
	assert.False(t, found.Active)
}

func TestAdminRepository_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminRepository(db)

	ghost := newTestAdmin("fantasma@example.com")
	err := repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, repository.ErrAdminNotFound)
}

func TestAdminRepository_ReplaceGroups(t *testing.T) {
	db := setupTestDB(t)
	adminRepo := NewAdminRepository(db)
	groupRepo := NewGroupRepository(db)
	ctx := context.Background()

	first := newTestGroup("Primeiro")
	second := newTestGroup("Segundo")
	require.NoError(t, groupRepo.Create(ctx, first))
	require.NoError(t, groupRepo.Create(ctx, second))

	admin := newTestAdmin("membro@example.com")
	require.NoError(t, adminRepo.Create(ctx, admin))

	require.NoError(t, adminRepo.ReplaceGroups(ctx, admin.ID, []uuid.UUID{first.ID}))

	found, err := adminRepo.FindByID(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, found.Groups, 1)
	assert.Equal(t, first.ID, found.Groups[0].ID)

	// The replacement is a full swap, not a merge.
	require.NoError(t, adminRepo.ReplaceGroups(ctx, admin.ID, []uuid.UUID{second.ID}))

	found, err = adminRepo.FindByID(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, found.Groups, 1)
	assert.Equal(t, second.ID, found.Groups[0].ID)

	// An empty set clears every membership.
	require.NoError(t, adminRepo.ReplaceGroups(ctx, admin.ID, nil))

	found, err = adminRepo.FindByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Groups)
}
