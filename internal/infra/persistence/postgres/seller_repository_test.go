package postgres

import (
	"context"
	"testing"

	"qualifica/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellerRepository_CreateAndFindByPhone(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSellerRepository(db)
	ctx := context.Background()

	seller := newTestSeller("11999998888", "Maria Vendedora")
	require.NoError(t, repo.Create(ctx, seller))

	found, err := repo.FindByPhone(ctx, "11999998888")
	assert.NoError(t, err)
	assert.Equal(t, seller.ID, found.ID)
	assert.Equal(t, "Maria Vendedora", found.Name)
}

func TestSellerRepository_FindByPhone_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSellerRepository(db)

	found, err := repo.FindByPhone(context.Background(), "11900000000")
	assert.ErrorIs(t, err, repository.ErrSellerNotFound)
	assert.Nil(t, found)
}

func TestSellerRepository_Create_DuplicatePhone(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSellerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestSeller("11999998888", "Primeira")))

	err := repo.Create(ctx, newTestSeller("11999998888", "Segunda"))
	assert.ErrorIs(t, err, repository.ErrDuplicateSeller)
}

func TestSellerRepository_Create_DuplicateKeepsTransactionUsable(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	winner := newTestSeller("11999998888", "Primeira")
	require.NoError(t, NewSellerRepository(db).Create(ctx, winner))

	txManager := NewTransactionManager(db)

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		sellerRepo := factory.SellerRepo()

		err := sellerRepo.Create(ctx, newTestSeller("11999998888", "Segunda"))
		assert.ErrorIs(t, err, repository.ErrDuplicateSeller)

		found, err := sellerRepo.FindByPhone(ctx, "11999998888")
		if err != nil {
			return err
		}
		assert.Equal(t, winner.ID, found.ID)

		return nil
	})
	assert.NoError(t, err)
}

func TestSellerRepository_UpdatePhoto(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSellerRepository(db)
	ctx := context.Background()

	seller := newTestSeller("11999998888", "Maria")
	require.NoError(t, repo.Create(ctx, seller))

	updated, err := repo.UpdatePhoto(ctx, "11999998888", "https://example.com/perfil.jpg")
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/perfil.jpg", updated.PhotoURL)

	found, err := repo.FindByPhone(ctx, "11999998888")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/perfil.jpg", found.PhotoURL)
}

func TestSellerRepository_UpdatePhoto_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSellerRepository(db)

	updated, err := repo.UpdatePhoto(context.Background(), "11900000000", "https://example.com/x.jpg")
	assert.ErrorIs(t, err, repository.ErrSellerNotFound)
	assert.Nil(t, updated)
}
