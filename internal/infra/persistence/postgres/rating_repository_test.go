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
	"gorm.io/gorm"
)

type ratingFixture struct {
	db      *gorm.DB
	sellers repository.SellerRepository
	groups  repository.GroupRepository
	admins  repository.AdminRepository
	ratings repository.RatingRepository
	seller  *entity.Seller
	group   *entity.Group
	admin   *entity.Admin
}

func setupRatingFixture(t *testing.T) *ratingFixture {
	t.Helper()

	db := setupTestDB(t)
	f := &ratingFixture{
		db:      db,
		sellers: NewSellerRepository(db),
		groups:  NewGroupRepository(db),
		admins:  NewAdminRepository(db),
		ratings: NewRatingRepository(db),
	}

	ctx := context.Background()
	f.seller = newTestSeller("11999998888", "Maria")
	require.NoError(t, f.sellers.Create(ctx, f.seller))
	f.group = newTestGroup("Grupo Compras SP")
	require.NoError(t, f.groups.Create(ctx, f.group))
	f.admin = newTestAdmin("admin@example.com")
	require.NoError(t, f.admins.Create(ctx, f.admin))

	return f
}

func TestRatingRepository_SchemaRejectsInvalidValues(t *testing.T) {
	f := setupRatingFixture(t)
	ctx := context.Background()

	// Stars and category are also guarded at the schema level.
	outOfRange := newTestRating(f.seller.ID, f.group.ID, f.admin.ID, entity.CategoryPositive, 0)
	assert.Error(t, f.ratings.Create(ctx, outOfRange))

	unknownCategory := newTestRating(f.seller.ID, f.group.ID, f.admin.ID, entity.Category("OTIMA"), 5)
	assert.Error(t, f.ratings.Create(ctx, unknownCategory))

	valid := newTestRating(f.seller.ID, f.group.ID, f.admin.ID, entity.CategoryPositive, 5)
	assert.NoError(t, f.ratings.Create(ctx, valid))
}

func TestRatingRepository_CreateAndFindByID(t *testing.T) {
	f := setupRatingFixture(t)
	ctx := context.Background()

	rating := newTestRating(f.seller.ID, f.group.ID, f.admin.ID, entity.CategoryPositive, 5)
	require.NoError(t, f.ratings.Create(ctx, rating))

	found, err := f.ratings.FindByID(ctx, rating.ID)
	assert.NoError(t, err)
	assert.Equal(t, rating.ID, found.ID)
	assert.Equal(t, entity.CategoryPositive, found.Category)
	assert.Equal(t, 5, found.Stars)
	assert.False(t, found.Deleted())
	require.NotNil(t, found.Seller)
	assert.Equal(t, f.seller.ID, found.Seller.ID)
	require.NotNil(t, found.Group)
	assert.Equal(t, f.group.Name, found.Group.Name)
	assert.Equal(t, f.admin.Name, found.RecordedByName)
}

func TestRatingRepository_SoftDelete(t *testing.T) {
	f := setupRatingFixture(t)
	ctx := context.Background()

	rating := newTestRating(f.seller.ID, f.group.ID, f.admin.ID, entity.CategoryNegative, 1)
	require.NoError(t, f.ratings.Create(ctx, rating))

	deletion := entity.Deletion{At: time.Now(), By: f.admin.ID}
	require.NoError(t, f.ratings.SoftDelete(ctx, rating.ID, deletion))

	// The row stays visible through FindByID, with the audit pair stamped.
	found, err := f.ratings.FindByID(ctx, rating.ID)
	require.NoError(t, err)
	require.True(t, found.Deleted())
	assert.Equal(t, f.admin.ID, found.Deletion.By)

	// A second soft delete finds no active row.
	err = f.ratings.SoftDelete(ctx, rating.ID, deletion)
	assert.ErrorIs(t, err, repository.ErrRatingNotFound)
}

func TestRatingRepository_FindActiveBySeller_ExcludesDeleted(t *testing.T) {
	f := setupRatingFixture(t)
	ctx := context.Background()

	active := newTestRating(f.seller.ID, f.group.ID, f.admin.ID, entity.CategoryPositive, 4)
	require.NoError(t, f.ratings.Create(ctx, active))

	deleted := newTestRating(f.seller.ID, f.group.ID, f.admin.ID, entity.CategoryNegative, 1)
	require.NoError(t, f.ratings.Create(ctx, deleted))
	require.NoError(t, f.ratings.SoftDelete(ctx, deleted.ID, entity.Deletion{At: time.Now(), By: f.admin.ID}))

	ratings, err := f.ratings.FindActiveBySeller(ctx, f.seller.ID)
	assert.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, active.ID, ratings[0].ID)
}

func TestRatingRepository_List_FiltersAndPaginates(t *testing.T) {
	f := setupRatingFixture(t)
	ctx := context.Background()

	otherGroup := newTestGroup("Outro Grupo")
	require.NoError(t, f.groups.Create(ctx, otherGroup))

	for i := 0; i < 3; i++ {
		rating := newTestRating(f.seller.ID, f.group.ID, f.admin.ID, entity.CategoryPositive, 5)
		rating.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		require.NoError(t, f.ratings.Create(ctx, rating))
	}
	require.NoError(t, f.ratings.Create(ctx,
		newTestRating(f.seller.ID, otherGroup.ID, f.admin.ID, entity.CategoryNegative, 1)))

	// Group filter.
	ratings, total, err := f.ratings.List(ctx, repository.RatingFilter{
		GroupIDs: []uuid.UUID{f.group.ID},
	}, 0, 20)
	assert.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, ratings, 3)

	// Category filter.
	ratings, total, err = f.ratings.List(ctx, repository.RatingFilter{
		Category: entity.CategoryNegative,
	}, 0, 20)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, ratings, 1)
	assert.Equal(t, otherGroup.ID, ratings[0].GroupID)

	// Phone substring filter.
	ratings, total, err = f.ratings.List(ctx, repository.RatingFilter{
		SellerPhoneContains: "99999",
	}, 0, 20)
	assert.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, ratings, 4)

	// Pagination: page two of size two.
	ratings, total, err = f.ratings.List(ctx, repository.RatingFilter{}, 2, 2)
	assert.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, ratings, 2)
}

func TestRatingRepository_List_NewestFirst(t *testing.T) {
	f := setupRatingFixture(t)
	ctx := context.Background()

	older := newTestRating(f.seller.ID, f.group.ID, f.admin.ID, entity.CategoryNeutral, 3)
	older.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, f.ratings.Create(ctx, older))

	newer := newTestRating(f.seller.ID, f.group.ID, f.admin.ID, entity.CategoryPositive, 5)
	newer.CreatedAt = time.Now()
	require.NoError(t, f.ratings.Create(ctx, newer))

	ratings, _, err := f.ratings.List(ctx, repository.RatingFilter{}, 0, 20)
	require.NoError(t, err)
	require.Len(t, ratings, 2)
	assert.Equal(t, newer.ID, ratings[0].ID)
	assert.Equal(t, older.ID, ratings[1].ID)
}

func TestRatingRepository_CountByGroup_IncludesDeleted(t *testing.T) {
	f := setupRatingFixture(t)
	ctx := context.Background()

	kept := newTestRating(f.seller.ID, f.group.ID, f.admin.ID, entity.CategoryPositive, 5)
	require.NoError(t, f.ratings.Create(ctx, kept))

	removed := newTestRating(f.seller.ID, f.group.ID, f.admin.ID, entity.CategoryNegative, 1)
	require.NoError(t, f.ratings.Create(ctx, removed))
	require.NoError(t, f.ratings.SoftDelete(ctx, removed.ID, entity.Deletion{At: time.Now(), By: f.admin.ID}))

	count, err := f.ratings.CountByGroup(ctx, f.group.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
