package impl

import (
	"context"
	"testing"

	"qualifica/internal/domain/entity"
	domainerrors "qualifica/internal/domain/errors"
	"qualifica/internal/domain/repository"
	"qualifica/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReputationService(sellers *sellerRepoStub, ratings *ratingRepoStub) usecase.ReputationUsecase {
	return NewReputationService(ReputationServiceParams{
		SellerRepo: sellers,
		RatingRepo: ratings,
	})
}

func ratingWith(category entity.Category, stars int, group *entity.GroupRef) *entity.Rating {
	return &entity.Rating{
		ID:         uuid.New(),
		Category:   category,
		Stars:      stars,
		BuyerPhone: "11988887777",
		BuyerName:  "Comprador",
		PhotoURL:   "https://cdn/foto.jpg",
		Group:      group,
	}
}

func TestReputationService_Lookup(t *testing.T) {
	seller := &entity.Seller{ID: uuid.New(), Phone: "11999998888", Name: "Maria"}
	groupA := &entity.GroupRef{ID: uuid.New(), Name: "Grupo A"}
	groupB := &entity.GroupRef{ID: uuid.New(), Name: "Grupo B"}

	sellers := &sellerRepoStub{
		findByPhone: func(_ context.Context, phone string) (*entity.Seller, error) {
			require.Equal(t, "11999998888", phone)
			return seller, nil
		},
	}
	ratings := &ratingRepoStub{
		findActiveBySeller: func(_ context.Context, sellerID uuid.UUID) ([]*entity.Rating, error) {
			require.Equal(t, seller.ID, sellerID)
			return []*entity.Rating{
				ratingWith(entity.CategoryPositive, 5, groupA),
				ratingWith(entity.CategoryPositive, 4, groupA),
				ratingWith(entity.CategoryNegative, 1, groupB),
				ratingWith(entity.CategoryNeutral, 3, groupA),
			}, nil
		},
	}

	svc := newReputationService(sellers, ratings)

	out, err := svc.Lookup(context.Background(), "(11) 99999-8888")
	require.NoError(t, err)

	assert.Equal(t, seller.Name, out.Seller.Name)
	assert.Equal(t, 4, out.Summary.Total)
	assert.Equal(t, 2, out.Summary.Positive)
	assert.Equal(t, 1, out.Summary.Negative)
	assert.Equal(t, 1, out.Summary.Neutral)
	// (5+4+1+3)/4 = 3.25, rounded half away from zero to one decimal.
	assert.InDelta(t, 3.3, out.Summary.MeanStars, 0.0001)

	// Groups are de-duplicated.
	require.Len(t, out.Groups, 2)
	assert.Len(t, out.Ratings, 4)
}

func TestReputationService_Lookup_NoRatings(t *testing.T) {
	seller := &entity.Seller{ID: uuid.New(), Phone: "1133334444", Name: "Sem Histórico"}
	sellers := &sellerRepoStub{
		findByPhone: func(context.Context, string) (*entity.Seller, error) {
			return seller, nil
		},
	}
	ratings := &ratingRepoStub{
		findActiveBySeller: func(context.Context, uuid.UUID) ([]*entity.Rating, error) {
			return []*entity.Rating{}, nil
		},
	}

	svc := newReputationService(sellers, ratings)

	out, err := svc.Lookup(context.Background(), "1133334444")
	require.NoError(t, err)
	assert.Zero(t, out.Summary.Total)
	assert.Zero(t, out.Summary.MeanStars)
	assert.Empty(t, out.Groups)
	assert.Empty(t, out.Ratings)
}

func TestReputationService_Lookup_Failures(t *testing.T) {
	sellers := &sellerRepoStub{
		findByPhone: func(context.Context, string) (*entity.Seller, error) {
			return nil, repository.ErrSellerNotFound
		},
	}

	svc := newReputationService(sellers, &ratingRepoStub{})

	_, err := svc.Lookup(context.Background(), "123")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPhone)

	_, err = svc.Lookup(context.Background(), "11999998888")
	assert.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
}

func TestSummarize_Rounding(t *testing.T) {
	cases := []struct {
		name  string
		stars []int
		want  float64
	}{
		{"exact mean", []int{4, 4}, 4.0},
		{"rounds half up", []int{4, 5}, 4.5},
		{"one third", []int{5, 5, 4}, 4.7},
		{"two thirds", []int{1, 2, 2}, 1.7},
		{"quarter mean", []int{5, 4, 4, 4}, 4.3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ratings := make([]*entity.Rating, 0, len(tc.stars))
			for _, stars := range tc.stars {
				ratings = append(ratings, ratingWith(entity.CategoryPositive, stars, nil))
			}
			summary := summarize(ratings)
			assert.InDelta(t, tc.want, summary.MeanStars, 0.0001)
		})
	}
}

func TestToPublicRatings_NeverCarriesBuyerIdentity(t *testing.T) {
	group := &entity.GroupRef{ID: uuid.New(), Name: "Grupo"}
	public := toPublicRatings([]*entity.Rating{
		ratingWith(entity.CategoryPositive, 5, group),
	})

	require.Len(t, public, 1)
	assert.Equal(t, "POSITIVA", public[0].Category)
	assert.Equal(t, group.ID, public[0].Group.ID)
	// PublicRating has no buyer fields at all; the projection keeps only
	// category, stars, photo, timestamps and the group reference.
}
