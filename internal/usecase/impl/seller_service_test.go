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

func newSellerService(repo *sellerRepoStub) usecase.SellerUsecase {
	return NewSellerService(SellerServiceParams{
		SellerRepo: repo,
		Guard:      NewAccessGuard(),
	})
}

func TestSellerService_Search_Found(t *testing.T) {
	seller := &entity.Seller{
		ID:    uuid.New(),
		Phone: "11999998888",
		Name:  "Maria",
	}
	repo := &sellerRepoStub{
		findByPhone: func(_ context.Context, phone string) (*entity.Seller, error) {
			// The raw input is normalized before the lookup.
			require.Equal(t, "11999998888", phone)
			return seller, nil
		},
	}

	svc := newSellerService(repo)

	out, err := svc.Search(context.Background(), memberPrincipal(), "(11) 99999-8888")
	require.NoError(t, err)
	assert.True(t, out.Found)
	require.NotNil(t, out.Seller)
	assert.Equal(t, seller.ID.String(), out.Seller.ID)
}

func TestSellerService_Search_NotFoundIsNotAnError(t *testing.T) {
	repo := &sellerRepoStub{
		findByPhone: func(context.Context, string) (*entity.Seller, error) {
			return nil, repository.ErrSellerNotFound
		},
	}

	svc := newSellerService(repo)

	out, err := svc.Search(context.Background(), memberPrincipal(), "11999998888")
	require.NoError(t, err)
	assert.False(t, out.Found)
	assert.Nil(t, out.Seller)
}

func TestSellerService_Search_Guards(t *testing.T) {
	svc := newSellerService(&sellerRepoStub{})

	_, err := svc.Search(context.Background(), nil, "11999998888")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = svc.Search(context.Background(), memberPrincipal(), "123")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPhone)
}

func TestSellerService_UpdatePhoto(t *testing.T) {
	repo := &sellerRepoStub{
		updatePhoto: func(_ context.Context, phone, photoURL string) (*entity.Seller, error) {
			require.Equal(t, "11999998888", phone)
			return &entity.Seller{
				ID:       uuid.New(),
				Phone:    phone,
				Name:     "Maria",
				PhotoURL: photoURL,
			}, nil
		},
	}

	svc := newSellerService(repo)

	view, err := svc.UpdatePhoto(context.Background(), memberPrincipal(), "11 99999 8888", "https://cdn/foto.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/foto.jpg", view.PhotoURL)
}

func TestSellerService_UpdatePhoto_Failures(t *testing.T) {
	svc := newSellerService(&sellerRepoStub{
		updatePhoto: func(context.Context, string, string) (*entity.Seller, error) {
			return nil, repository.ErrSellerNotFound
		},
	})

	_, err := svc.UpdatePhoto(context.Background(), memberPrincipal(), "11999998888", " ")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = svc.UpdatePhoto(context.Background(), memberPrincipal(), "11999998888", "https://cdn/foto.jpg")
	assert.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
}

func TestResolveOrCreateSeller_Existing(t *testing.T) {
	existing := &entity.Seller{ID: uuid.New(), Phone: "11999998888", Name: "Maria"}
	repo := &sellerRepoStub{
		findByPhone: func(context.Context, string) (*entity.Seller, error) {
			return existing, nil
		},
	}

	seller, err := resolveOrCreateSeller(context.Background(), repo, "11999998888", "")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, seller.ID)
}

func TestResolveOrCreateSeller_CreatesOnFirstReference(t *testing.T) {
	var created *entity.Seller
	repo := &sellerRepoStub{
		findByPhone: func(context.Context, string) (*entity.Seller, error) {
			return nil, repository.ErrSellerNotFound
		},
		create: func(_ context.Context, seller *entity.Seller) error {
			created = seller
			return nil
		},
	}

	seller, err := resolveOrCreateSeller(context.Background(), repo, "11999998888", "  Maria ")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, seller.ID)
	assert.Equal(t, "Maria", seller.Name)
	assert.Equal(t, "11999998888", seller.Phone)
}

func TestResolveOrCreateSeller_NameRequiredForNew(t *testing.T) {
	repo := &sellerRepoStub{
		findByPhone: func(context.Context, string) (*entity.Seller, error) {
			return nil, repository.ErrSellerNotFound
		},
	}

	_, err := resolveOrCreateSeller(context.Background(), repo, "11999998888", "  ")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestResolveOrCreateSeller_RecoversFromCreationRace(t *testing.T) {
	winner := &entity.Seller{ID: uuid.New(), Phone: "11999998888", Name: "Maria"}
	calls := 0
	repo := &sellerRepoStub{
		findByPhone: func(context.Context, string) (*entity.Seller, error) {
			calls++
			if calls == 1 {
				return nil, repository.ErrSellerNotFound
			}
			// The row that won the race.
			return winner, nil
		},
		create: func(context.Context, *entity.Seller) error {
			return repository.ErrDuplicateSeller
		},
	}

	seller, err := resolveOrCreateSeller(context.Background(), repo, "11999998888", "Maria")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, seller.ID)
	assert.Equal(t, 2, calls)
}
