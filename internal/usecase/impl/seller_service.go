package impl

import (
	"context"
	"strings"

	"qualifica/internal/domain/entity"
	domainerrors "qualifica/internal/domain/errors"
	"qualifica/internal/domain/repository"
	"qualifica/internal/domain/service"
	"qualifica/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type sellerService struct {
	sellerRepo repository.SellerRepository
	guard      service.AccessGuard
}

// SellerServiceParams holds dependencies for SellerService, injected by Fx.
type SellerServiceParams struct {
	fx.In

	SellerRepo repository.SellerRepository
	Guard      service.AccessGuard
}

// NewSellerService creates a new seller directory service instance.
func NewSellerService(params SellerServiceParams) usecase.SellerUsecase {
	return &sellerService{
		sellerRepo: params.SellerRepo,
		guard:      params.Guard,
	}
}

// Search probes for a seller by phone without ever creating one.
func (s *sellerService) Search(ctx context.Context, principal *entity.Principal, rawPhone string) (*usecase.SearchSellerOutput, error) {
	if err := s.guard.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	phone, ok := entity.ParsePhone(rawPhone)
	if !ok {
		return nil, domainerrors.ErrInvalidPhone
	}

	seller, err := s.sellerRepo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return &usecase.SearchSellerOutput{Found: false}, nil
		}

		return nil, errors.Wrap(err, "failed to find seller by phone")
	}

	return &usecase.SearchSellerOutput{
		Found:  true,
		Seller: toSellerView(seller),
	}, nil
}

// UpdatePhoto replaces the profile photo of an existing seller.
func (s *sellerService) UpdatePhoto(ctx context.Context, principal *entity.Principal, rawPhone, photoURL string) (*usecase.SellerView, error) {
	if err := s.guard.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	if strings.TrimSpace(photoURL) == "" {
		return nil, domainerrors.ErrValidation.WithMessage("Telefone e URL da foto são obrigatórios")
	}

	phone, ok := entity.ParsePhone(rawPhone)
	if !ok {
		return nil, domainerrors.ErrInvalidPhone
	}

	seller, err := s.sellerRepo.UpdatePhoto(ctx, phone, photoURL)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to update seller photo")
	}

	return toSellerView(seller), nil
}

// resolveOrCreateSeller looks a seller up by canonical phone, creating one on
// first reference. Creation races on the unique phone constraint are resolved
// by re-reading, so two concurrent first registrations converge on one row.
// The repository must be bound to the caller's transaction when the creation
// has to be atomic with other writes.
func resolveOrCreateSeller(ctx context.Context, repo repository.SellerRepository, phone, nameIfNew string) (*entity.Seller, error) {
	seller, err := repo.FindByPhone(ctx, phone)
	if err == nil {
		return seller, nil
	}
	if !errors.Is(err, repository.ErrSellerNotFound) {
		return nil, errors.Wrap(err, "failed to find seller by phone")
	}

	name := strings.TrimSpace(nameIfNew)
	if name == "" {
		return nil, domainerrors.ErrValidation.WithMessage("Nome do vendedor é obrigatório para novo cadastro")
	}

	seller = &entity.Seller{
		ID:    uuid.New(),
		Phone: phone,
		Name:  name,
	}
	if err := repo.Create(ctx, seller); err != nil {
		if errors.Is(err, repository.ErrDuplicateSeller) {
			// Lost the race: another request registered the seller first.
			return repo.FindByPhone(ctx, phone)
		}

		return nil, errors.Wrap(err, "failed to create seller")
	}

	return seller, nil
}

// toSellerView maps a seller entity to its outward projection.
func toSellerView(seller *entity.Seller) *usecase.SellerView {
	return &usecase.SellerView{
		ID:       seller.ID.String(),
		Name:     seller.Name,
		Phone:    seller.Phone,
		PhotoURL: seller.PhotoURL,
	}
}
