package impl

import (
	"context"
	"strings"
	"time"

	"qualifica/internal/domain/entity"
	domainerrors "qualifica/internal/domain/errors"
	"qualifica/internal/domain/repository"
	"qualifica/internal/domain/service"
	"qualifica/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ratingService struct {
	txManager  repository.TransactionManager
	ratingRepo repository.RatingRepository
	groupRepo  repository.GroupRepository
	guard      service.AccessGuard
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RatingRepo repository.RatingRepository
	GroupRepo  repository.GroupRepository
	Guard      service.AccessGuard
}

// NewRatingService creates a new rating ledger service instance.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:  params.TxManager,
		ratingRepo: params.RatingRepo,
		groupRepo:  params.GroupRepo,
		guard:      params.Guard,
	}
}

// Record validates and persists a new qualification. Seller resolution and
// the rating insert run in one transaction, so a first-time seller is never
// left behind without its rating.
func (s *ratingService) Record(ctx context.Context, principal *entity.Principal, input *usecase.RecordRatingInput) (*entity.Rating, error) {
	if err := s.guard.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, domainerrors.ErrInvalidCategory
	}
	if !entity.ValidStars(input.Stars) {
		return nil, domainerrors.ErrInvalidStars
	}
	if strings.TrimSpace(input.PhotoURL) == "" {
		return nil, domainerrors.ErrValidation.WithMessage("Foto da qualificação é obrigatória")
	}
	buyerName := strings.TrimSpace(input.BuyerName)
	if buyerName == "" {
		return nil, domainerrors.ErrValidation.WithMessage("Nome do comprador é obrigatório")
	}

	sellerPhone, ok := entity.ParsePhone(input.SellerPhone)
	if !ok {
		return nil, domainerrors.ErrInvalidPhone.WithMessage("Telefone do vendedor inválido")
	}
	buyerPhone, ok := entity.ParsePhone(input.BuyerPhone)
	if !ok {
		return nil, domainerrors.ErrInvalidPhone.WithMessage("Telefone do comprador inválido")
	}

	groupID, err := uuid.Parse(input.GroupID)
	if err != nil {
		return nil, domainerrors.ErrValidation.WithMessage("Identificador de grupo inválido")
	}

	if err := s.guard.RequireGroupScope(principal, groupID); err != nil {
		return nil, err
	}

	if _, err := s.groupRepo.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, domainerrors.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group")
	}

	rating := &entity.Rating{
		ID:           uuid.New(),
		GroupID:      groupID,
		RecordedByID: principal.ID,
		BuyerPhone:   buyerPhone,
		BuyerName:    buyerName,
		Category:     category,
		Stars:        input.Stars,
		PhotoURL:     input.PhotoURL,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		seller, err := resolveOrCreateSeller(ctx, factory.SellerRepo(), sellerPhone, input.SellerName)
		if err != nil {
			return err
		}

		rating.SellerID = seller.ID
		rating.Seller = seller

		return factory.RatingRepo().Create(ctx, rating)
	})
	if err != nil {
		return nil, err
	}

	return rating, nil
}

// SoftDelete marks a rating as excluded. The row stays in storage with the
// audit trail; there is no hard delete path.
func (s *ratingService) SoftDelete(ctx context.Context, principal *entity.Principal, ratingID uuid.UUID) error {
	if err := s.guard.RequirePrincipal(principal); err != nil {
		return err
	}

	rating, err := s.ratingRepo.FindByID(ctx, ratingID)
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return domainerrors.ErrRatingNotFound
		}

		return errors.Wrap(err, "failed to find rating")
	}

	if rating.Deleted() {
		return domainerrors.ErrRatingAlreadyDeleted
	}

	if err := s.guard.RequireGroupScope(principal, rating.GroupID); err != nil {
		return err
	}

	deletion := entity.Deletion{At: time.Now(), By: principal.ID}
	if err := s.ratingRepo.SoftDelete(ctx, ratingID, deletion); err != nil {
		return errors.Wrap(err, "failed to soft delete rating")
	}

	return nil
}

// List returns one administrative page. The requested group filter narrows
// within the principal's membership scope but can never widen it.
func (s *ratingService) List(ctx context.Context, principal *entity.Principal, input *usecase.ListRatingsInput) (*usecase.RatingPage, error) {
	if err := s.guard.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	filter := repository.RatingFilter{
		SellerPhoneContains: entity.NormalizePhone(input.SellerPhone),
	}
	if input.Category != "" && input.Category.IsValid() {
		filter.Category = input.Category
	}

	if principal.IsSuperAdmin() {
		if input.GroupID != nil {
			filter.GroupIDs = []uuid.UUID{*input.GroupID}
		}
	} else {
		filter.GroupIDs = principal.GroupIDs
		if input.GroupID != nil {
			if !principal.MemberOf(*input.GroupID) {
				return nil, domainerrors.ErrGroupScopeForbidden
			}
			filter.GroupIDs = []uuid.UUID{*input.GroupID}
		}
		if len(filter.GroupIDs) == 0 {
			// No memberships means nothing is visible.
			return &usecase.RatingPage{
				Ratings:    []*entity.Rating{},
				Pagination: usecase.Pagination{Page: 1, PerPage: usecase.RatingsPageSize},
			}, nil
		}
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * usecase.RatingsPageSize

	ratings, total, err := s.ratingRepo.List(ctx, filter, offset, usecase.RatingsPageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	totalPages := total / usecase.RatingsPageSize
	if total%usecase.RatingsPageSize != 0 {
		totalPages++
	}

	return &usecase.RatingPage{
		Ratings: ratings,
		Pagination: usecase.Pagination{
			Page:       page,
			PerPage:    usecase.RatingsPageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}
