package impl

import (
	"context"
	"math"

	"qualifica/internal/domain/entity"
	domainerrors "qualifica/internal/domain/errors"
	"qualifica/internal/domain/repository"
	"qualifica/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reputationService struct {
	sellerRepo repository.SellerRepository
	ratingRepo repository.RatingRepository
}

// ReputationServiceParams holds dependencies for ReputationService, injected by Fx.
type ReputationServiceParams struct {
	fx.In

	SellerRepo repository.SellerRepository
	RatingRepo repository.RatingRepository
}

// NewReputationService creates a new reputation aggregator instance.
func NewReputationService(params ReputationServiceParams) usecase.ReputationUsecase {
	return &reputationService{
		sellerRepo: params.SellerRepo,
		ratingRepo: params.RatingRepo,
	}
}

// Lookup is the public read path: seller, summary, the distinct groups the
// seller was rated in, and the public projection of each non-deleted rating.
func (s *reputationService) Lookup(ctx context.Context, rawPhone string) (*usecase.SellerReputation, error) {
	phone, ok := entity.ParsePhone(rawPhone)
	if !ok {
		return nil, domainerrors.ErrInvalidPhone
	}

	seller, err := s.sellerRepo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by phone")
	}

	ratings, err := s.ratingRepo.FindActiveBySeller(ctx, seller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load seller ratings")
	}

	return &usecase.SellerReputation{
		Seller:  toSellerView(seller),
		Summary: summarize(ratings),
		Groups:  distinctGroups(ratings),
		Ratings: toPublicRatings(ratings),
	}, nil
}

// summarize counts ratings per category and averages the star scores.
// The mean is rounded to one decimal place, half away from zero.
func summarize(ratings []*entity.Rating) usecase.ReputationSummary {
	summary := usecase.ReputationSummary{Total: len(ratings)}

	starsSum := 0
	for _, r := range ratings {
		switch r.Category {
		case entity.CategoryPositive:
			summary.Positive++
		case entity.CategoryNegative:
			summary.Negative++
		case entity.CategoryNeutral:
			summary.Neutral++
		}
		starsSum += r.Stars
	}

	if summary.Total > 0 {
		mean := float64(starsSum) / float64(summary.Total)
		summary.MeanStars = math.Round(mean*10) / 10
	}

	return summary
}

// distinctGroups de-duplicates by group id; order is not significant.
func distinctGroups(ratings []*entity.Rating) []entity.GroupRef {
	seen := make(map[uuid.UUID]struct{}, len(ratings))
	groups := make([]entity.GroupRef, 0, len(ratings))
	for _, r := range ratings {
		if r.Group == nil {
			continue
		}
		if _, dup := seen[r.Group.ID]; dup {
			continue
		}
		seen[r.Group.ID] = struct{}{}
		groups = append(groups, *r.Group)
	}

	return groups
}

// toPublicRatings maps ratings to the public projection. Buyer identity
// fields do not exist on the target type.
func toPublicRatings(ratings []*entity.Rating) []usecase.PublicRating {
	public := make([]usecase.PublicRating, 0, len(ratings))
	for _, r := range ratings {
		item := usecase.PublicRating{
			ID:        r.ID.String(),
			Category:  r.Category.String(),
			Stars:     r.Stars,
			PhotoURL:  r.PhotoURL,
			CreatedAt: r.CreatedAt,
		}
		if r.Group != nil {
			item.Group = *r.Group
		}
		public = append(public, item)
	}

	return public
}
