package usecase

import (
	"context"
	"time"

	"qualifica/internal/domain/entity"
)

// ReputationSummary aggregates the non-deleted ratings of a seller.
// MeanStars is rounded to one decimal place, half away from zero.
type ReputationSummary struct {
	Total     int     `json:"total"`
	Positive  int     `json:"positivas"`
	Negative  int     `json:"negativas"`
	Neutral   int     `json:"neutras"`
	MeanStars float64 `json:"mediaEstrelas"`
}

// PublicRating is the public projection of a rating. Buyer identity fields do
// not exist on this type, so they can never leak through the public path.
type PublicRating struct {
	ID        string          `json:"id"`
	Category  string          `json:"tipo"`
	Stars     int             `json:"estrelas"`
	PhotoURL  string          `json:"fotoUrl"`
	CreatedAt time.Time       `json:"criadoEm"`
	Group     entity.GroupRef `json:"grupo"`
}

// SellerReputation is the full public lookup result.
type SellerReputation struct {
	Seller  *SellerView       `json:"vendedor"`
	Summary ReputationSummary `json:"resumo"`
	Groups  []entity.GroupRef `json:"grupos"`
	Ratings []PublicRating    `json:"qualificacoes"`
}

// ReputationUsecase defines the public seller lookup.
type ReputationUsecase interface {
	// Lookup resolves a phone to a seller and aggregates their non-deleted
	// ratings. No authentication involved; buyer identity is never included.
	Lookup(ctx context.Context, rawPhone string) (*SellerReputation, error)
}
