package usecase

import (
	"context"

	"qualifica/internal/domain/entity"
)

// SellerView is the administrative projection of a seller.
type SellerView struct {
	ID       string `json:"id"`
	Name     string `json:"nome"`
	Phone    string `json:"telefone"`
	PhotoURL string `json:"fotoPerfilUrl,omitempty"`
}

// SearchSellerOutput reports whether a seller exists for a phone, used by the
// rating form to decide whether a name is required.
type SearchSellerOutput struct {
	Found  bool        `json:"encontrado"`
	Seller *SellerView `json:"vendedor,omitempty"`
}

// SellerUsecase defines the seller directory use cases.
type SellerUsecase interface {
	// Search probes for a seller by phone. Requires an authenticated
	// principal; never creates.
	Search(ctx context.Context, principal *entity.Principal, rawPhone string) (*SearchSellerOutput, error)

	// UpdatePhoto replaces the profile photo reference of an existing seller.
	// Fails with NotFound when the phone resolves to no seller.
	UpdatePhoto(ctx context.Context, principal *entity.Principal, rawPhone, photoURL string) (*SellerView, error)
}
