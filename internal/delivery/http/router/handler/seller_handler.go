package handler

import (
	"log/slog"
	"net/http"

	"qualifica/internal/delivery/http/middleware"
	"qualifica/internal/delivery/http/response"
	"qualifica/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SellerHandlerParams holds dependencies for SellerHandler, injected by Fx.
type SellerHandlerParams struct {
	fx.In

	SellerUC     usecase.SellerUsecase
	ReputationUC usecase.ReputationUsecase
	Logger       *slog.Logger
}

// SellerHandler holds dependencies for seller-related handlers
type SellerHandler struct {
	sellerUC     usecase.SellerUsecase
	reputationUC usecase.ReputationUsecase
	logger       *slog.Logger
}

// NewSellerHandler is the constructor for SellerHandler
func NewSellerHandler(params SellerHandlerParams) *SellerHandler {
	return &SellerHandler{
		sellerUC:     params.SellerUC,
		reputationUC: params.ReputationUC,
		logger:       params.Logger,
	}
}

// Lookup is the public reputation lookup by phone. No authentication, and the
// payload never includes buyer identity.
func (h *SellerHandler) Lookup(c echo.Context) error {
	phone := c.QueryParam("telefone")
	if phone == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "Telefone é obrigatório")
	}

	reputation, err := h.reputationUC.Lookup(c.Request().Context(), phone)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reputation, "")
}

// Search is the authenticated existence probe used by the rating form.
func (h *SellerHandler) Search(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	phone := c.QueryParam("telefone")
	if phone == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "Telefone é obrigatório")
	}

	output, err := h.sellerUC.Search(c.Request().Context(), principal, phone)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// UpdatePhotoRequest carries a seller profile photo replacement.
type UpdatePhotoRequest struct {
	Phone    string `json:"telefone" validate:"required"`
	PhotoURL string `json:"fotoPerfilUrl" validate:"required"`
}

// UpdatePhoto replaces the profile photo of an existing seller.
func (h *SellerHandler) UpdatePhoto(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	var req UpdatePhotoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Telefone e foto são obrigatórios")
	}

	seller, err := h.sellerUC.UpdatePhoto(c.Request().Context(), principal, req.Phone, req.PhotoURL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, seller, "Foto atualizada com sucesso")
}
