package handler

import (
	"log/slog"
	"net/http"
	"time"

	"qualifica/internal/delivery/http/middleware"
	"qualifica/internal/delivery/http/response"
	"qualifica/internal/domain/entity"
	"qualifica/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BannerHandlerParams holds dependencies for BannerHandler, injected by Fx.
type BannerHandlerParams struct {
	fx.In

	BannerUC usecase.BannerUsecase
	Logger   *slog.Logger
}

// BannerHandler holds dependencies for banner-related handlers
type BannerHandler struct {
	bannerUC usecase.BannerUsecase
	logger   *slog.Logger
}

// NewBannerHandler is the constructor for BannerHandler
func NewBannerHandler(params BannerHandlerParams) *BannerHandler {
	return &BannerHandler{
		bannerUC: params.BannerUC,
		logger:   params.Logger,
	}
}

// BannerView is the JSON projection of a banner.
type BannerView struct {
	ID        string    `json:"id"`
	Position  string    `json:"posicao"`
	Title     string    `json:"titulo"`
	ImageURL  string    `json:"imagemUrl"`
	LinkURL   string    `json:"linkUrl,omitempty"`
	Active    bool      `json:"ativo"`
	Visits    int64     `json:"acessos"`
	CreatedAt time.Time `json:"criadoEm"`
}

// ListActive returns the active banners. Public.
func (h *BannerHandler) ListActive(c echo.Context) error {
	banners, err := h.bannerUC.ListActive(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBannerViews(banners), "")
}

// ListAll returns every banner for management.
func (h *BannerHandler) ListAll(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	banners, err := h.bannerUC.ListAll(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBannerViews(banners), "")
}

// Create registers a new active banner for a position.
func (h *BannerHandler) Create(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	var req usecase.CreateBannerInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do destaque inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Campos obrigatórios ausentes")
	}

	banner, err := h.bannerUC.Create(c.Request().Context(), principal, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBannerView(banner), "Destaque criado com sucesso")
}

// Update partially edits a banner.
func (h *BannerHandler) Update(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Identificador inválido")
	}

	var req usecase.UpdateBannerInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do destaque inválidos")
	}

	banner, err := h.bannerUC.Update(c.Request().Context(), principal, id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBannerView(banner), "Destaque atualizado com sucesso")
}

// Delete removes a banner.
func (h *BannerHandler) Delete(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Identificador inválido")
	}

	if err := h.bannerUC.Delete(c.Request().Context(), principal, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Destaque excluído com sucesso")
}

// RegisterVisit bumps the access counter. A failure here must not break the
// visitor's navigation, so it is logged and swallowed.
func (h *BannerHandler) RegisterVisit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Identificador inválido")
	}

	if err := h.bannerUC.RegisterVisit(c.Request().Context(), id); err != nil {
		h.logger.Warn("Failed to register banner visit",
			"bannerId", id.String(),
			"error", err.Error(),
		)
	}

	return response.Success(c, http.StatusOK, nil, "")
}

func toBannerView(banner *entity.Banner) BannerView {
	return BannerView{
		ID:        banner.ID.String(),
		Position:  banner.Position.String(),
		Title:     banner.Title,
		ImageURL:  banner.ImageURL,
		LinkURL:   banner.LinkURL,
		Active:    banner.Active,
		Visits:    banner.Visits,
		CreatedAt: banner.CreatedAt,
	}
}

func toBannerViews(banners []*entity.Banner) []BannerView {
	views := make([]BannerView, 0, len(banners))
	for _, banner := range banners {
		views = append(views, toBannerView(banner))
	}

	return views
}
