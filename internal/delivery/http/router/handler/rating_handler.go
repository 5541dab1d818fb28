package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"qualifica/internal/delivery/http/middleware"
	"qualifica/internal/delivery/http/response"
	"qualifica/internal/domain/entity"
	"qualifica/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RatingHandlerParams holds dependencies for RatingHandler, injected by Fx.
type RatingHandlerParams struct {
	fx.In

	RatingUC usecase.RatingUsecase
	Logger   *slog.Logger
}

// RatingHandler holds dependencies for rating-related handlers
type RatingHandler struct {
	ratingUC usecase.RatingUsecase
	logger   *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler
func NewRatingHandler(params RatingHandlerParams) *RatingHandler {
	return &RatingHandler{
		ratingUC: params.RatingUC,
		logger:   params.Logger,
	}
}

// RatingView is the administrative projection of a rating, buyer identity
// included.
type RatingView struct {
	ID         string              `json:"id"`
	Seller     *usecase.SellerView `json:"vendedor,omitempty"`
	Group      *entity.GroupRef    `json:"grupo,omitempty"`
	Category   string              `json:"tipo"`
	Stars      int                 `json:"estrelas"`
	PhotoURL   string              `json:"fotoUrl"`
	BuyerPhone string              `json:"telefoneComprador"`
	BuyerName  string              `json:"nomeComprador"`
	RecordedBy string              `json:"registradoPor,omitempty"`
	CreatedAt  time.Time           `json:"criadoEm"`
}

// RatingPageView is one page of the administrative listing.
type RatingPageView struct {
	Ratings    []RatingView       `json:"qualificacoes"`
	Pagination usecase.Pagination `json:"paginacao"`
}

// Record registers a new qualification.
func (h *RatingHandler) Record(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	var req usecase.RecordRatingInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados da qualificação inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Campos obrigatórios ausentes")
	}

	rating, err := h.ratingUC.Record(c.Request().Context(), principal, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toRatingView(rating), "Qualificação registrada com sucesso")
}

// List returns a page of ratings visible to the principal.
func (h *RatingHandler) List(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	input := &usecase.ListRatingsInput{
		SellerPhone: c.QueryParam("telefone"),
		Category:    entity.Category(c.QueryParam("tipo")),
	}

	if rawGroupID := c.QueryParam("grupoId"); rawGroupID != "" {
		groupID, err := uuid.Parse(rawGroupID)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "Identificador de grupo inválido")
		}
		input.GroupID = &groupID
	}

	if rawPage := c.QueryParam("pagina"); rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "Página inválida")
		}
		input.Page = page
	}

	page, err := h.ratingUC.List(c.Request().Context(), principal, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]RatingView, 0, len(page.Ratings))
	for _, rating := range page.Ratings {
		views = append(views, toRatingView(rating))
	}

	return response.Success(c, http.StatusOK, RatingPageView{
		Ratings:    views,
		Pagination: page.Pagination,
	}, "")
}

// Delete soft-deletes a rating, keeping the row for audit.
func (h *RatingHandler) Delete(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Identificador inválido")
	}

	if err := h.ratingUC.SoftDelete(c.Request().Context(), principal, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Qualificação excluída com sucesso")
}

func toRatingView(rating *entity.Rating) RatingView {
	view := RatingView{
		ID:         rating.ID.String(),
		Group:      rating.Group,
		Category:   rating.Category.String(),
		Stars:      rating.Stars,
		PhotoURL:   rating.PhotoURL,
		BuyerPhone: rating.BuyerPhone,
		BuyerName:  rating.BuyerName,
		RecordedBy: rating.RecordedByName,
		CreatedAt:  rating.CreatedAt,
	}
	if rating.Seller != nil {
		view.Seller = &usecase.SellerView{
			ID:       rating.Seller.ID.String(),
			Name:     rating.Seller.Name,
			Phone:    rating.Seller.Phone,
			PhotoURL: rating.Seller.PhotoURL,
		}
	}

	return view
}
