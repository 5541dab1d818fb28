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

// GroupHandlerParams holds dependencies for GroupHandler, injected by Fx.
type GroupHandlerParams struct {
	fx.In

	GroupUC usecase.GroupUsecase
	Logger  *slog.Logger
}

// GroupHandler holds dependencies for group-related handlers
type GroupHandler struct {
	groupUC usecase.GroupUsecase
	logger  *slog.Logger
}

// NewGroupHandler is the constructor for GroupHandler
func NewGroupHandler(params GroupHandlerParams) *GroupHandler {
	return &GroupHandler{
		groupUC: params.GroupUC,
		logger:  params.Logger,
	}
}

// GroupView is the JSON projection of a group.
type GroupView struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	Description string    `json:"descricao,omitempty"`
	OwnerName   string    `json:"nomeDono,omitempty"`
	OwnerPhone  string    `json:"telefoneDono,omitempty"`
	CreatedAt   time.Time `json:"criadoEm"`
}

// List returns the groups visible to the principal.
func (h *GroupHandler) List(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	groups, err := h.groupUC.ListForPrincipal(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGroupViews(groups), "")
}

// Create registers a new group.
func (h *GroupHandler) Create(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	var req usecase.CreateGroupInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do grupo inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Campos obrigatórios ausentes")
	}

	group, err := h.groupUC.Create(c.Request().Context(), principal, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toGroupView(group), "Grupo criado com sucesso")
}

// Update edits an existing group.
func (h *GroupHandler) Update(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Identificador inválido")
	}

	var req usecase.UpdateGroupInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do grupo inválidos")
	}

	group, err := h.groupUC.Update(c.Request().Context(), principal, id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGroupView(group), "Grupo atualizado com sucesso")
}

// Delete removes a group without ratings attached.
func (h *GroupHandler) Delete(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Identificador inválido")
	}

	if err := h.groupUC.Delete(c.Request().Context(), principal, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Grupo excluído com sucesso")
}

func toGroupView(group *entity.Group) GroupView {
	return GroupView{
		ID:          group.ID.String(),
		Name:        group.Name,
		Description: group.Description,
		OwnerName:   group.OwnerName,
		OwnerPhone:  group.OwnerPhone,
		CreatedAt:   group.CreatedAt,
	}
}

func toGroupViews(groups []*entity.Group) []GroupView {
	views := make([]GroupView, 0, len(groups))
	for _, group := range groups {
		views = append(views, toGroupView(group))
	}

	return views
}
