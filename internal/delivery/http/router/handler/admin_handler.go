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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler holds dependencies for administrator registry handlers
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// AdminView is the JSON projection of an administrator account. The password
// hash has no field here, so it can never leak into a response.
type AdminView struct {
	ID        string            `json:"id"`
	Name      string            `json:"nome"`
	Email     string            `json:"email"`
	Role      string            `json:"papel"`
	Active    bool              `json:"ativo"`
	Groups    []entity.GroupRef `json:"grupos"`
	CreatedAt time.Time         `json:"criadoEm"`
}

// List returns every administrator account.
func (h *AdminHandler) List(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	admins, err := h.adminUC.List(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]AdminView, 0, len(admins))
	for _, admin := range admins {
		views = append(views, toAdminView(admin))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Create registers a new ADMIN account.
func (h *AdminHandler) Create(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	var req usecase.CreateAdminInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do administrador inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Campos obrigatórios ausentes ou inválidos")
	}

	admin, err := h.adminUC.Create(c.Request().Context(), principal, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAdminView(admin), "Administrador criado com sucesso")
}

// Update edits an account, optionally replacing its memberships.
func (h *AdminHandler) Update(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Identificador inválido")
	}

	var req usecase.UpdateAdminInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do administrador inválidos")
	}

	if err := h.adminUC.Update(c.Request().Context(), principal, id, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Administrador atualizado com sucesso")
}

// Deactivate clears the active flag of an account.
func (h *AdminHandler) Deactivate(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Identificador inválido")
	}

	if err := h.adminUC.Deactivate(c.Request().Context(), principal, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Administrador desativado com sucesso")
}

func toAdminView(admin *entity.Admin) AdminView {
	groups := admin.Groups
	if groups == nil {
		groups = []entity.GroupRef{}
	}

	return AdminView{
		ID:        admin.ID.String(),
		Name:      admin.Name,
		Email:     admin.Email,
		Role:      admin.Role.String(),
		Active:    admin.Active,
		Groups:    groups,
		CreatedAt: admin.CreatedAt,
	}
}
