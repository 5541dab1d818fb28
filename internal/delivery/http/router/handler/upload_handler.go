package handler

import (
	"io"
	"log/slog"
	"net/http"

	"qualifica/internal/delivery/http/middleware"
	"qualifica/internal/delivery/http/response"
	"qualifica/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

// UploadHandler holds dependencies for the image upload handler
type UploadHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

// Upload accepts a multipart image under the "arquivo" field, with the upload
// kind in the "tipo" field. The size is re-read here but the authoritative
// checks live in the use case, before any storage round-trip.
func (h *UploadHandler) Upload(c echo.Context) error {
	principal, _ := middleware.GetPrincipal(c)

	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Arquivo é obrigatório")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Não foi possível ler o arquivo")
	}
	defer file.Close()

	// Read one byte past the cap so oversized files are detected without
	// buffering arbitrarily large bodies.
	data, err := io.ReadAll(io.LimitReader(file, usecase.MaxUploadSize+1))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Não foi possível ler o arquivo")
	}

	output, err := h.mediaUC.Upload(c.Request().Context(), principal, &usecase.UploadInput{
		Kind:        c.FormValue("tipo"),
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output, "Upload realizado com sucesso")
}
