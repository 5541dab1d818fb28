// Package errors defines the application error taxonomy shared by every layer.
package errors

import (
	"net/http"

	"qualifica/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same business code, so the variants
// produced by WithMessage and WithDetails still compare equal to their base.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage swaps the user-facing message, keeping code and status.
// Used when a validation error must name the offending field.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types. User-facing messages are in pt-BR, matching the
// audience of the service.
var (
	// Validation errors
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados inválidos",
		"",
	)

	ErrInvalidPhone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE",
		"Telefone inválido: informe 10 ou 11 dígitos",
		"",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"Tipo deve ser POSITIVA, NEGATIVA ou NEUTRA",
		"",
	)

	ErrInvalidStars = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STARS",
		"Estrelas deve ser de 1 a 5",
		"",
	)

	ErrInvalidPosition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_POSITION",
		"Posição deve ser ESQUERDA ou DIREITA",
		"",
	)

	// Authentication and authorization errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Não autenticado",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"E-mail ou senha inválidos",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acesso negado",
		"",
	)

	ErrGroupScopeForbidden = NewBaseError(
		http.StatusForbidden,
		"GROUP_SCOPE_FORBIDDEN",
		"Você não tem permissão neste grupo",
		"",
	)

	// Not-found errors
	ErrSellerNotFound = NewBaseError(
		http.StatusNotFound,
		"SELLER_NOT_FOUND",
		"Vendedor não encontrado",
		"",
	)

	ErrGroupNotFound = NewBaseError(
		http.StatusNotFound,
		"GROUP_NOT_FOUND",
		"Grupo não encontrado",
		"",
	)

	ErrAdminNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMIN_NOT_FOUND",
		"Administrador não encontrado",
		"",
	)

	ErrRatingNotFound = NewBaseError(
		http.StatusNotFound,
		"RATING_NOT_FOUND",
		"Qualificação não encontrada",
		"",
	)

	ErrBannerNotFound = NewBaseError(
		http.StatusNotFound,
		"BANNER_NOT_FOUND",
		"Destaque não encontrado",
		"",
	)

	// Conflict errors
	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"Já existe um administrador com este e-mail",
		"",
	)

	ErrRatingAlreadyDeleted = NewBaseError(
		http.StatusConflict,
		"RATING_ALREADY_DELETED",
		"Qualificação já foi excluída",
		"",
	)

	ErrGroupHasRatings = NewBaseError(
		http.StatusConflict,
		"GROUP_HAS_RATINGS",
		"Grupo possui qualificações vinculadas",
		"",
	)

	ErrSellerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SELLER_ALREADY_EXISTS",
		"Já existe um vendedor com este telefone",
		"",
	)

	// Upload errors
	ErrUploadNotImage = NewBaseError(
		http.StatusBadRequest,
		"UPLOAD_NOT_IMAGE",
		"O arquivo deve ser uma imagem",
		"",
	)

	ErrUploadTooLarge = NewBaseError(
		http.StatusBadRequest,
		"UPLOAD_TOO_LARGE",
		"Imagem excede o limite de 5MB",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Erro interno"
}

// Details returns detailed error information. Query text and driver detail
// stay out of responses; only the repository-supplied context is carried.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
