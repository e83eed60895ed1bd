package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mindflow/internal/auth"
	"github.com/abhisek/mindflow/internal/llm"
	"github.com/abhisek/mindflow/internal/store"
	"github.com/abhisek/mindflow/internal/study"
)

// AppError is the JSON error envelope every endpoint returns.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Status  int    `json:"status"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
}

const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeConflict      = "CONFLICT"
	CodeProviderError = "PROVIDER_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)

func errValidation(message, details string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Details: details, Status: http.StatusBadRequest}
}

func errNotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf("%s not found", resource), Status: http.StatusNotFound}
}

func errUnauthorized(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message, Status: http.StatusUnauthorized}
}

func errForbidden() *AppError {
	return &AppError{Code: CodeForbidden, Message: "forbidden", Status: http.StatusForbidden}
}

func errConflict(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message, Status: http.StatusConflict}
}

func errProvider(message string) *AppError {
	return &AppError{Code: CodeProviderError, Message: message, Status: http.StatusBadGateway}
}

func errInternal() *AppError {
	return &AppError{Code: CodeInternalError, Message: "internal server error", Status: http.StatusInternalServerError}
}

// respondError maps service errors onto the envelope. Unrecognized errors
// become opaque 500s; the detail goes to the log, not the client.
func (s *Server) respondError(c *gin.Context, err error) {
	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		// Already shaped.
	case errors.Is(err, store.ErrNotFound):
		appErr = errNotFound("resource")
	case errors.Is(err, study.ErrForbidden):
		appErr = errForbidden()
	case errors.Is(err, auth.ErrInvalidCredentials):
		appErr = errUnauthorized("invalid credentials")
	case errors.Is(err, auth.ErrSessionExpired):
		appErr = errUnauthorized("session expired")
	case errors.Is(err, auth.ErrUsernameTaken):
		appErr = errConflict("username already exists")
	case errors.Is(err, auth.ErrWeakCredentials):
		appErr = errValidation("invalid input", err.Error())
	case isProviderError(err):
		appErr = errProvider("study assistant unavailable, please try again")
	default:
		s.log.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		appErr = errInternal()
	}
	c.AbortWithStatusJSON(appErr.Status, appErr)
}

func isProviderError(err error) bool {
	var (
		unavail *llm.ErrProviderUnavailable
		rate    *llm.ErrRateLimit
		invalid *llm.ErrInvalidResponse
	)
	return errors.As(err, &unavail) || errors.As(err, &rate) || errors.As(err, &invalid)
}
