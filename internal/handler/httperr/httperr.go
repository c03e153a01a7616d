package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"rental-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err to a status by its kind. Errors without a kind are logged and hidden behind a generic message.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	msg, ok := errs.PublicMessage(err)
	if !ok || status == http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
		status, msg = http.StatusInternalServerError, internalErrorMessage
	}
	AbortWithError(c, status, err, msg, nil)
}

func StatusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrCapacity),
		errors.Is(err, errs.ErrDuplicate),
		errors.Is(err, errs.ErrNotEligible),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrPaymentFailed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
