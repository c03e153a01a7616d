package api

import (
	"net/http"

	"rental-marketplace/internal/domain/auth"
	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/handler/httperr"
	"rental-marketplace/internal/handler/middleware"
	"rental-marketplace/internal/handler/validation"
	"rental-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingPrincipal = errs.New("principal missing from context")
	errInvalidID        = errs.New("invalid path id")
)

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, validation.Message(err), nil)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, validation.Message(err), nil)
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errInvalidID, err.Error()), "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// mustPrincipal is for routes behind RequireAuth; a missing principal means the route was mis-wired.
func mustPrincipal(c *gin.Context) (auth.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok || p.IsZero() {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingPrincipal, "Access token is required", nil)
		return auth.Principal{}, false
	}
	return p, true
}

// respond writes data in the success envelope unless its conversion failed.
func respond[T any](c *gin.Context, status int, message string, data T, err error) {
	if err != nil {
		httperr.Abort(c, errs.Wrap(err, "map response"))
		return
	}
	c.JSON(status, resdto.OKWithMessage(message, data))
}
