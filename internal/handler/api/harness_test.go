//go:build unit

package api_test

import (
	"errors"
	"testing"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/handler/middleware"
	"rental-marketplace/internal/handler/validation"
	"rental-marketplace/tests/common/builder"
	usecasemock "rental-marketplace/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	guestToken = "guest-token"
	hostToken  = "host-token"
	adminToken = "admin-token"
)

type testPrincipals struct {
	guest auth.Principal
	host  auth.Principal
	admin auth.Principal
}

// newTestEngine returns a gin engine with the binding rules installed and an auth middleware
// that accepts exactly the three fixed tokens above.
func newTestEngine(t *testing.T, ctrl *gomock.Controller) (*gin.Engine, *middleware.AuthMiddleware, testPrincipals) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())

	p := testPrincipals{
		guest: builder.GuestPrincipal(),
		host:  builder.HostPrincipal(),
		admin: builder.AdminPrincipal(),
	}

	validator := usecasemock.NewMockTokenValidator(ctrl)
	validator.EXPECT().ValidateToken(gomock.Any()).DoAndReturn(func(token string) (auth.Principal, error) {
		switch token {
		case guestToken:
			return p.guest, nil
		case hostToken:
			return p.host, nil
		case adminToken:
			return p.admin, nil
		default:
			return auth.Principal{}, errors.New("token signature mismatch")
		}
	}).AnyTimes()

	engine := gin.New()
	engine.Use(middleware.ErrorHandler())
	return engine, middleware.NewAuthMiddleware(validator), p
}
