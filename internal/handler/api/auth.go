package api

import (
	"net/http"

	reqdto "rental-marketplace/internal/handler/dto/request"
	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/handler/httperr"
	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/pkg/cookie"
	"rental-marketplace/internal/pkg/jwt"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	commands   commands.AuthCommands
	queries    queries.UserQueries
	jwtService *jwt.Service
	cfg        config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		commands:   cmds,
		queries:    q,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

// @Summary Register
// @Description Create a guest or host account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.Envelope{data=resdto.AuthResponse}
// @Failure 400 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.commands.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.signIn(c, http.StatusCreated, "User registered successfully", result)
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.Envelope{data=resdto.AuthResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.commands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.signIn(c, http.StatusOK, "Login successful", result)
}

func (h *AuthHandler) signIn(c *gin.Context, status int, message string, result *commands.AuthResult) {
	view, err := h.queries.GetProfile(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	user, err := resdto.FromUserView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	cookie.SetAccessToken(c, h.cfg.Cookie, result.AccessToken, h.jwtService.TokenDuration())
	c.JSON(status, resdto.OKWithMessage(message, resdto.AuthResponse{User: user, Token: result.AccessToken}))
}

// @Summary User logout
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; clearing the cookie is all the server can do.
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=resdto.UserResponse}
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	view, err := h.queries.GetProfile(c.Request.Context(), principal.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromUserView(view)
	respond(c, http.StatusOK, "", res, err)
}
