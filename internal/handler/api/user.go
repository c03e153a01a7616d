package api

import (
	"net/http"

	reqdto "rental-marketplace/internal/handler/dto/request"
	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/handler/httperr"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	commands commands.UserCommands
	queries  queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{commands: cmds, queries: q}
}

// @Summary Get profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=resdto.UserResponse}
// @Failure 401 {object} httperr.Response
// @Router /users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
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

// @Summary Update profile
// @Description Update name, phone or avatar of the signed-in user
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} resdto.Envelope{data=resdto.UserResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.commands.UpdateProfile(c.Request.Context(), principal, req.ToPatch()); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.queries.GetProfile(c.Request.Context(), principal.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromUserView(view)
	respond(c, http.StatusOK, "Profile updated successfully", res, err)
}

// @Summary List users
// @Description Admin only
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param role query string false "guest, host or admin"
// @Success 200 {object} resdto.Envelope{data=resdto.UserListResponse}
// @Failure 403 {object} httperr.Response
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var q reqdto.ListUsersQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.queries.List(c.Request.Context(), principal, q.Role, q.ToPage())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromUserPage(page)
	respond(c, http.StatusOK, "", res, err)
}
