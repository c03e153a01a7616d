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

type ReviewHandler struct {
	commands commands.ReviewCommands
	queries  queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{commands: cmds, queries: q}
}

// @Summary Create review
// @Description Requires a completed stay at the property; one review per guest and property
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.Envelope{data=resdto.CreatedResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.commands.Create(c.Request.Context(), principal, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.OKWithMessage("Review created successfully", resdto.CreatedResponse{ID: id}))
}

// @Summary List property reviews
// @Description Newest first, with the property's rating summary
// @Tags reviews
// @Produce json
// @Param propertyId path string true "Property ID"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} resdto.Envelope{data=resdto.PropertyReviewsResponse}
// @Failure 400 {object} httperr.Response
// @Router /reviews/property/{propertyId} [get]
func (h *ReviewHandler) ListByProperty(c *gin.Context) {
	propertyID, ok := pathID(c, "propertyId")
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	view, err := h.queries.ListByProperty(c.Request.Context(), propertyID, q.ToPage())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPropertyReviews(view)
	respond(c, http.StatusOK, "", res, err)
}

// @Summary List my reviews
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} resdto.Envelope{data=resdto.UserReviewsResponse}
// @Failure 401 {object} httperr.Response
// @Router /reviews/user [get]
func (h *ReviewHandler) ListMine(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.queries.ListByUser(c.Request.Context(), principal.UserID, q.ToPage())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromUserReviewPage(page)
	respond(c, http.StatusOK, "", res, err)
}

// @Summary Update review
// @Description Authors may change rating and comment of their own review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.commands.Update(c.Request.Context(), principal, id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OKWithMessage("Review updated successfully", resdto.CreatedResponse{ID: id}))
}

// @Summary Delete review
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.commands.Delete(c.Request.Context(), principal, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OKWithMessage("Review deleted successfully", nil))
}
