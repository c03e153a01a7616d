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

type PropertyHandler struct {
	commands commands.PropertyCommands
	queries  queries.PropertyQueries
}

func NewPropertyHandler(cmds commands.PropertyCommands, q queries.PropertyQueries) *PropertyHandler {
	return &PropertyHandler{commands: cmds, queries: q}
}

// @Summary Search properties
// @Description Filtered, sorted and paginated catalog of active listings
// @Tags properties
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param city query string false "Case-insensitive substring"
// @Param type query string false "apartment, house, villa, cabin or hotel"
// @Param minPrice query number false "Minimum nightly price"
// @Param maxPrice query number false "Maximum nightly price"
// @Param bedrooms query int false "Minimum bedrooms"
// @Param maxGuests query int false "Minimum guest capacity"
// @Param amenities query string false "Comma separated, all required"
// @Param sortBy query string false "created_at, price, title, avg_rating"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} resdto.Envelope{data=resdto.PropertyListResponse}
// @Failure 400 {object} httperr.Response
// @Router /properties [get]
func (h *PropertyHandler) Search(c *gin.Context) {
	var q reqdto.SearchPropertiesQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.queries.Search(c.Request.Context(), q.ToFilter(), q.ToPage())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPropertyPage(page)
	respond(c, http.StatusOK, "", res, err)
}

// @Summary Get property
// @Description Property detail with host contact and recent reviews
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.Envelope{data=resdto.PropertyDetailResponse}
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPropertyDetail(view)
	respond(c, http.StatusOK, "", res, err)
}

// @Summary My listings
// @Description Listings owned by the signed-in host, including deactivated ones
// @Tags properties
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} resdto.Envelope{data=resdto.HostPropertyListResponse}
// @Failure 403 {object} httperr.Response
// @Router /properties/mine [get]
func (h *PropertyHandler) ListMine(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.queries.ListMine(c.Request.Context(), principal, q.ToPage())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromHostPropertyPage(page)
	respond(c, http.StatusOK, "", res, err)
}

// @Summary Create property
// @Tags properties
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePropertyRequest true "Listing"
// @Success 201 {object} resdto.Envelope{data=resdto.PropertyDetailResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.CreatePropertyRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.commands.Create(c.Request.Context(), principal, req.ToDraft())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPropertyDetail(view)
	respond(c, http.StatusCreated, "Property created successfully", res, err)
}

// @Summary Update property
// @Tags properties
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body reqdto.UpdatePropertyRequest true "Fields to change"
// @Success 200 {object} resdto.Envelope{data=resdto.PropertyDetailResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdatePropertyRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.commands.Update(c.Request.Context(), principal, id, req.ToPatch()); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPropertyDetail(view)
	respond(c, http.StatusOK, "Property updated successfully", res, err)
}

// @Summary Delete property
// @Description Deactivates the listing; existing bookings are kept
// @Tags properties
// @Security BearerAuth
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.OKWithMessage("Property deleted successfully", nil))
}
