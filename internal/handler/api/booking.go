package api

import (
	"net/http"

	reqdto "rental-marketplace/internal/handler/dto/request"
	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/handler/httperr"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{commands: cmds, queries: q}
}

// @Summary Create booking
// @Description Direct booking without payment; starts pending and does not hold the dates
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.Envelope{data=resdto.BookingDetailResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.commands.Create(c.Request.Context(), principal, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.writeDetail(c, http.StatusCreated, "Booking created successfully", principal.UserID, id)
}

// @Summary List my bookings
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending, confirmed, cancelled or completed"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} resdto.Envelope{data=resdto.BookingListResponse}
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var q reqdto.ListBookingsQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.queries.List(c.Request.Context(), principal.UserID, q.Status, q.ToPage())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBookingPage(page)
	respond(c, http.StatusOK, "", res, err)
}

// @Summary Get booking
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Envelope{data=resdto.BookingDetailResponse}
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.writeDetail(c, http.StatusOK, "", principal.UserID, id)
}

// @Summary Cancel booking
// @Description Only the guest may cancel, and only before check-in
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Envelope{data=resdto.BookingDetailResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/cancel [put]
func (h *BookingHandler) Cancel(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.commands.Cancel(c.Request.Context(), principal, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.writeDetail(c, http.StatusOK, "Booking cancelled successfully", principal.UserID, id)
}

// @Summary Complete booking
// @Description Host of the property (or an admin) marks a confirmed stay as completed after check-out
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/complete [put]
func (h *BookingHandler) Complete(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.commands.Complete(c.Request.Context(), principal, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OKWithMessage("Booking completed successfully", nil))
}

// @Summary Export property bookings
// @Description Spreadsheet of every booking for a listing the caller hosts
// @Tags bookings
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Property ID"
// @Success 200 {file} file
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/bookings/export [get]
func (h *BookingHandler) ExportForProperty(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	propertyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	export, err := h.queries.ExportForProperty(c.Request.Context(), principal, propertyID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	c.Data(http.StatusOK, export.ContentType, export.Content)
}

func (h *BookingHandler) writeDetail(c *gin.Context, status int, message string, userID, id uuid.UUID) {
	view, err := h.queries.Get(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBookingDetail(view)
	respond(c, status, message, res, err)
}
