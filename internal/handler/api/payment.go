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

type PaymentHandler struct {
	commands commands.PaymentCommands
	queries  queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{commands: cmds, queries: q}
}

// @Summary Create payment intent
// @Description Quote a stay and open an intent; no booking exists until it is confirmed
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePaymentIntentRequest true "Stay and amount"
// @Success 201 {object} resdto.Envelope{data=resdto.PaymentIntentEnvelope}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/create-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.CreatePaymentIntentRequest
	if !bindJSON(c, &req) {
		return
	}
	intent, err := h.commands.CreateIntent(c.Request.Context(), principal, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.OKWithMessage(
		"Payment intent created successfully",
		resdto.PaymentIntentEnvelope{PaymentIntent: resdto.FromIntent(intent)},
	))
}

// @Summary Confirm payment
// @Description Settle an intent and create the confirmed booking atomically
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmPaymentRequest true "Intent and provider"
// @Success 200 {object} resdto.Envelope{data=resdto.PaymentConfirmationResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/confirm [post]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.ConfirmPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	confirmation, err := h.commands.Confirm(c.Request.Context(), principal, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromConfirmation(confirmation)
	respond(c, http.StatusOK, "Payment confirmed and booking created successfully", res, err)
}

// @Summary Payment history
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} resdto.Envelope{data=resdto.PaymentHistoryResponse}
// @Router /payments/history [get]
func (h *PaymentHandler) History(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.queries.History(c.Request.Context(), principal.UserID, q.ToPage())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPaymentPage(page)
	respond(c, http.StatusOK, "", res, err)
}
