package handlers

import (
	"net/http"

	request "instant_offer/internal/adapter/http/dto/request"
	response "instant_offer/internal/adapter/http/dto/response"
	"instant_offer/internal/domain/entities"
	"instant_offer/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler serves quote submission and the token-addressed self-service
// routes. The token travels in the path; it is never logged.
type QuoteHandler struct {
	quotes  usecase.IQuoteUseCase
	actions usecase.IQuoteActionUseCase
	logger  *zap.Logger
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, actions usecase.IQuoteActionUseCase, logger *zap.Logger) *QuoteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteHandler{quotes: quotes, actions: actions, logger: logger}
}

func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	q, err := h.quotes.SubmitQuote(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("[quote][handler] submit failed", zap.Error(err))
		}
		writeError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, response.FromCreatedQuote(q))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	v, err := h.quotes.GetByAccessToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteView(v))
}

func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	var payload request.CancelQuoteRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, errInvalidPayload)
			return
		}
	}
	v, err := h.actions.Cancel(c.Request.Context(), c.Param("token"), entities.CancelReason(payload.Reason), payload.Note)
	h.respond(c, "cancel", v, err)
}

func (h *QuoteHandler) ReschedulePickup(c *gin.Context) {
	var payload request.ReschedulePickupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	v, err := h.actions.ReschedulePickup(c.Request.Context(), c.Param("token"),
		payload.NewDate, payload.NewTime, entities.RescheduleReason(payload.Reason), payload.Note)
	h.respond(c, "reschedule", v, err)
}

func (h *QuoteHandler) UpdateContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	v, err := h.actions.UpdateContactInfo(c.Request.Context(), c.Param("token"), payload.ToEntity())
	h.respond(c, "update_contact", v, err)
}

func (h *QuoteHandler) AcceptAndSchedule(c *gin.Context) {
	var payload request.AcceptScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	v, err := h.actions.AcceptAndSchedule(c.Request.Context(), c.Param("token"),
		payload.PickupDate, payload.PickupWindow, payload.ContactPhone)
	h.respond(c, "accept_and_schedule", v, err)
}

func (h *QuoteHandler) respond(c *gin.Context, action string, v usecase.QuoteView, err error) {
	if err != nil {
		appErr := mapQuoteError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("[quote][handler] action failed", zap.String("action", action), zap.Error(err))
		}
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteView(v))
}
