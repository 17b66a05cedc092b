package handlers

import (
	"net/http"

	request "instant_offer/internal/adapter/http/dto/request"
	response "instant_offer/internal/adapter/http/dto/response"
	"instant_offer/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the operator routes. Quotes are addressed by id.
type AdminHandler struct {
	quotes  usecase.IQuoteUseCase
	actions usecase.IQuoteActionUseCase
	logger  *zap.Logger
}

func NewAdminHandler(quotes usecase.IQuoteUseCase, actions usecase.IQuoteActionUseCase, logger *zap.Logger) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminHandler{quotes: quotes, actions: actions, logger: logger}
}

func (h *AdminHandler) ListQuotes(c *gin.Context) {
	var query request.ListQuotesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidListQuery)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		writeError(c, errInvalidListQuery)
		return
	}

	views, err := h.quotes.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteViews(views))
}

func (h *AdminHandler) GetQuote(c *gin.Context) {
	v, err := h.quotes.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteView(v))
}

func (h *AdminHandler) AcceptQuote(c *gin.Context) {
	note, ok := bindNote(c)
	if !ok {
		return
	}
	v, err := h.actions.Accept(c.Request.Context(), c.Param("quote_id"), note)
	if err != nil {
		h.fail(c, "accept", err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteView(v))
}

func (h *AdminHandler) CompleteQuote(c *gin.Context) {
	note, ok := bindNote(c)
	if !ok {
		return
	}
	v, err := h.actions.Complete(c.Request.Context(), c.Param("quote_id"), note)
	if err != nil {
		h.fail(c, "complete", err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteView(v))
}

func (h *AdminHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapQuoteError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[admin][handler] request failed", zap.String("op", op), zap.String("quote_id", c.Param("quote_id")), zap.Error(err))
	}
	writeError(c, appErr)
}

// bindNote reads the optional operator note. An empty body is allowed.
func bindNote(c *gin.Context) (string, bool) {
	var payload request.OperatorActionRequest
	if c.Request.ContentLength == 0 {
		return "", true
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return "", false
	}
	return payload.Note, true
}
