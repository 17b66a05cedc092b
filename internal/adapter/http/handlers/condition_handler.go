package handlers

import (
	"net/http"

	request "instant_offer/internal/adapter/http/dto/request"
	response "instant_offer/internal/adapter/http/dto/response"
	"instant_offer/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ConditionHandler struct {
	usecase usecase.IConditionUseCase
}

func NewConditionHandler(uc usecase.IConditionUseCase) *ConditionHandler {
	return &ConditionHandler{usecase: uc}
}

func (h *ConditionHandler) GetSteps(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSteps(h.usecase.Steps()))
}

// Preview replays a partial answer set. Disqualification is reported in the
// body with 200; only malformed input is an error.
func (h *ConditionHandler) Preview(c *gin.Context) {
	var payload request.ConditionPreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	p, err := h.usecase.Preview(c.Request.Context(), payload.Vehicle.ToEntity(), payload.AnswersMap())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConditionPreview(p))
}
