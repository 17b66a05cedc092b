package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "instant_offer/internal/adapter/http/dto/response"
	"instant_offer/internal/usecase"
	"instant_offer/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

var errInvalidYear = errors.New("invalid year")

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

func (h *VehicleHandler) ListMakes(c *gin.Context) {
	year, err := queryYear(c)
	if err != nil {
		writeError(c, mapQuoteError(usecase.ErrInvalidVehicle))
		return
	}
	makes, err := h.usecase.Makes(c.Request.Context(), year)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNames(makes))
}

func (h *VehicleHandler) ListModels(c *gin.Context) {
	year, err := queryYear(c)
	if err != nil {
		writeError(c, mapQuoteError(usecase.ErrInvalidVehicle))
		return
	}
	models, err := h.usecase.Models(c.Request.Context(), year, c.Query("make"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNames(models))
}

// DecodeVIN answers 200 with partial=true when only some attributes were
// decoded, so the intake form can ask for the rest.
func (h *VehicleHandler) DecodeVIN(c *gin.Context) {
	attrs, err := h.usecase.DecodeVIN(c.Request.Context(), c.Param("vin"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response.VINDecodeResponse{Vehicle: attrs})
	case errors.Is(err, interfaces.ErrVINPartialData):
		c.JSON(http.StatusOK, response.VINDecodeResponse{Vehicle: attrs, Partial: true})
	default:
		writeError(c, mapQuoteError(err))
	}
}

func queryYear(c *gin.Context) (int, error) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0, errInvalidYear
	}
	return year, nil
}
