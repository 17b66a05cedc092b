package handlers

import (
	"errors"
	"net/http"

	"instant_offer/internal/usecase"
	"instant_offer/internal/usecase/interfaces"
	"instant_offer/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidListQuery = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid list query", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapQuoteError translates use case errors into client-facing errors. The
// order matters: specific validation sentinels wrap ErrValidation.
func mapQuoteError(err error) *pkg.AppError {
	var disq *usecase.DisqualifiedError
	switch {
	case errors.As(err, &disq):
		d := disq.Disqualification
		return pkg.NewDomainErrorSimple("VEHICLE_DISQUALIFIED", d.Reason, http.StatusUnprocessableEntity).
			WithDetails(map[string]string{"step_id": string(d.StepID), "option": string(d.Option)})
	case errors.Is(err, usecase.ErrInvalidVIN):
		return pkg.NewDomainErrorSimple("INVALID_VIN", "Invalid VIN", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidVehicle):
		return pkg.NewDomainErrorSimple("INVALID_VEHICLE", "Invalid vehicle", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConditionIncomplete):
		return pkg.NewDomainErrorSimple("CONDITION_INCOMPLETE", "Condition questions are incomplete", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAnswers):
		return pkg.NewDomainErrorSimple("INVALID_ANSWERS", "Invalid condition answers", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContactInfo):
		return pkg.NewDomainErrorSimple("INVALID_CONTACT_INFO", "Invalid contact info", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPickupDate):
		return pkg.NewDomainErrorSimple("INVALID_PICKUP_DATE", "Pickup date must be after today", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPickupWindow):
		return pkg.NewDomainErrorSimple("INVALID_PICKUP_WINDOW", "Pickup window must be morning, afternoon or evening", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidReason):
		return pkg.NewDomainErrorSimple("INVALID_REASON", "Invalid reason", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteFilter):
		return errInvalidListQuery
	case errors.Is(err, usecase.ErrValidation):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "This action is not available for the quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoChange):
		return pkg.NewDomainErrorSimple("NO_CHANGE", "Nothing to update", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification), errors.Is(err, interfaces.ErrLockTimeout):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "The quote is being updated, please retry", http.StatusConflict)
	case errors.Is(err, interfaces.ErrVINNotDecodable):
		return pkg.NewDomainErrorSimple("VIN_NOT_DECODABLE", "VIN could not be decoded", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrVehicleServiceUnavailable):
		return pkg.NewDomainError("VEHICLE_SERVICE_UNAVAILABLE", "Vehicle data service unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
