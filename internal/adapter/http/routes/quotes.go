package routes

import (
	"instant_offer/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathMyQuote   = "/my-quote/:token"
	PathAdmin     = "/admin"
	PathCondition = "/condition"
	PathVehicles  = "/vehicles"
)

func addIntakeRoutes(rg *gin.RouterGroup, conditionHandler *handlers.ConditionHandler, vehicleHandler *handlers.VehicleHandler) {
	cond := rg.Group(PathCondition)
	{
		cond.GET("/steps", conditionHandler.GetSteps)
		cond.POST("/preview", conditionHandler.Preview)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.GET("/makes", vehicleHandler.ListMakes)
		vehicles.GET("/models", vehicleHandler.ListModels)
		vehicles.GET("/vin/:vin", vehicleHandler.DecodeVIN)
	}
}

// Token-addressed routes sit behind the per-IP limiter to slow down token guessing.
func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler, limiter gin.HandlerFunc) {
	rg.POST(PathQuotes, limiter, h.SubmitQuote)

	mine := rg.Group(PathMyQuote, limiter)
	{
		mine.GET("", h.GetQuote)
		mine.POST("/cancel", h.CancelQuote)
		mine.POST("/reschedule", h.ReschedulePickup)
		mine.PUT("/contact", h.UpdateContact)
		mine.POST("/accept", h.AcceptAndSchedule)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler, auth gin.HandlerFunc) {
	admin := rg.Group(PathAdmin, auth)
	{
		admin.GET(PathQuotes, h.ListQuotes)
		admin.GET(PathQuotes+"/:quote_id", h.GetQuote)
		admin.POST(PathQuotes+"/:quote_id/accept", h.AcceptQuote)
		admin.POST(PathQuotes+"/:quote_id/complete", h.CompleteQuote)
	}
}
