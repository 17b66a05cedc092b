package response

import (
	"time"

	"instant_offer/internal/domain/entities"
	"instant_offer/internal/usecase"
)

type PricingResponse struct {
	BasePrice    int                        `json:"base_price"`
	CurrentPrice int                        `json:"current_price"`
	FinalPrice   int                        `json:"final_price"`
	OfferDisplay string                     `json:"offer_display"`
	Adjustments  []entities.PriceAdjustment `json:"adjustments,omitempty"`
}

func FromPricing(p entities.Pricing) PricingResponse {
	return PricingResponse{
		BasePrice:    p.BasePrice,
		CurrentPrice: p.CurrentPrice,
		FinalPrice:   p.FinalPrice,
		OfferDisplay: usecase.FormatOffer(p.FinalPrice),
		Adjustments:  p.Adjustments,
	}
}

// QuoteResponse is the self-service and operator view of a quote. The
// can_* flags and effective_status are computed at request time.
type QuoteResponse struct {
	QuoteID           string                        `json:"quote_id"`
	Status            string                        `json:"status"`
	EffectiveStatus   string                        `json:"effective_status"`
	Vehicle           entities.VehicleAttributes    `json:"vehicle"`
	Pricing           PricingResponse               `json:"pricing"`
	Contact           entities.ContactInfo          `json:"contact"`
	Pickup            *entities.PickupDetails       `json:"pickup,omitempty"`
	ActionHistory     []entities.ActionHistoryEntry `json:"action_history"`
	CanCancel         bool                          `json:"can_cancel"`
	CanReschedule     bool                          `json:"can_reschedule"`
	CanUpdateContact  bool                          `json:"can_update_contact"`
	CanAcceptSchedule bool                          `json:"can_accept_schedule"`
	CreatedAt         time.Time                     `json:"created_at"`
	UpdatedAt         time.Time                     `json:"updated_at"`
	ExpiresAt         time.Time                     `json:"expires_at"`
}

func FromQuoteView(v usecase.QuoteView) QuoteResponse {
	q := v.Quote
	history := q.CustomerActions.ActionHistory
	if history == nil {
		history = []entities.ActionHistoryEntry{}
	}
	return QuoteResponse{
		QuoteID:           q.QuoteID,
		Status:            string(q.Status),
		EffectiveStatus:   string(v.EffectiveStatus),
		Vehicle:           q.Vehicle,
		Pricing:           FromPricing(q.Pricing),
		Contact:           q.Contact,
		Pickup:            q.Pickup,
		ActionHistory:     history,
		CanCancel:         v.CanCancel,
		CanReschedule:     v.CanReschedule,
		CanUpdateContact:  v.CanUpdateContact,
		CanAcceptSchedule: v.CanAcceptSchedule,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
		ExpiresAt:         q.ExpiresAt,
	}
}

// SubmitQuoteResponse is only returned once, at creation. It is the only
// response that carries the access token.
type SubmitQuoteResponse struct {
	QuoteID     string          `json:"quote_id"`
	AccessToken string          `json:"access_token"`
	Status      string          `json:"status"`
	Pricing     PricingResponse `json:"pricing"`
	ExpiresAt   time.Time       `json:"expires_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

func FromCreatedQuote(q entities.Quote) SubmitQuoteResponse {
	return SubmitQuoteResponse{
		QuoteID:     q.QuoteID,
		AccessToken: q.AccessToken,
		Status:      string(q.Status),
		Pricing:     FromPricing(q.Pricing),
		ExpiresAt:   q.ExpiresAt,
		CreatedAt:   q.CreatedAt,
	}
}

type QuoteListResponse struct {
	Items []QuoteResponse `json:"items"`
	Count int             `json:"count"`
}

func FromQuoteViews(views []usecase.QuoteView) QuoteListResponse {
	items := make([]QuoteResponse, 0, len(views))
	for _, v := range views {
		items = append(items, FromQuoteView(v))
	}
	return QuoteListResponse{Items: items, Count: len(items)}
}
