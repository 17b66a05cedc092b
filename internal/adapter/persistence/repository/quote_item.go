package repository

import (
	"instant_offer/internal/domain/entities"
)

type quoteItem struct {
	QuoteID       string                `dynamodbav:"quote_id"`
	AccessToken   string                `dynamodbav:"access_token"`
	Vehicle       vehicleItem           `dynamodbav:"vehicle"`
	Answers       map[string]answerItem `dynamodbav:"answers"`
	Pricing       pricingItem           `dynamodbav:"pricing"`
	Contact       contactItem           `dynamodbav:"contact"`
	Pickup        *pickupItem           `dynamodbav:"pickup,omitempty"`
	Status        string                `dynamodbav:"status"`
	ActionHistory []historyItem         `dynamodbav:"action_history"`
	CreatedAt     string                `dynamodbav:"created_at"`
	UpdatedAt     string                `dynamodbav:"updated_at"`
	ExpiresAt     string                `dynamodbav:"expires_at"`
	Version       int64                 `dynamodbav:"version"`
}

type vehicleItem struct {
	Year  int    `dynamodbav:"year"`
	Make  string `dynamodbav:"make"`
	Model string `dynamodbav:"model"`
	Trim  string `dynamodbav:"trim,omitempty"`
	VIN   string `dynamodbav:"vin,omitempty"`
}

type answerItem struct {
	Option string   `dynamodbav:"option"`
	Areas  []string `dynamodbav:"areas,omitempty"`
}

type pricingItem struct {
	BasePrice    int              `dynamodbav:"base_price"`
	CurrentPrice int              `dynamodbav:"current_price"`
	FinalPrice   int              `dynamodbav:"final_price"`
	Adjustments  []adjustmentItem `dynamodbav:"adjustments,omitempty"`
}

type adjustmentItem struct {
	Key    string `dynamodbav:"key"`
	Amount int    `dynamodbav:"amount"`
}

type contactItem struct {
	Name    string `dynamodbav:"name"`
	Email   string `dynamodbav:"email"`
	Phone   string `dynamodbav:"phone"`
	Address string `dynamodbav:"address"`
}

type pickupItem struct {
	ScheduledDate string `dynamodbav:"scheduled_date"`
	ScheduledTime string `dynamodbav:"scheduled_time"`
	ContactPhone  string `dynamodbav:"contact_phone,omitempty"`
}

type historyItem struct {
	Action            string            `dynamodbav:"action"`
	Timestamp         string            `dynamodbav:"timestamp"`
	CustomerInitiated bool              `dynamodbav:"customer_initiated"`
	Reason            string            `dynamodbav:"reason,omitempty"`
	Note              string            `dynamodbav:"note,omitempty"`
	Details           map[string]string `dynamodbav:"details,omitempty"`
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		QuoteID:     q.QuoteID,
		AccessToken: q.AccessToken,
		Vehicle:     vehicleItem(q.Vehicle),
		Answers:     make(map[string]answerItem, len(q.Answers)),
		Pricing: pricingItem{
			BasePrice:    q.Pricing.BasePrice,
			CurrentPrice: q.Pricing.CurrentPrice,
			FinalPrice:   q.Pricing.FinalPrice,
		},
		Contact:       contactItem(q.Contact),
		Status:        string(q.Status),
		ActionHistory: make([]historyItem, 0, len(q.CustomerActions.ActionHistory)),
		CreatedAt:     formatTime(q.CreatedAt),
		UpdatedAt:     formatTime(q.UpdatedAt),
		ExpiresAt:     formatTime(q.ExpiresAt),
		Version:       q.Version,
	}
	for k, a := range q.Answers {
		it.Answers[k] = answerItem(a)
	}
	for _, adj := range q.Pricing.Adjustments {
		it.Pricing.Adjustments = append(it.Pricing.Adjustments, adjustmentItem(adj))
	}
	if q.Pickup != nil {
		p := pickupItem(*q.Pickup)
		it.Pickup = &p
	}
	for _, e := range q.CustomerActions.ActionHistory {
		it.ActionHistory = append(it.ActionHistory, historyItem{
			Action:            string(e.Action),
			Timestamp:         formatTime(e.Timestamp),
			CustomerInitiated: e.CustomerInitiated,
			Reason:            e.Reason,
			Note:              e.Note,
			Details:           e.Details,
		})
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	q := entities.Quote{
		QuoteID:     it.QuoteID,
		AccessToken: it.AccessToken,
		Vehicle:     entities.VehicleAttributes(it.Vehicle),
		Answers:     make(map[string]entities.ConditionAnswer, len(it.Answers)),
		Pricing: entities.Pricing{
			BasePrice:    it.Pricing.BasePrice,
			CurrentPrice: it.Pricing.CurrentPrice,
			FinalPrice:   it.Pricing.FinalPrice,
		},
		Contact:   entities.ContactInfo(it.Contact),
		Status:    entities.QuoteStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
		ExpiresAt: parseTime(it.ExpiresAt),
		Version:   it.Version,
		CustomerActions: entities.CustomerActions{
			ActionHistory: make([]entities.ActionHistoryEntry, 0, len(it.ActionHistory)),
		},
	}
	for k, a := range it.Answers {
		q.Answers[k] = entities.ConditionAnswer(a)
	}
	for _, adj := range it.Pricing.Adjustments {
		q.Pricing.Adjustments = append(q.Pricing.Adjustments, entities.PriceAdjustment(adj))
	}
	if it.Pickup != nil {
		p := entities.PickupDetails(*it.Pickup)
		q.Pickup = &p
	}
	for _, h := range it.ActionHistory {
		q.CustomerActions.ActionHistory = append(q.CustomerActions.ActionHistory, entities.ActionHistoryEntry{
			Action:            entities.QuoteAction(h.Action),
			Timestamp:         parseTime(h.Timestamp),
			CustomerInitiated: h.CustomerInitiated,
			Reason:            h.Reason,
			Note:              h.Note,
			Details:           h.Details,
		})
	}
	return q
}
