package entities

import "time"

// QuoteStatus represents the lifecycle of a cash offer.
//
// Domain notes:
//   - The quote service is the source of truth for quote state.
//   - Only the quote action use case moves a quote between statuses.
//   - completed, customer_cancelled and expired are terminal.
type QuoteStatus string

const (
	QuoteStatusPending           QuoteStatus = "pending"
	QuoteStatusAccepted          QuoteStatus = "accepted"
	QuoteStatusPickupScheduled   QuoteStatus = "pickup_scheduled"
	QuoteStatusRescheduled       QuoteStatus = "rescheduled"
	QuoteStatusCustomerCancelled QuoteStatus = "customer_cancelled"
	QuoteStatusCompleted         QuoteStatus = "completed"
	QuoteStatusExpired           QuoteStatus = "expired"
)

// QuoteValidity is the fixed window a quote can be acted upon after creation.
const QuoteValidity = 7 * 24 * time.Hour

// Quote is the persisted cash offer.
//
// Storage model (DynamoDB):
//   - PK: quote_id
//   - GSI1 (access_token-index): access_token
//
// Version is bumped on every save and is used for optimistic concurrency.
type Quote struct {
	QuoteID     string                     `json:"quote_id"`
	AccessToken string                     `json:"-"`
	Vehicle     VehicleAttributes          `json:"vehicle"`
	Answers     map[string]ConditionAnswer `json:"answers"`
	Pricing     Pricing                    `json:"pricing"`
	Contact     ContactInfo                `json:"contact"`
	Pickup      *PickupDetails             `json:"pickup,omitempty"`
	Status      QuoteStatus                `json:"status"`

	CustomerActions CustomerActions `json:"customer_actions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Version   int64     `json:"version"`
}

// ConditionAnswer is the recorded answer for one condition step.
// Areas is only set for steps with an area sub-question.
type ConditionAnswer struct {
	Option string   `json:"option"`
	Areas  []string `json:"areas,omitempty"`
}

// PriceAdjustment is a named, signed delta applied over the base price.
type PriceAdjustment struct {
	Key    string `json:"key"`
	Amount int    `json:"amount"`
}

// Pricing holds the offer amounts in whole currency units.
// FinalPrice is snapshotted at submission and never recomputed.
type Pricing struct {
	BasePrice    int               `json:"base_price"`
	CurrentPrice int               `json:"current_price"`
	FinalPrice   int               `json:"final_price"`
	Adjustments  []PriceAdjustment `json:"adjustments,omitempty"`
}

type ContactInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// PickupDetails is only present once the quote reached an accepted/scheduled state.
// ScheduledDate uses the YYYY-MM-DD layout.
type PickupDetails struct {
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	ContactPhone  string `json:"contact_phone,omitempty"`
}

type CustomerActions struct {
	ActionHistory []ActionHistoryEntry `json:"action_history"`
}

// Clone returns a deep copy so callers can mutate without touching the original.
func (q Quote) Clone() Quote {
	out := q
	if q.Answers != nil {
		out.Answers = make(map[string]ConditionAnswer, len(q.Answers))
		for k, v := range q.Answers {
			v.Areas = append([]string(nil), v.Areas...)
			out.Answers[k] = v
		}
	}
	out.Pricing.Adjustments = append([]PriceAdjustment(nil), q.Pricing.Adjustments...)
	if q.Pickup != nil {
		p := *q.Pickup
		out.Pickup = &p
	}
	out.CustomerActions.ActionHistory = make([]ActionHistoryEntry, len(q.CustomerActions.ActionHistory))
	for i, e := range q.CustomerActions.ActionHistory {
		out.CustomerActions.ActionHistory[i] = e.clone()
	}
	return out
}

// IsExpired reports whether now is past the validity window.
func (q Quote) IsExpired(now time.Time) bool {
	return !q.ExpiresAt.IsZero() && now.After(q.ExpiresAt)
}

// AppendHistory adds one entry to the audit log.
func (q *Quote) AppendHistory(e ActionHistoryEntry) {
	q.CustomerActions.ActionHistory = append(q.CustomerActions.ActionHistory, e)
}
