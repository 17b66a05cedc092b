package entities

import "time"

// QuoteAction tags an entry in the quote audit log.
type QuoteAction string

const (
	QuoteActionCancelled       QuoteAction = "cancelled"
	QuoteActionRescheduled     QuoteAction = "rescheduled"
	QuoteActionModified        QuoteAction = "modified"
	QuoteActionAccepted        QuoteAction = "accepted"
	QuoteActionPickupScheduled QuoteAction = "pickup_scheduled"
	QuoteActionCompleted       QuoteAction = "completed"
)

// CancelReason is the closed set of reasons a customer can give for cancelling.
type CancelReason string

const (
	CancelReasonFoundBetterOffer CancelReason = "found_better_offer"
	CancelReasonSoldElsewhere    CancelReason = "sold_elsewhere"
	CancelReasonChangedMind      CancelReason = "changed_mind"
	CancelReasonPriceTooLow      CancelReason = "price_too_low"
	CancelReasonScheduleConflict CancelReason = "schedule_conflict"
	CancelReasonOther            CancelReason = "other"
)

func (r CancelReason) Valid() bool {
	switch r {
	case CancelReasonFoundBetterOffer, CancelReasonSoldElsewhere, CancelReasonChangedMind,
		CancelReasonPriceTooLow, CancelReasonScheduleConflict, CancelReasonOther:
		return true
	}
	return false
}

// RescheduleReason is the closed set of reasons for moving a pickup.
type RescheduleReason string

const (
	RescheduleReasonScheduleConflict RescheduleReason = "schedule_conflict"
	RescheduleReasonNotAvailable     RescheduleReason = "not_available"
	RescheduleReasonNeedMoreTime     RescheduleReason = "need_more_time"
	RescheduleReasonOther            RescheduleReason = "other"
)

func (r RescheduleReason) Valid() bool {
	switch r {
	case RescheduleReasonScheduleConflict, RescheduleReasonNotAvailable,
		RescheduleReasonNeedMoreTime, RescheduleReasonOther:
		return true
	}
	return false
}

// ActionHistoryEntry is one append-only audit record. Entries are never edited.
type ActionHistoryEntry struct {
	Action            QuoteAction       `json:"action"`
	Timestamp         time.Time         `json:"timestamp"`
	CustomerInitiated bool              `json:"customer_initiated"`
	Reason            string            `json:"reason,omitempty"`
	Note              string            `json:"note,omitempty"`
	Details           map[string]string `json:"details,omitempty"`
}

func (e ActionHistoryEntry) clone() ActionHistoryEntry {
	if e.Details == nil {
		return e
	}
	d := make(map[string]string, len(e.Details))
	for k, v := range e.Details {
		d[k] = v
	}
	e.Details = d
	return e
}
