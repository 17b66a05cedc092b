// Package lifecycle is the quote status state machine. Guards are pure
// functions of (status, expiry, now); nothing here is cached on the quote.
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"instant_offer/internal/domain/entities"
)

var ErrIllegalTransition = errors.New("illegal quote transition")

type Action string

const (
	ActionCancel            Action = "cancel"
	ActionAcceptAndSchedule Action = "accept_and_schedule"
	ActionAccept            Action = "accept"
	ActionReschedule        Action = "reschedule"
	ActionComplete          Action = "complete"
	ActionUpdateContact     Action = "update_contact"
)

// Actions lists every action the machine knows about.
func Actions() []Action {
	return []Action{
		ActionCancel, ActionAcceptAndSchedule, ActionAccept,
		ActionReschedule, ActionComplete, ActionUpdateContact,
	}
}

// Statuses lists every stored status.
func Statuses() []entities.QuoteStatus {
	return []entities.QuoteStatus{
		entities.QuoteStatusPending, entities.QuoteStatusAccepted, entities.QuoteStatusPickupScheduled,
		entities.QuoteStatusRescheduled, entities.QuoteStatusCustomerCancelled,
		entities.QuoteStatusCompleted, entities.QuoteStatusExpired,
	}
}

// OpenStatuses lists the stored statuses a quote can still be acted on from.
// Only these can lapse into expired.
func OpenStatuses() []entities.QuoteStatus {
	return append([]entities.QuoteStatus(nil), open...)
}

type rule struct {
	from         []entities.QuoteStatus
	to           entities.QuoteStatus // empty keeps the current status
	allowExpired bool
}

var (
	open      = []entities.QuoteStatus{entities.QuoteStatusPending, entities.QuoteStatusAccepted, entities.QuoteStatusPickupScheduled, entities.QuoteStatusRescheduled}
	committed = []entities.QuoteStatus{entities.QuoteStatusAccepted, entities.QuoteStatusPickupScheduled, entities.QuoteStatusRescheduled}
	editable  = []entities.QuoteStatus{entities.QuoteStatusPending, entities.QuoteStatusAccepted, entities.QuoteStatusPickupScheduled}
)

var rules = map[Action]rule{
	ActionCancel:            {from: open, to: entities.QuoteStatusCustomerCancelled},
	ActionAcceptAndSchedule: {from: open, to: entities.QuoteStatusPickupScheduled},
	ActionAccept:            {from: []entities.QuoteStatus{entities.QuoteStatusPending}, to: entities.QuoteStatusAccepted},
	ActionReschedule:        {from: committed, to: entities.QuoteStatusRescheduled},
	ActionComplete:          {from: committed, to: entities.QuoteStatusCompleted, allowExpired: true},
	ActionUpdateContact:     {from: editable},
}

// IsTerminal reports statuses with no outgoing transitions.
func IsTerminal(s entities.QuoteStatus) bool {
	switch s {
	case entities.QuoteStatusCompleted, entities.QuoteStatusCustomerCancelled, entities.QuoteStatusExpired:
		return true
	}
	return false
}

// EffectiveStatus is the status used for authorization: a non-terminal quote
// past its expiry is expired even if the stored status was never updated.
func EffectiveStatus(status entities.QuoteStatus, expiresAt, now time.Time) entities.QuoteStatus {
	if IsTerminal(status) {
		return status
	}
	if !expiresAt.IsZero() && now.After(expiresAt) {
		return entities.QuoteStatusExpired
	}
	return status
}

// GuardResult is the outcome of evaluating an action against a quote.
type GuardResult struct {
	Allowed bool
	Next    entities.QuoteStatus
	Reason  string
}

// Error converts a rejected guard into an ErrIllegalTransition.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrIllegalTransition, r.Reason)
}

// Evaluate checks whether action is legal for a quote in status with the
// given expiry at time now, and which status it leads to.
func Evaluate(status entities.QuoteStatus, expiresAt, now time.Time, action Action) GuardResult {
	r, ok := rules[action]
	if !ok {
		return GuardResult{Reason: fmt.Sprintf("unknown action %q", action)}
	}
	if !r.allowExpired {
		if eff := EffectiveStatus(status, expiresAt, now); eff == entities.QuoteStatusExpired {
			return GuardResult{Reason: fmt.Sprintf("quote expired, cannot %s", action)}
		}
	}
	if !contains(r.from, status) {
		return GuardResult{Reason: fmt.Sprintf("cannot %s a quote in status %s", action, status)}
	}
	next := r.to
	if next == "" {
		next = status
	}
	return GuardResult{Allowed: true, Next: next}
}

// EvaluateQuote is Evaluate for a quote record.
func EvaluateQuote(q entities.Quote, now time.Time, action Action) GuardResult {
	return Evaluate(q.Status, q.ExpiresAt, now, action)
}

func CanCancel(q entities.Quote, now time.Time) bool {
	return EvaluateQuote(q, now, ActionCancel).Allowed
}

func CanReschedule(q entities.Quote, now time.Time) bool {
	return EvaluateQuote(q, now, ActionReschedule).Allowed
}

func CanUpdateContact(q entities.Quote, now time.Time) bool {
	return EvaluateQuote(q, now, ActionUpdateContact).Allowed
}

func CanAcceptAndSchedule(q entities.Quote, now time.Time) bool {
	return EvaluateQuote(q, now, ActionAcceptAndSchedule).Allowed
}

func contains(list []entities.QuoteStatus, s entities.QuoteStatus) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
