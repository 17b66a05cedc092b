package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"instant_offer/internal/domain/entities"
	"instant_offer/internal/domain/lifecycle"
	"instant_offer/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const maxNoteLength = 1000

// IQuoteActionUseCase is the only mutator of quote status and history.
// Customer operations are addressed by access token, operator operations by
// quote id.
type IQuoteActionUseCase interface {
	Cancel(ctx context.Context, token string, reason entities.CancelReason, note string) (QuoteView, error)
	ReschedulePickup(ctx context.Context, token, newDate, newTime string, reason entities.RescheduleReason, note string) (QuoteView, error)
	UpdateContactInfo(ctx context.Context, token string, contact entities.ContactInfo) (QuoteView, error)
	AcceptAndSchedule(ctx context.Context, token, pickupDate, pickupWindow, contactPhone string) (QuoteView, error)

	Accept(ctx context.Context, quoteID, note string) (QuoteView, error)
	Complete(ctx context.Context, quoteID, note string) (QuoteView, error)
}

type QuoteActionUseCase struct {
	repo     interfaces.IQuoteRepository
	locker   interfaces.IQuoteLocker
	notifier interfaces.INotifier
	logger   *zap.Logger
	opts     options
}

var _ IQuoteActionUseCase = (*QuoteActionUseCase)(nil)

func NewQuoteActionUseCase(repo interfaces.IQuoteRepository, locker interfaces.IQuoteLocker, notifier interfaces.INotifier, logger *zap.Logger, opts ...Option) *QuoteActionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteActionUseCase{
		repo:     repo,
		locker:   locker,
		notifier: notifier,
		logger:   logger,
		opts:     buildOptions(opts),
	}
}

// change applies one action to a private copy of the quote. It must append
// exactly one history entry and returns the notices to send once committed.
type change func(q *entities.Quote, next entities.QuoteStatus, now time.Time) ([]notice, error)

// target identifies the quote a mutation is aimed at.
type target struct {
	token   string
	quoteID string
}

func (u *QuoteActionUseCase) Cancel(ctx context.Context, token string, reason entities.CancelReason, note string) (QuoteView, error) {
	note = strings.TrimSpace(note)
	if reason != "" && !reason.Valid() {
		return QuoteView{}, ErrInvalidReason
	}
	if len(note) > maxNoteLength {
		return QuoteView{}, ErrNoteTooLong
	}
	return u.mutate(ctx, target{token: token}, lifecycle.ActionCancel, func(q *entities.Quote, next entities.QuoteStatus, now time.Time) ([]notice, error) {
		q.Status = next
		q.AppendHistory(entities.ActionHistoryEntry{
			Action:            entities.QuoteActionCancelled,
			Timestamp:         now,
			CustomerInitiated: true,
			Reason:            string(reason),
			Note:              note,
		})
		extra := map[string]string{"event": "quote_cancelled", "reason": string(reason)}
		return []notice{
			{kind: interfaces.NotificationCancellationConfirmation, extra: extra},
			{kind: interfaces.NotificationAdminAlert, admin: true, extra: extra},
		}, nil
	})
}

func (u *QuoteActionUseCase) ReschedulePickup(ctx context.Context, token, newDate, newTime string, reason entities.RescheduleReason, note string) (QuoteView, error) {
	now := u.opts.clock()
	date, err := parseFutureDate(newDate, now)
	if err != nil {
		return QuoteView{}, err
	}
	window := strings.ToLower(strings.TrimSpace(newTime))
	if err := validatePickupWindow(window); err != nil {
		return QuoteView{}, err
	}
	if reason != "" && !reason.Valid() {
		return QuoteView{}, ErrInvalidReason
	}
	note = strings.TrimSpace(note)
	if len(note) > maxNoteLength {
		return QuoteView{}, ErrNoteTooLong
	}

	return u.mutate(ctx, target{token: token}, lifecycle.ActionReschedule, func(q *entities.Quote, next entities.QuoteStatus, now time.Time) ([]notice, error) {
		prev := entities.PickupDetails{ContactPhone: q.Contact.Phone}
		if q.Pickup != nil {
			prev = *q.Pickup
		}
		if prev.ScheduledDate == date && prev.ScheduledTime == window {
			return nil, lifecycle.GuardResult{Reason: "pickup already scheduled for " + date + " " + window}.Error()
		}
		details := map[string]string{
			"previous_date": prev.ScheduledDate,
			"previous_time": prev.ScheduledTime,
			"new_date":      date,
			"new_time":      window,
		}
		q.Pickup = &entities.PickupDetails{ScheduledDate: date, ScheduledTime: window, ContactPhone: prev.ContactPhone}
		q.Status = next
		q.AppendHistory(entities.ActionHistoryEntry{
			Action:            entities.QuoteActionRescheduled,
			Timestamp:         now,
			CustomerInitiated: true,
			Reason:            string(reason),
			Note:              note,
			Details:           details,
		})
		extra := copyDetails(details)
		extra["event"] = "pickup_rescheduled"
		return []notice{
			{kind: interfaces.NotificationRescheduleConfirmation, extra: extra},
			{kind: interfaces.NotificationAdminAlert, admin: true, extra: extra},
		}, nil
	})
}

func (u *QuoteActionUseCase) UpdateContactInfo(ctx context.Context, token string, contact entities.ContactInfo) (QuoteView, error) {
	contact = normalizeContact(contact)
	if err := validateContact(contact); err != nil {
		return QuoteView{}, err
	}
	return u.mutate(ctx, target{token: token}, lifecycle.ActionUpdateContact, func(q *entities.Quote, next entities.QuoteStatus, now time.Time) ([]notice, error) {
		changed := changedContactFields(q.Contact, contact)
		if len(changed) == 0 {
			return nil, ErrNoChange
		}
		fields := strings.Join(changed, ",")
		q.Contact = contact
		q.Status = next
		q.AppendHistory(entities.ActionHistoryEntry{
			Action:            entities.QuoteActionModified,
			Timestamp:         now,
			CustomerInitiated: true,
			Details:           map[string]string{"changed_fields": fields},
		})
		return []notice{
			{kind: interfaces.NotificationAdminAlert, admin: true, extra: map[string]string{"event": "contact_updated", "changed_fields": fields}},
		}, nil
	})
}

func (u *QuoteActionUseCase) AcceptAndSchedule(ctx context.Context, token, pickupDate, pickupWindow, contactPhone string) (QuoteView, error) {
	now := u.opts.clock()
	date, err := parseFutureDate(pickupDate, now)
	if err != nil {
		return QuoteView{}, err
	}
	window := strings.ToLower(strings.TrimSpace(pickupWindow))
	if err := validatePickupWindow(window); err != nil {
		return QuoteView{}, err
	}
	contactPhone = strings.TrimSpace(contactPhone)
	if contactPhone != "" {
		if err := validatePhone(contactPhone); err != nil {
			return QuoteView{}, err
		}
	}

	return u.mutate(ctx, target{token: token}, lifecycle.ActionAcceptAndSchedule, func(q *entities.Quote, next entities.QuoteStatus, now time.Time) ([]notice, error) {
		phone := contactPhone
		if phone == "" {
			phone = q.Contact.Phone
		}
		pickup := entities.PickupDetails{ScheduledDate: date, ScheduledTime: window, ContactPhone: phone}
		entry := entities.ActionHistoryEntry{
			Action:            entities.QuoteActionAccepted,
			Timestamp:         now,
			CustomerInitiated: true,
			Details:           map[string]string{"new_date": date, "new_time": window},
		}
		if q.Status != entities.QuoteStatusPending {
			if q.Pickup != nil && *q.Pickup == pickup {
				return nil, lifecycle.GuardResult{Reason: "pickup already scheduled for " + date + " " + window}.Error()
			}
			entry.Action = entities.QuoteActionPickupScheduled
			if q.Pickup != nil {
				entry.Details["previous_date"] = q.Pickup.ScheduledDate
				entry.Details["previous_time"] = q.Pickup.ScheduledTime
			}
		}
		q.Pickup = &pickup
		q.Status = next
		q.AppendHistory(entry)
		extra := copyDetails(entry.Details)
		extra["event"] = "pickup_scheduled"
		return []notice{
			{kind: interfaces.NotificationPickupScheduledConfirmation, extra: extra},
			{kind: interfaces.NotificationAdminAlert, admin: true, extra: extra},
		}, nil
	})
}

func (u *QuoteActionUseCase) Accept(ctx context.Context, quoteID, note string) (QuoteView, error) {
	note = strings.TrimSpace(note)
	if len(note) > maxNoteLength {
		return QuoteView{}, ErrNoteTooLong
	}
	return u.mutate(ctx, target{quoteID: quoteID}, lifecycle.ActionAccept, func(q *entities.Quote, next entities.QuoteStatus, now time.Time) ([]notice, error) {
		q.Status = next
		q.AppendHistory(entities.ActionHistoryEntry{
			Action:    entities.QuoteActionAccepted,
			Timestamp: now,
			Note:      note,
		})
		return nil, nil
	})
}

func (u *QuoteActionUseCase) Complete(ctx context.Context, quoteID, note string) (QuoteView, error) {
	note = strings.TrimSpace(note)
	if len(note) > maxNoteLength {
		return QuoteView{}, ErrNoteTooLong
	}
	return u.mutate(ctx, target{quoteID: quoteID}, lifecycle.ActionComplete, func(q *entities.Quote, next entities.QuoteStatus, now time.Time) ([]notice, error) {
		q.Status = next
		q.AppendHistory(entities.ActionHistoryEntry{
			Action:    entities.QuoteActionCompleted,
			Timestamp: now,
			Note:      note,
		})
		return []notice{
			{kind: interfaces.NotificationAdminAlert, admin: true, extra: map[string]string{"event": "pickup_completed"}},
		}, nil
	})
}

// mutate runs read, guard, apply and compare-and-swap under the per-quote
// lock. Notifications go out after the lock is released.
func (u *QuoteActionUseCase) mutate(ctx context.Context, t target, action lifecycle.Action, apply change) (QuoteView, error) {
	saved, notices, err := u.commit(ctx, t, action, apply)
	u.opts.recorder.ObserveAction(string(action), outcomeLabel(err))
	if err != nil {
		return QuoteView{}, err
	}
	dispatch(ctx, u.notifier, u.logger, u.opts.recorder, saved, notices)
	return NewQuoteView(saved, u.opts.clock()), nil
}

func (u *QuoteActionUseCase) commit(ctx context.Context, t target, action lifecycle.Action, apply change) (entities.Quote, []notice, error) {
	current, err := u.resolve(ctx, t)
	if err != nil {
		return entities.Quote{}, nil, err
	}

	unlock, err := u.locker.Lock(ctx, current.QuoteID)
	if err != nil {
		u.logger.Warn("[quote][action] lock not acquired",
			zap.String("quote_id", current.QuoteID),
			zap.String("action", string(action)),
			zap.Error(err))
		return entities.Quote{}, nil, err
	}
	defer unlock()

	// Re-read under the lock; the lookup above may be stale.
	fresh, err := u.repo.GetByID(ctx, current.QuoteID)
	if err != nil {
		return entities.Quote{}, nil, err
	}
	if fresh.QuoteID == "" {
		return entities.Quote{}, nil, ErrQuoteNotFound
	}
	if t.token != "" && !tokenMatches(fresh.AccessToken, strings.TrimSpace(t.token)) {
		return entities.Quote{}, nil, ErrQuoteNotFound
	}

	now := u.opts.clock()
	guard := lifecycle.EvaluateQuote(fresh, now, action)
	if !guard.Allowed {
		u.logger.Info("[quote][action] transition rejected",
			zap.String("quote_id", fresh.QuoteID),
			zap.String("action", string(action)),
			zap.String("status", string(fresh.Status)),
			zap.String("reason", guard.Reason))
		return entities.Quote{}, nil, guard.Error()
	}

	next := fresh.Clone()
	notices, err := apply(&next, guard.Next, now)
	if err != nil {
		return entities.Quote{}, nil, err
	}
	next.UpdatedAt = now

	saved, err := u.repo.Save(ctx, next, fresh.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			u.logger.Warn("[quote][action] concurrent modification", zap.String("quote_id", fresh.QuoteID))
			return entities.Quote{}, nil, ErrConcurrentModification
		}
		u.logger.Error("[quote][action] repository save failed", zap.String("quote_id", fresh.QuoteID), zap.Error(err))
		return entities.Quote{}, nil, err
	}

	u.logger.Info("[quote][action] transition committed",
		zap.String("quote_id", saved.QuoteID),
		zap.String("action", string(action)),
		zap.String("from", string(fresh.Status)),
		zap.String("to", string(saved.Status)))
	return saved, notices, nil
}

func (u *QuoteActionUseCase) resolve(ctx context.Context, t target) (entities.Quote, error) {
	if t.token != "" {
		return findByToken(ctx, u.repo, t.token)
	}
	id := strings.TrimSpace(t.quoteID)
	if id == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.QuoteID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func changedContactFields(old, updated entities.ContactInfo) []string {
	var changed []string
	if old.Name != updated.Name {
		changed = append(changed, "name")
	}
	if old.Email != updated.Email {
		changed = append(changed, "email")
	}
	if old.Phone != updated.Phone {
		changed = append(changed, "phone")
	}
	if old.Address != updated.Address {
		changed = append(changed, "address")
	}
	return changed
}

func copyDetails(d map[string]string) map[string]string {
	out := make(map[string]string, len(d)+1)
	for k, v := range d {
		out[k] = v
	}
	return out
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrQuoteNotFound):
		return "not_found"
	case errors.Is(err, ErrIllegalTransition):
		return "illegal_transition"
	case errors.Is(err, ErrNoChange):
		return "no_change"
	case errors.Is(err, ErrValidation):
		return "invalid"
	case errors.Is(err, ErrConcurrentModification), errors.Is(err, interfaces.ErrLockTimeout):
		return "conflict"
	default:
		return "error"
	}
}
