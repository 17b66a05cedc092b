package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"instant_offer/internal/domain/entities"
	"instant_offer/internal/domain/lifecycle"
	"instant_offer/internal/usecase/interfaces"
	mock_interfaces "instant_offer/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteActionUseCase_Cancel(t *testing.T) {
	t.Run("cancels a pending quote once", func(t *testing.T) {
		f := newActionFixture(t, storedQuote(entities.QuoteStatusPending), testNow)

		v, err := f.uc.Cancel(context.Background(), testToken, entities.CancelReasonFoundBetterOffer, "  got more elsewhere ")
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if v.Quote.Status != entities.QuoteStatusCustomerCancelled || v.EffectiveStatus != entities.QuoteStatusCustomerCancelled {
			t.Fatalf("unexpected status %s", v.Quote.Status)
		}
		if v.CanCancel || v.CanReschedule || v.CanUpdateContact || v.CanAcceptSchedule {
			t.Fatalf("cancelled quote must not allow further actions: %+v", v)
		}

		q := f.stored(t, "Q-TEST0001")
		h := q.CustomerActions.ActionHistory
		if len(h) != 1 {
			t.Fatalf("expected 1 history entry, got %d", len(h))
		}
		if h[0].Action != entities.QuoteActionCancelled || !h[0].CustomerInitiated ||
			h[0].Reason != "found_better_offer" || h[0].Note != "got more elsewhere" || !h[0].Timestamp.Equal(testNow) {
			t.Fatalf("unexpected entry %+v", h[0])
		}
		if q.Version != 2 || !q.UpdatedAt.Equal(testNow) {
			t.Fatalf("expected version 2 updated now, got %d %v", q.Version, q.UpdatedAt)
		}
		kinds := f.notifier.kinds()
		if len(kinds) != 2 || kinds[0] != interfaces.NotificationCancellationConfirmation || kinds[1] != interfaces.NotificationAdminAlert {
			t.Fatalf("unexpected notifications %v", kinds)
		}

		_, err = f.uc.Cancel(context.Background(), testToken, entities.CancelReasonFoundBetterOffer, "")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition on second cancel, got %v", err)
		}
		if got := len(f.stored(t, "Q-TEST0001").CustomerActions.ActionHistory); got != 1 {
			t.Fatalf("second cancel must not append history, got %d entries", got)
		}
		if len(f.notifier.kinds()) != 2 {
			t.Fatalf("rejected cancel must not notify")
		}
		if f.recorder.actions["cancel/success"] != 1 || f.recorder.actions["cancel/illegal_transition"] != 1 {
			t.Fatalf("unexpected recorded actions %v", f.recorder.actions)
		}
	})

	t.Run("concurrent cancels record a single entry", func(t *testing.T) {
		f := newActionFixture(t, storedQuote(entities.QuoteStatusPickupScheduled), testNow)

		const n = 8
		var wg sync.WaitGroup
		errs := make([]error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = f.uc.Cancel(context.Background(), testToken, entities.CancelReasonChangedMind, "")
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrIllegalTransition):
			default:
				t.Fatalf("unexpected error %v", err)
			}
		}
		if succeeded != 1 {
			t.Fatalf("expected exactly one successful cancel, got %d", succeeded)
		}
		if got := len(f.stored(t, "Q-TEST0001").CustomerActions.ActionHistory); got != 1 {
			t.Fatalf("expected 1 history entry, got %d", got)
		}
	})

	t.Run("unknown token and bad reason", func(t *testing.T) {
		f := newActionFixture(t, storedQuote(entities.QuoteStatusPending), testNow)

		if _, err := f.uc.Cancel(context.Background(), "not-a-token", "", ""); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
		if _, err := f.uc.Cancel(context.Background(), testToken, "bored", ""); !errors.Is(err, ErrInvalidReason) {
			t.Fatalf("expected ErrInvalidReason, got %v", err)
		}
		long := make([]byte, maxNoteLength+1)
		for i := range long {
			long[i] = 'a'
		}
		if _, err := f.uc.Cancel(context.Background(), testToken, "", string(long)); !errors.Is(err, ErrNoteTooLong) {
			t.Fatalf("expected ErrNoteTooLong, got %v", err)
		}
		if f.stored(t, "Q-TEST0001").Status != entities.QuoteStatusPending {
			t.Fatalf("quote must be untouched")
		}
	})
}

func TestQuoteActionUseCase_ReschedulePickup(t *testing.T) {
	t.Run("moves a scheduled pickup and records both dates", func(t *testing.T) {
		f := newActionFixture(t, storedQuote(entities.QuoteStatusPickupScheduled), testNow)

		v, err := f.uc.ReschedulePickup(context.Background(), testToken, "2026-10-22", " Afternoon ", entities.RescheduleReasonScheduleConflict, "")
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if v.Quote.Status != entities.QuoteStatusRescheduled {
			t.Fatalf("unexpected status %s", v.Quote.Status)
		}
		if v.Quote.Pickup == nil || v.Quote.Pickup.ScheduledDate != "2026-10-22" || v.Quote.Pickup.ScheduledTime != "afternoon" {
			t.Fatalf("unexpected pickup %+v", v.Quote.Pickup)
		}
		if v.Quote.Pickup.ContactPhone != validContact().Phone {
			t.Fatalf("contact phone must be carried over")
		}

		h := f.stored(t, "Q-TEST0001").CustomerActions.ActionHistory
		if len(h) != 1 || h[0].Action != entities.QuoteActionRescheduled || h[0].Reason != "schedule_conflict" {
			t.Fatalf("unexpected history %+v", h)
		}
		want := map[string]string{"previous_date": "2026-10-19", "previous_time": "morning", "new_date": "2026-10-22", "new_time": "afternoon"}
		for k, val := range want {
			if h[0].Details[k] != val {
				t.Fatalf("detail %s = %q, want %q", k, h[0].Details[k], val)
			}
		}
		kinds := f.notifier.kinds()
		if len(kinds) != 2 || kinds[0] != interfaces.NotificationRescheduleConfirmation {
			t.Fatalf("unexpected notifications %v", kinds)
		}
	})

	t.Run("rescheduled quote can be rescheduled again", func(t *testing.T) {
		f := newActionFixture(t, storedQuote(entities.QuoteStatusRescheduled), testNow)

		if _, err := f.uc.ReschedulePickup(context.Background(), testToken, "2026-10-20", "evening", "", ""); err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if _, err := f.uc.ReschedulePickup(context.Background(), testToken, "2026-10-20", "evening", "", ""); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("same slot must be rejected, got %v", err)
		}
		if got := len(f.stored(t, "Q-TEST0001").CustomerActions.ActionHistory); got != 1 {
			t.Fatalf("expected 1 history entry, got %d", got)
		}
	})

	t.Run("expiry dominates stored status", func(t *testing.T) {
		q := storedQuote(entities.QuoteStatusAccepted)
		f := newActionFixture(t, q, q.ExpiresAt.Add(time.Minute))

		_, err := f.uc.ReschedulePickup(context.Background(), testToken, "2026-11-02", "morning", "", "")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
		stored := f.stored(t, "Q-TEST0001")
		if stored.Status != entities.QuoteStatusAccepted || stored.Version != 1 || len(stored.CustomerActions.ActionHistory) != 0 {
			t.Fatalf("expired quote must be unchanged: %+v", stored)
		}
		if stored.Pickup.ScheduledDate != "2026-10-19" {
			t.Fatalf("pickup must be unchanged")
		}
	})

	t.Run("rejects bad dates and windows before touching the quote", func(t *testing.T) {
		f := newActionFixture(t, storedQuote(entities.QuoteStatusPickupScheduled), testNow)

		for _, d := range []string{"2026-10-17", "2026-10-01", "10/20/2026", ""} {
			if _, err := f.uc.ReschedulePickup(context.Background(), testToken, d, "morning", "", ""); !errors.Is(err, ErrInvalidPickupDate) {
				t.Fatalf("date %q: expected ErrInvalidPickupDate, got %v", d, err)
			}
		}
		if _, err := f.uc.ReschedulePickup(context.Background(), testToken, "2026-10-20", "night", "", ""); !errors.Is(err, ErrInvalidPickupWindow) {
			t.Fatalf("expected ErrInvalidPickupWindow, got %v", err)
		}
		if _, err := f.uc.ReschedulePickup(context.Background(), testToken, "2026-10-20", "morning", "whatever", ""); !errors.Is(err, ErrInvalidReason) {
			t.Fatalf("expected ErrInvalidReason, got %v", err)
		}
		if f.stored(t, "Q-TEST0001").Version != 1 {
			t.Fatalf("quote must be untouched")
		}
	})
}

func TestQuoteActionUseCase_UpdateContactInfo(t *testing.T) {
	f := newActionFixture(t, storedQuote(entities.QuoteStatusAccepted), testNow)

	c := validContact()
	c.Email = "ANA.SOUZA@example.com"
	c.Phone = "555-010-3000"
	v, err := f.uc.UpdateContactInfo(context.Background(), testToken, c)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if v.Quote.Status != entities.QuoteStatusAccepted || v.Quote.Contact.Email != "ana.souza@example.com" {
		t.Fatalf("unexpected quote %+v", v.Quote)
	}
	h := f.stored(t, "Q-TEST0001").CustomerActions.ActionHistory
	if len(h) != 1 || h[0].Action != entities.QuoteActionModified || h[0].Details["changed_fields"] != "email,phone" {
		t.Fatalf("unexpected history %+v", h)
	}
	kinds := f.notifier.kinds()
	if len(kinds) != 1 || kinds[0] != interfaces.NotificationAdminAlert {
		t.Fatalf("unexpected notifications %v", kinds)
	}

	if _, err := f.uc.UpdateContactInfo(context.Background(), testToken, c); !errors.Is(err, ErrNoChange) {
		t.Fatalf("expected ErrNoChange, got %v", err)
	}
	c.Email = "broken"
	if _, err := f.uc.UpdateContactInfo(context.Background(), testToken, c); !errors.Is(err, ErrInvalidContactInfo) {
		t.Fatalf("expected ErrInvalidContactInfo, got %v", err)
	}
	if got := len(f.stored(t, "Q-TEST0001").CustomerActions.ActionHistory); got != 1 {
		t.Fatalf("expected 1 history entry, got %d", got)
	}
}

func TestQuoteActionUseCase_AcceptAndSchedule(t *testing.T) {
	t.Run("from pending", func(t *testing.T) {
		f := newActionFixture(t, storedQuote(entities.QuoteStatusPending), testNow)

		v, err := f.uc.AcceptAndSchedule(context.Background(), testToken, "2026-10-18", "morning", "")
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if v.Quote.Status != entities.QuoteStatusPickupScheduled || v.Quote.Pickup.ContactPhone != validContact().Phone {
			t.Fatalf("unexpected quote %+v", v.Quote)
		}
		if v.Quote.Pricing.FinalPrice != 425 {
			t.Fatalf("final price must not change")
		}
		h := f.stored(t, "Q-TEST0001").CustomerActions.ActionHistory
		if len(h) != 1 || h[0].Action != entities.QuoteActionAccepted || !h[0].CustomerInitiated {
			t.Fatalf("unexpected history %+v", h)
		}

		_, err = f.uc.AcceptAndSchedule(context.Background(), testToken, "2026-10-18", "morning", "")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("duplicate scheduling must be rejected, got %v", err)
		}
		if got := len(f.stored(t, "Q-TEST0001").CustomerActions.ActionHistory); got != 1 {
			t.Fatalf("expected 1 history entry, got %d", got)
		}
	})

	t.Run("from accepted records previous slot", func(t *testing.T) {
		f := newActionFixture(t, storedQuote(entities.QuoteStatusAccepted), testNow)

		v, err := f.uc.AcceptAndSchedule(context.Background(), testToken, "2026-10-21", "evening", "555 010 9999")
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if v.Quote.Pickup.ContactPhone != "555 010 9999" {
			t.Fatalf("unexpected pickup %+v", v.Quote.Pickup)
		}
		h := f.stored(t, "Q-TEST0001").CustomerActions.ActionHistory
		if len(h) != 1 || h[0].Action != entities.QuoteActionPickupScheduled || h[0].Details["previous_date"] != "2026-10-19" {
			t.Fatalf("unexpected history %+v", h)
		}
	})

	t.Run("invalid phone", func(t *testing.T) {
		f := newActionFixture(t, storedQuote(entities.QuoteStatusPending), testNow)
		if _, err := f.uc.AcceptAndSchedule(context.Background(), testToken, "2026-10-21", "evening", "call me"); !errors.Is(err, ErrInvalidContactInfo) {
			t.Fatalf("expected ErrInvalidContactInfo, got %v", err)
		}
	})
}

func TestQuoteActionUseCase_OperatorActions(t *testing.T) {
	t.Run("accept then complete", func(t *testing.T) {
		f := newActionFixture(t, storedQuote(entities.QuoteStatusPending), testNow)

		v, err := f.uc.Accept(context.Background(), "Q-TEST0001", "called seller")
		if err != nil || v.Quote.Status != entities.QuoteStatusAccepted {
			t.Fatalf("accept: %+v / %v", v.Quote.Status, err)
		}
		if _, err := f.uc.Accept(context.Background(), "Q-TEST0001", ""); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
		v, err = f.uc.Complete(context.Background(), "Q-TEST0001", "")
		if err != nil || v.Quote.Status != entities.QuoteStatusCompleted {
			t.Fatalf("complete: %+v / %v", v.Quote.Status, err)
		}
		h := f.stored(t, "Q-TEST0001").CustomerActions.ActionHistory
		if len(h) != 2 || h[0].CustomerInitiated || h[1].Action != entities.QuoteActionCompleted {
			t.Fatalf("unexpected history %+v", h)
		}
	})

	t.Run("complete is allowed after expiry", func(t *testing.T) {
		q := storedQuote(entities.QuoteStatusPickupScheduled)
		f := newActionFixture(t, q, q.ExpiresAt.Add(48*time.Hour))

		if _, err := f.uc.Complete(context.Background(), "Q-TEST0001", ""); err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newActionFixture(t, storedQuote(entities.QuoteStatusPending), testNow)
		if _, err := f.uc.Accept(context.Background(), "Q-NOPE", ""); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

// Every (status, action) pair either succeeds or leaves the quote untouched.
func TestQuoteActionUseCase_TransitionTable(t *testing.T) {
	legal := map[entities.QuoteStatus]map[lifecycle.Action]bool{
		entities.QuoteStatusPending: {
			lifecycle.ActionCancel: true, lifecycle.ActionAcceptAndSchedule: true,
			lifecycle.ActionAccept: true, lifecycle.ActionUpdateContact: true,
		},
		entities.QuoteStatusAccepted: {
			lifecycle.ActionCancel: true, lifecycle.ActionAcceptAndSchedule: true, lifecycle.ActionReschedule: true,
			lifecycle.ActionComplete: true, lifecycle.ActionUpdateContact: true,
		},
		entities.QuoteStatusPickupScheduled: {
			lifecycle.ActionCancel: true, lifecycle.ActionAcceptAndSchedule: true, lifecycle.ActionReschedule: true,
			lifecycle.ActionComplete: true, lifecycle.ActionUpdateContact: true,
		},
		entities.QuoteStatusRescheduled: {
			lifecycle.ActionCancel: true, lifecycle.ActionAcceptAndSchedule: true,
			lifecycle.ActionReschedule: true, lifecycle.ActionComplete: true,
		},
		entities.QuoteStatusCustomerCancelled: {},
		entities.QuoteStatusCompleted:         {},
		entities.QuoteStatusExpired:           {},
	}

	for _, status := range lifecycle.Statuses() {
		for _, action := range lifecycle.Actions() {
			t.Run(fmt.Sprintf("%s/%s", status, action), func(t *testing.T) {
				f := newActionFixture(t, storedQuote(status), testNow)
				err := runAction(f.uc, action)

				if legal[status][action] {
					if err != nil {
						t.Fatalf("expected success, got %v", err)
					}
					return
				}
				if !errors.Is(err, ErrIllegalTransition) {
					t.Fatalf("expected ErrIllegalTransition, got %v", err)
				}
				q := f.stored(t, "Q-TEST0001")
				if q.Status != status || q.Version != 1 || len(q.CustomerActions.ActionHistory) != 0 {
					t.Fatalf("quote changed by rejected action: %+v", q)
				}
				if len(f.notifier.kinds()) != 0 {
					t.Fatalf("rejected action must not notify")
				}
			})
		}
	}
}

func runAction(uc *QuoteActionUseCase, action lifecycle.Action) error {
	ctx := context.Background()
	var err error
	switch action {
	case lifecycle.ActionCancel:
		_, err = uc.Cancel(ctx, testToken, "", "")
	case lifecycle.ActionReschedule:
		_, err = uc.ReschedulePickup(ctx, testToken, "2026-10-21", "evening", "", "")
	case lifecycle.ActionUpdateContact:
		c := validContact()
		c.Name = "Ana S. Souza"
		_, err = uc.UpdateContactInfo(ctx, testToken, c)
	case lifecycle.ActionAcceptAndSchedule:
		_, err = uc.AcceptAndSchedule(ctx, testToken, "2026-10-21", "evening", "")
	case lifecycle.ActionAccept:
		_, err = uc.Accept(ctx, "Q-TEST0001", "")
	case lifecycle.ActionComplete:
		_, err = uc.Complete(ctx, "Q-TEST0001", "")
	default:
		err = fmt.Errorf("unhandled action %s", action)
	}
	return err
}

func TestQuoteActionUseCase_Failures(t *testing.T) {
	t.Run("notification failure does not roll back", func(t *testing.T) {
		f := newActionFixture(t, storedQuote(entities.QuoteStatusPending), testNow)
		f.notifier.fail = true

		if _, err := f.uc.Cancel(context.Background(), testToken, "", ""); err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if f.stored(t, "Q-TEST0001").Status != entities.QuoteStatusCustomerCancelled {
			t.Fatalf("cancel must be committed")
		}
		if f.recorder.failures != 2 {
			t.Fatalf("expected 2 notification failures, got %d", f.recorder.failures)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		locker := mock_interfaces.NewMockIQuoteLocker(ctrl)
		uc := NewQuoteActionUseCase(repo, locker, nil, nil, WithClock(fixedClock(testNow)))

		q := storedQuote(entities.QuoteStatusPending)
		unlocked := false
		repo.EXPECT().GetByAccessToken(gomock.Any(), testToken).Return(q, nil)
		locker.EXPECT().Lock(gomock.Any(), "Q-TEST0001").Return(func() { unlocked = true }, nil)
		repo.EXPECT().GetByID(gomock.Any(), "Q-TEST0001").Return(q, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{}), int64(1)).
			Return(entities.Quote{}, interfaces.ErrVersionConflict)

		_, err := uc.Cancel(context.Background(), testToken, "", "")
		if !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
		if !unlocked {
			t.Fatalf("lock must be released")
		}
	})

	t.Run("lock timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		locker := mock_interfaces.NewMockIQuoteLocker(ctrl)
		rec := &countingRecorder{}
		uc := NewQuoteActionUseCase(repo, locker, nil, nil, WithClock(fixedClock(testNow)), WithRecorder(rec))

		repo.EXPECT().GetByID(gomock.Any(), "Q-TEST0001").Return(storedQuote(entities.QuoteStatusPending), nil)
		locker.EXPECT().Lock(gomock.Any(), "Q-TEST0001").Return(nil, interfaces.ErrLockTimeout)

		if _, err := uc.Accept(context.Background(), "Q-TEST0001", ""); !errors.Is(err, interfaces.ErrLockTimeout) {
			t.Fatalf("expected ErrLockTimeout, got %v", err)
		}
		if rec.actions["accept/conflict"] != 1 {
			t.Fatalf("unexpected recorded actions %v", rec.actions)
		}
	})
}
