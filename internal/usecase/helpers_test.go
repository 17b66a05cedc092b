package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"instant_offer/internal/adapter/persistence/repository"
	"instant_offer/internal/domain/entities"
	"instant_offer/internal/infrastructure/locking"
	"instant_offer/internal/usecase/interfaces"
)

var testNow = time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock { return func() time.Time { return t } }

func camry() entities.VehicleAttributes {
	return entities.VehicleAttributes{Year: 2015, Make: "Toyota", Model: "Camry", Trim: "LE"}
}

// scenarioAAnswers is high mileage plus minor exterior damage.
func scenarioAAnswers() map[string]entities.ConditionAnswer {
	return map[string]entities.ConditionAnswer{
		"ownership":         {Option: "owned_outright"},
		"title_status":      {Option: "clean"},
		"drivability":       {Option: "starts_and_drives"},
		"mileage":           {Option: "high_mileage"},
		"exterior_damage":   {Option: "minor"},
		"interior_damage":   {Option: "none"},
		"mechanical_issues": {Option: "none"},
		"flood_fire":        {Option: "none"},
		"airbags":           {Option: "no"},
		"missing_parts":     {Option: "none"},
		"keys":              {Option: "has_keys"},
	}
}

func validContact() entities.ContactInfo {
	return entities.ContactInfo{
		Name:    "Ana Souza",
		Email:   "ana@example.com",
		Phone:   "(555) 010-2000",
		Address: "12 Elm St, Springfield",
	}
}

const testToken = "tok-0123456789abcdef0123456789abcdef"

func storedQuote(status entities.QuoteStatus) entities.Quote {
	q := entities.Quote{
		QuoteID:     "Q-TEST0001",
		AccessToken: testToken,
		Vehicle:     camry(),
		Answers:     scenarioAAnswers(),
		Pricing:     entities.Pricing{BasePrice: 600, CurrentPrice: 425, FinalPrice: 425},
		Contact:     validContact(),
		Status:      status,
		CreatedAt:   testNow.Add(-24 * time.Hour),
		UpdatedAt:   testNow.Add(-24 * time.Hour),
		ExpiresAt:   testNow.Add(6 * 24 * time.Hour),
		Version:     1,
		CustomerActions: entities.CustomerActions{
			ActionHistory: []entities.ActionHistoryEntry{},
		},
	}
	switch status {
	case entities.QuoteStatusAccepted, entities.QuoteStatusPickupScheduled, entities.QuoteStatusRescheduled:
		q.Pickup = &entities.PickupDetails{ScheduledDate: "2026-10-19", ScheduledTime: "morning", ContactPhone: q.Contact.Phone}
	}
	return q
}

type sentNotice struct {
	kind  interfaces.NotificationKind
	admin bool
	extra map[string]string
}

// recordingNotifier captures notices. fail makes every call return an error.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotice
	fail bool
}

func (n *recordingNotifier) NotifyCustomer(_ context.Context, kind interfaces.NotificationKind, _ entities.Quote, extra map[string]string) error {
	return n.record(kind, false, extra)
}

func (n *recordingNotifier) NotifyAdmin(_ context.Context, kind interfaces.NotificationKind, _ entities.Quote, extra map[string]string) error {
	return n.record(kind, true, extra)
}

func (n *recordingNotifier) record(kind interfaces.NotificationKind, admin bool, extra map[string]string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotice{kind: kind, admin: admin, extra: extra})
	if n.fail {
		return errors.New("queue full")
	}
	return nil
}

func (n *recordingNotifier) kinds() []interfaces.NotificationKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]interfaces.NotificationKind, 0, len(n.sent))
	for _, s := range n.sent {
		out = append(out, s.kind)
	}
	return out
}

type countingRecorder struct {
	mu       sync.Mutex
	actions  map[string]int
	failures int
}

func (r *countingRecorder) ObserveAction(action, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.actions == nil {
		r.actions = map[string]int{}
	}
	r.actions[action+"/"+outcome]++
}

func (r *countingRecorder) ObserveNotificationFailure(interfaces.NotificationKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

// actionFixture wires the action use case to the in-memory repository and
// locker with one stored quote.
type actionFixture struct {
	repo     *repository.QuoteMemoryRepository
	notifier *recordingNotifier
	recorder *countingRecorder
	uc       *QuoteActionUseCase
}

func newActionFixture(t *testing.T, q entities.Quote, now time.Time) *actionFixture {
	t.Helper()
	repo := repository.NewQuoteMemoryRepository()
	if _, err := repo.Create(context.Background(), q); err != nil {
		t.Fatalf("seed quote: %v", err)
	}
	f := &actionFixture{repo: repo, notifier: &recordingNotifier{}, recorder: &countingRecorder{}}
	f.uc = NewQuoteActionUseCase(repo, locking.NewMemoryLocker(), f.notifier, nil,
		WithClock(fixedClock(now)), WithRecorder(f.recorder))
	return f
}

func (f *actionFixture) stored(t *testing.T, id string) entities.Quote {
	t.Helper()
	q, err := f.repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get quote: %v", err)
	}
	return q
}
