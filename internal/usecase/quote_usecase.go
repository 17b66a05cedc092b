package usecase

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"instant_offer/internal/domain/condition"
	"instant_offer/internal/domain/entities"
	"instant_offer/internal/domain/lifecycle"
	"instant_offer/internal/domain/pricing"
	"instant_offer/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	accessTokenBytes  = 32
	maxCreateAttempts = 3
	defaultListLimit  = 100
	maxListLimit      = 500
)

// SubmitQuoteInput is what intake hands over once the condition flow is done.
// The price is always recomputed from Answers.
type SubmitQuoteInput struct {
	Vehicle entities.VehicleAttributes
	Answers map[string]entities.ConditionAnswer
	Contact entities.ContactInfo
}

// QuoteView is a quote together with the permissions derived from its
// status and expiry at read time.
type QuoteView struct {
	Quote             entities.Quote
	EffectiveStatus   entities.QuoteStatus
	CanCancel         bool
	CanReschedule     bool
	CanUpdateContact  bool
	CanAcceptSchedule bool
}

// IQuoteUseCase exposes quote submission and read operations.
type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, in SubmitQuoteInput) (entities.Quote, error)
	GetByAccessToken(ctx context.Context, token string) (QuoteView, error)
	GetByID(ctx context.Context, quoteID string) (QuoteView, error)
	List(ctx context.Context, filter interfaces.QuoteFilter) ([]QuoteView, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	notifier interfaces.INotifier
	rules    *pricing.RuleTable
	logger   *zap.Logger
	opts     options
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, notifier interfaces.INotifier, logger *zap.Logger, opts ...Option) *QuoteUseCase {
	o := buildOptions(opts)
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteUseCase{
		repo:     repo,
		notifier: notifier,
		rules:    pricing.NewRuleTable(o.clock),
		logger:   logger,
		opts:     o,
	}
}

func (u *QuoteUseCase) SubmitQuote(ctx context.Context, in SubmitQuoteInput) (entities.Quote, error) {
	now := u.opts.clock()
	vehicle := in.Vehicle.Normalize()
	if err := validateVehicle(vehicle, now); err != nil {
		return entities.Quote{}, err
	}
	contact := normalizeContact(in.Contact)
	if err := validateContact(contact); err != nil {
		return entities.Quote{}, err
	}

	session, res, err := condition.Replay(condition.DefaultSteps(), u.rules.NewState(vehicle), in.Answers)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("%w: %v", ErrInvalidAnswers, err)
	}
	switch res.Status {
	case condition.StatusDisqualified:
		u.logger.Info("[quote][submit] vehicle disqualified",
			zap.String("step", string(res.Disqualification.StepID)),
			zap.String("option", string(res.Disqualification.Option)))
		u.opts.recorder.ObserveAction("submit", "disqualified")
		return entities.Quote{}, &DisqualifiedError{Disqualification: *res.Disqualification}
	case condition.StatusComplete:
	default:
		return entities.Quote{}, fmt.Errorf("%w: next step %s", ErrConditionIncomplete, res.NextStep)
	}

	token, err := newAccessToken()
	if err != nil {
		return entities.Quote{}, err
	}

	q := entities.Quote{
		AccessToken: token,
		Vehicle:     vehicle,
		Answers:     session.Answers(),
		Pricing:     session.Pricing().Snapshot(),
		Contact:     contact,
		Status:      entities.QuoteStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiresAt:   now.Add(u.opts.validity),
		Version:     1,
		CustomerActions: entities.CustomerActions{
			ActionHistory: []entities.ActionHistoryEntry{},
		},
	}

	var created entities.Quote
	for attempt := 1; ; attempt++ {
		q.QuoteID = newQuoteID()
		created, err = u.repo.Create(ctx, q)
		if err == nil {
			break
		}
		if errors.Is(err, interfaces.ErrDuplicateQuoteID) && attempt < maxCreateAttempts {
			u.logger.Warn("[quote][submit] quote id collision, retrying", zap.String("quote_id", q.QuoteID))
			continue
		}
		u.logger.Error("[quote][submit] repository create failed", zap.Error(err))
		u.opts.recorder.ObserveAction("submit", "error")
		return entities.Quote{}, err
	}

	u.logger.Info("[quote][submit] quote created",
		zap.String("quote_id", created.QuoteID),
		zap.Int("final_price", created.Pricing.FinalPrice))
	u.opts.recorder.ObserveAction("submit", "success")

	dispatch(ctx, u.notifier, u.logger, u.opts.recorder, created, []notice{
		{kind: interfaces.NotificationQuoteConfirmation},
		{kind: interfaces.NotificationAdminAlert, admin: true, extra: map[string]string{"event": "quote_submitted"}},
	})
	return created, nil
}

func (u *QuoteUseCase) GetByAccessToken(ctx context.Context, token string) (QuoteView, error) {
	q, err := findByToken(ctx, u.repo, token)
	if err != nil {
		return QuoteView{}, err
	}
	return NewQuoteView(q, u.opts.clock()), nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, quoteID string) (QuoteView, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return QuoteView{}, ErrQuoteNotFound
	}
	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return QuoteView{}, err
	}
	if q.QuoteID == "" {
		return QuoteView{}, ErrQuoteNotFound
	}
	return NewQuoteView(q, u.opts.clock()), nil
}

func (u *QuoteUseCase) List(ctx context.Context, filter interfaces.QuoteFilter) ([]QuoteView, error) {
	if filter.Status != "" && !knownStatus(filter.Status) {
		return nil, ErrInvalidQuoteFilter
	}
	if filter.Limit < 0 || filter.Limit > maxListLimit {
		return nil, ErrInvalidQuoteFilter
	}
	if filter.Limit == 0 {
		filter.Limit = defaultListLimit
	}
	// Expiry is never written back, so the effective status becomes an
	// expiry bound evaluated by the repository.
	now := u.opts.clock()
	switch {
	case filter.Status == entities.QuoteStatusExpired:
		filter.Status = ""
		filter.ExpiredAt = now
	case filter.Status != "" && !lifecycle.IsTerminal(filter.Status):
		filter.ActiveAt = now
	}
	quotes, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	views := make([]QuoteView, 0, len(quotes))
	for _, q := range quotes {
		views = append(views, NewQuoteView(q, now))
	}
	return views, nil
}

// NewQuoteView derives the permissions for q at now.
func NewQuoteView(q entities.Quote, now time.Time) QuoteView {
	return QuoteView{
		Quote:             q,
		EffectiveStatus:   lifecycle.EffectiveStatus(q.Status, q.ExpiresAt, now),
		CanCancel:         lifecycle.CanCancel(q, now),
		CanReschedule:     lifecycle.CanReschedule(q, now),
		CanUpdateContact:  lifecycle.CanUpdateContact(q, now),
		CanAcceptSchedule: lifecycle.CanAcceptAndSchedule(q, now),
	}
}

func knownStatus(s entities.QuoteStatus) bool {
	for _, st := range lifecycle.Statuses() {
		if st == s {
			return true
		}
	}
	return false
}

// findByToken resolves a token to a quote. Every failure mode is reported as
// ErrQuoteNotFound so callers cannot tell a wrong token from a missing quote.
func findByToken(ctx context.Context, repo interfaces.IQuoteRepository, token string) (entities.Quote, error) {
	token = strings.TrimSpace(token)
	if token == "" || len(token) > 128 {
		return entities.Quote{}, ErrQuoteNotFound
	}
	q, err := repo.GetByAccessToken(ctx, token)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.QuoteID == "" || !tokenMatches(q.AccessToken, token) {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func tokenMatches(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

func newAccessToken() (string, error) {
	b := make([]byte, accessTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// newQuoteID builds a short id customers can read over the phone.
func newQuoteID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "Q-" + strings.ToUpper(raw[:8])
}
