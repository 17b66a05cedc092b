package usecase

import (
	"time"

	"instant_offer/internal/domain/entities"
	"instant_offer/internal/usecase/interfaces"
)

// Clock returns the current time in the business time zone. Calendar-date
// checks (pickup must be after "today") use the location of its result.
type Clock func() time.Time

type options struct {
	clock    Clock
	recorder interfaces.IActionRecorder
	validity time.Duration
}

type Option func(*options)

func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

func WithRecorder(r interfaces.IActionRecorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithValidity overrides the quote validity window used at submission.
func WithValidity(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.validity = d
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		clock:    func() time.Time { return time.Now().UTC() },
		recorder: noopRecorder{},
		validity: entities.QuoteValidity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type noopRecorder struct{}

func (noopRecorder) ObserveAction(string, string)                           {}
func (noopRecorder) ObserveNotificationFailure(interfaces.NotificationKind) {}
