package usecase

import (
	"context"
	"strconv"

	"instant_offer/internal/domain/entities"
	"instant_offer/internal/usecase/interfaces"

	"github.com/Rhymond/go-money"
	"go.uber.org/zap"
)

const offerCurrency = money.USD

type notice struct {
	kind  interfaces.NotificationKind
	admin bool
	extra map[string]string
}

// dispatch hands the notices to the notifier. Failures are logged and counted,
// never returned: the state change they describe is already committed.
func dispatch(ctx context.Context, n interfaces.INotifier, logger *zap.Logger, rec interfaces.IActionRecorder, q entities.Quote, notices []notice) {
	if n == nil {
		return
	}
	for _, nt := range notices {
		extra := withOfferExtras(q, nt.extra)
		var err error
		if nt.admin {
			err = n.NotifyAdmin(ctx, nt.kind, q, extra)
		} else {
			err = n.NotifyCustomer(ctx, nt.kind, q, extra)
		}
		if err != nil {
			logger.Warn("[quote][notify] notification not accepted",
				zap.String("quote_id", q.QuoteID),
				zap.String("kind", string(nt.kind)),
				zap.Bool("admin", nt.admin),
				zap.Error(err))
			rec.ObserveNotificationFailure(nt.kind)
		}
	}
}

func withOfferExtras(q entities.Quote, extra map[string]string) map[string]string {
	out := make(map[string]string, len(extra)+3)
	for k, v := range extra {
		out[k] = v
	}
	out["offer_amount"] = strconv.Itoa(q.Pricing.FinalPrice)
	out["offer_display"] = FormatOffer(q.Pricing.FinalPrice)
	out["expires_at"] = q.ExpiresAt.Format("January 2, 2006")
	return out
}

// FormatOffer renders a whole-unit amount for customer-facing text.
func FormatOffer(amount int) string {
	return money.New(int64(amount)*100, offerCurrency).Display()
}
