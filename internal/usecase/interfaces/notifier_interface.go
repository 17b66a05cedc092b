package interfaces

import (
	"context"

	"instant_offer/internal/domain/entities"
)

type NotificationKind string

const (
	NotificationQuoteConfirmation           NotificationKind = "quote_confirmation"
	NotificationCancellationConfirmation    NotificationKind = "cancellation_confirmation"
	NotificationRescheduleConfirmation      NotificationKind = "reschedule_confirmation"
	NotificationPickupScheduledConfirmation NotificationKind = "pickup_scheduled_confirmation"
	NotificationAdminAlert                  NotificationKind = "admin_alert"
)

// INotifier hands notification requests to the delivery side.
//
// Implementations must not block on delivery. A returned error only means the
// request could not be accepted; callers log it and carry on.
type INotifier interface {
	NotifyCustomer(ctx context.Context, kind NotificationKind, q entities.Quote, extra map[string]string) error
	NotifyAdmin(ctx context.Context, kind NotificationKind, q entities.Quote, extra map[string]string) error
}
