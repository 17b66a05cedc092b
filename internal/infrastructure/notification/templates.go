package notification

import (
	"fmt"
	"strconv"
	"strings"

	"instant_offer/internal/domain/entities"
	"instant_offer/internal/usecase/interfaces"
)

var subjects = map[interfaces.NotificationKind]string{
	interfaces.NotificationQuoteConfirmation:           "Your cash offer %s is ready",
	interfaces.NotificationCancellationConfirmation:    "Your offer %s has been cancelled",
	interfaces.NotificationRescheduleConfirmation:      "Your pickup for offer %s was rescheduled",
	interfaces.NotificationPickupScheduledConfirmation: "Pickup confirmed for offer %s",
	interfaces.NotificationAdminAlert:                  "[offers] activity on quote %s",
}

func subject(kind interfaces.NotificationKind, q entities.Quote) string {
	tmpl, ok := subjects[kind]
	if !ok {
		return "Update on offer " + q.QuoteID
	}
	return fmt.Sprintf(tmpl, q.QuoteID)
}

func vehicleLabel(v entities.VehicleAttributes) string {
	parts := []string{strconv.Itoa(v.Year), v.Make, v.Model}
	if v.Trim != "" {
		parts = append(parts, v.Trim)
	}
	return strings.Join(parts, " ")
}
