package interfaces

// IActionRecorder receives one observation per quote action attempt.
type IActionRecorder interface {
	ObserveAction(action string, outcome string)
	ObserveNotificationFailure(kind NotificationKind)
}
