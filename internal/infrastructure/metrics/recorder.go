package metrics

import (
	"instant_offer/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder exposes quote activity as Prometheus counters.
type Recorder struct {
	actions              *prometheus.CounterVec
	notificationFailures *prometheus.CounterVec
}

var _ interfaces.IActionRecorder = (*Recorder)(nil)

func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "instant_offer",
			Name:      "quote_actions_total",
			Help:      "Quote submissions and lifecycle actions by outcome.",
		}, []string{"action", "outcome"}),
		notificationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "instant_offer",
			Name:      "notification_failures_total",
			Help:      "Notifications that could not be queued or delivered.",
		}, []string{"kind"}),
	}
	for _, c := range []prometheus.Collector{r.actions, r.notificationFailures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) ObserveAction(action, outcome string) {
	r.actions.WithLabelValues(action, outcome).Inc()
}

func (r *Recorder) ObserveNotificationFailure(kind interfaces.NotificationKind) {
	r.notificationFailures.WithLabelValues(string(kind)).Inc()
}
