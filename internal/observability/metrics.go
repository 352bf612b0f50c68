package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "enrollment",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Signups accepted, by activity.",
	}, []string{"activity"})
	unregistrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "enrollment",
		Subsystem: "registry",
		Name:      "unregistrations_total",
		Help:      "Unregistrations accepted, by activity.",
	}, []string{"activity"})
	rejectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "enrollment",
		Subsystem: "registry",
		Name:      "rejections_total",
		Help:      "Signup and unregister attempts rejected, by reason.",
	}, []string{"reason"})
	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "enrollment",
		Subsystem: "registry",
		Name:      "participants",
		Help:      "Current participant count, by activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupsTotal, unregistrationsTotal, rejectionsTotal, participantsGauge)
}

// RecordSignup counts an accepted signup and updates the enrollment gauge.
func RecordSignup(activity string, participants int) {
	signupsTotal.WithLabelValues(activity).Inc()
	participantsGauge.WithLabelValues(activity).Set(float64(participants))
}

// RecordUnregistration counts an accepted unregistration and updates the
// enrollment gauge.
func RecordUnregistration(activity string, participants int) {
	unregistrationsTotal.WithLabelValues(activity).Inc()
	participantsGauge.WithLabelValues(activity).Set(float64(participants))
}

// RecordRejection counts a rejected signup or unregister attempt.
func RecordRejection(reason string) {
	rejectionsTotal.WithLabelValues(reason).Inc()
}

// SetParticipants seeds the enrollment gauge for an activity.
func SetParticipants(activity string, participants int) {
	participantsGauge.WithLabelValues(activity).Set(float64(participants))
}
