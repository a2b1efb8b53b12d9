package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for roster mutations.
const (
	OutcomeSuccess             = "success"
	OutcomeActivityNotFound    = "activity_not_found"
	OutcomeParticipantNotFound = "participant_not_found"
	OutcomeAlreadySignedUp     = "already_signed_up"
	OutcomeError               = "error"
)

var (
	SignupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of signup attempts grouped by outcome.",
	}, []string{"outcome"})

	UnregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Number of unregister attempts grouped by outcome.",
	}, []string{"outcome"})

	ParticipantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_api",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(SignupCounter, UnregisterCounter, ParticipantsGauge)
}

// RecordSignup increments the signup counter for the given outcome.
func RecordSignup(outcome string) {
	SignupCounter.WithLabelValues(outcome).Inc()
}

// RecordUnregister increments the unregister counter for the given outcome.
func RecordUnregister(outcome string) {
	UnregisterCounter.WithLabelValues(outcome).Inc()
}

// RecordRosterSize sets the participant gauge for an activity.
func RecordRosterSize(activity string, size int) {
	ParticipantsGauge.WithLabelValues(activity).Set(float64(size))
}
