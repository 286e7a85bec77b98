package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "school_activities",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of successful activity signups.",
	}, []string{"activity"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "school_activities",
		Subsystem: "registry",
		Name:      "unregistrations_total",
		Help:      "Number of successful activity unregistrations.",
	}, []string{"activity"})

	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "school_activities",
		Subsystem: "registry",
		Name:      "rejections_total",
		Help:      "Number of signup or unregister requests rejected by validation.",
	}, []string{"operation", "reason"})

	rosterGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "school_activities",
		Subsystem: "registry",
		Name:      "roster_size",
		Help:      "Current participant count per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rejectionCounter, rosterGauge)
}

// RecordSignup updates counters after a successful signup. A negative roster
// size means the activity vanished between mutation and readback; skip the gauge.
func RecordSignup(activity string, roster int) {
	signupCounter.WithLabelValues(activity).Inc()
	if roster >= 0 {
		rosterGauge.WithLabelValues(activity).Set(float64(roster))
	}
}

// RecordUnregister updates counters after a successful unregistration.
func RecordUnregister(activity string, roster int) {
	unregisterCounter.WithLabelValues(activity).Inc()
	if roster >= 0 {
		rosterGauge.WithLabelValues(activity).Set(float64(roster))
	}
}

// RecordRejection counts a validation failure for the given operation.
func RecordRejection(operation, reason string) {
	rejectionCounter.WithLabelValues(operation, reason).Inc()
}
