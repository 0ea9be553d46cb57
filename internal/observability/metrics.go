// Package observability содержит Prometheus-метрики сервиса активностей.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Значения метки result.
const (
	ResultOK          = "ok"
	ResultNotFound    = "not_found"
	ResultDuplicate   = "duplicate"
	ResultNotSignedUp = "not_signed_up"
	ResultFull        = "full"
	ResultError       = "error"
)

var (
	signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Name:      "signups_total",
		Help:      "Signup attempts partitioned by activity and outcome.",
	}, []string{"activity", "result"})
	unregistrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Name:      "unregistrations_total",
		Help:      "Unregister attempts partitioned by activity and outcome.",
	}, []string{"activity", "result"})
	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Name:      "participants",
		Help:      "Current number of participants signed up for an activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupsTotal, unregistrationsTotal, participantsGauge)
}

// RecordSignup учитывает попытку записи. Имена неизвестных активностей сворачиваются в "unknown".
func RecordSignup(activity, result string) {
	signupsTotal.WithLabelValues(labelActivity(activity, result), result).Inc()
}

// RecordUnregister учитывает попытку отписки.
func RecordUnregister(activity, result string) {
	unregistrationsTotal.WithLabelValues(labelActivity(activity, result), result).Inc()
}

// SetParticipants выставляет текущее число участников активности.
func SetParticipants(activity string, n int) {
	participantsGauge.WithLabelValues(activity).Set(float64(n))
}

func labelActivity(activity, result string) string {
	if result == ResultNotFound {
		return "unknown"
	}
	return activity
}
