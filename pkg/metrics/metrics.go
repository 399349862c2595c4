package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pharmadesk", Name: "client_requests_total", Help: "Number of backend requests by outcome class."},
		[]string{"outcome"},
	)
	AuthFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "pharmadesk", Name: "client_auth_failures_total", Help: "Number of responses that invalidated the session."},
	)
	SessionRestores = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pharmadesk", Name: "client_session_restores_total", Help: "Number of session restore attempts by result."},
		[]string{"result"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RequestsTotal)
	reg.MustRegister(AuthFailures)
	reg.MustRegister(SessionRestores)
}
