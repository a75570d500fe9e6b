package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	Accepted       *prometheus.CounterVec
	Rejected       *prometheus.CounterVec
	InvalidRequest prometheus.Counter
	StoreFailures  prometheus.Counter
	NotifyFailures prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	accepted := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "coffee_orders_accepted_total"},
		[]string{"slot"},
	)
	rejected := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "coffee_orders_rejected_total"},
		[]string{"slot"},
	)
	invalid := prometheus.NewCounter(prometheus.CounterOpts{Name: "coffee_orders_invalid_total"})
	storeFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "coffee_ledger_failures_total"})
	notifyFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "coffee_notify_failures_total"})

	r.MustRegister(accepted, rejected, invalid, storeFailures, notifyFailures)
	return &Registry{
		reg:            r,
		Accepted:       accepted,
		Rejected:       rejected,
		InvalidRequest: invalid,
		StoreFailures:  storeFailures,
		NotifyFailures: notifyFailures,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
