package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores del flujo de checkout
// CompensationFailures es el que importa monitorear: una compensación fallida
// deja stock o ventas inconsistentes y requiere intervención manual
var (
	CheckoutsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartpos_checkouts_completed_total",
		Help: "Ventas POS completadas exitosamente",
	})

	CheckoutCompensations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartpos_checkout_compensations_total",
		Help: "Checkouts que requirieron compensación de stock",
	})

	CompensationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartpos_checkout_compensation_failures_total",
		Help: "Compensaciones que fallaron y requieren auditoría manual",
	})
)
