package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for employee mutations and the audit log.
type Metrics struct {
	EmployeeMutations *prometheus.CounterVec
	AuditLogFailures  *prometheus.CounterVec
}

// New creates the metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EmployeeMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "staffledger_employee_mutations_total",
			Help: "Total number of employee mutations committed to the primary store",
		}, []string{"action"}),
		AuditLogFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "staffledger_audit_log_failures_total",
			Help: "Total number of audit log entries that could not be written",
		}, []string{"action"}),
	}
}

// IncrementMutation counts a committed mutation. Safe on a nil receiver.
func (m *Metrics) IncrementMutation(action string) {
	if m == nil {
		return
	}
	m.EmployeeMutations.WithLabelValues(action).Inc()
}

// IncrementAuditFailure counts a failed audit log write. Safe on a nil receiver.
func (m *Metrics) IncrementAuditFailure(action string) {
	if m == nil {
		return
	}
	m.AuditLogFailures.WithLabelValues(action).Inc()
}
