package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	TransactionsAccepted prometheus.Counter
	TransactionsIgnored  prometheus.Counter
	ParseFailures        prometheus.Counter
	BatchLinesTotal      prometheus.Counter
	NotificationsSent    prometheus.Counter
	WageQueriesTotal     *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		TransactionsAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moneybot_transactions_accepted_total",
			Help: "Transactions parsed and written to the ledger",
		}),
		TransactionsIgnored: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moneybot_transactions_ignored_total",
			Help: "Transactions suppressed by an ignored-card rule",
		}),
		ParseFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moneybot_parse_failures_total",
			Help: "Input lines that did not match the SMS grammar",
		}),
		BatchLinesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moneybot_batch_lines_total",
			Help: "Lines seen by CSV batch ingestion",
		}),
		NotificationsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moneybot_notifications_sent_total",
			Help: "Fan-out notifications delivered to subscribers",
		}),
		WageQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "moneybot_wage_queries_total",
			Help: "Wage queries by resolution kind",
		}, []string{"kind"}),
	}
}

func (m *Metrics) RecordWageQuery(kind string) {
	if m == nil {
		return
	}
	m.WageQueriesTotal.WithLabelValues(kind).Inc()
}
