package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	loginsTotal       *prometheus.CounterVec
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	transferAmount    prometheus.Histogram
	loanAmount        prometheus.Histogram
	directoryAccounts prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		loginsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_logins_total",
				Help: "Total number of login attempts",
			},
			[]string{"outcome"},
		),
		operationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_operations_total",
				Help: "Total number of ledger operations",
			},
			[]string{"operation", "outcome"},
		),
		operationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bank_operation_duration_milliseconds",
				Help:    "Ledger operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		transferAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bank_transfer_amount",
				Help:    "Transfer amount in account currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		loanAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bank_loan_amount",
				Help:    "Granted loan amount in account currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		directoryAccounts: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "bank_directory_accounts",
				Help: "Current number of accounts in the directory",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "bank_logins_total":
		if outcome := tags["outcome"]; outcome != "" {
			m.loginsTotal.WithLabelValues(outcome).Inc()
		}
	case "bank_operations_total":
		operation := tags["operation"]
		outcome := tags["outcome"]
		if operation != "" && outcome != "" {
			m.operationsTotal.WithLabelValues(operation, outcome).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.operationDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordAmount(name string, value float64) {
	switch name {
	case "bank_transfer_amount":
		m.transferAmount.Observe(value)
	case "bank_loan_amount":
		m.loanAmount.Observe(value)
	}
}

func (m *PrometheusMetrics) SetGauge(name string, value float64) {
	if name == "bank_directory_accounts" {
		m.directoryAccounts.Set(value)
	}
}
