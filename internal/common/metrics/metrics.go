package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_api_requests_total",
			Help: "Total backend API requests issued by the portal",
		},
		[]string{"service", "operation", "outcome"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "portal_api_request_duration_seconds",
			Help: "Duration of backend API requests in seconds",
		},
		[]string{"service", "operation"},
	)

	ApplicationSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_application_submissions_total",
			Help: "Staff application submissions by outcome",
		},
		[]string{"outcome"},
	)

	QualificationTests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_qualification_tests_total",
			Help: "Scored qualification test attempts by result",
		},
		[]string{"result"},
	)

	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_emails_sent_total",
			Help: "Rendered notification emails by template and outcome",
		},
		[]string{"template", "outcome"},
	)

	ExportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_exports_generated_total",
			Help: "Generated export files by format",
		},
		[]string{"format"},
	)
)
