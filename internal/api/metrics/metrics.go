// Package metrics defines and registers all custom Prometheus metrics for the
// grading system. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time and
// are exposed through the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "grading"

// ── Account metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts authentication attempts.
// Labels:
//   - role: the role the caller claimed ("student", "lecturer", "admin")
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of authentication attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// UsersCreatedTotal counts successful registrations.
// Label:
//   - role: "student" or "lecturer" (admin is never created)
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// ── Flow metrics ──────────────────────────────────────────────────────────────

// FlowRequestsTotal counts LLM flow invocations.
// Labels:
//   - flow: "generate_questions", "grade_paper", or "highlight_answers"
//   - result: "success" or "failure"
var FlowRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "flow_requests_total",
		Help:      "Total number of AI flow invocations, by flow and result.",
	},
	[]string{"flow", "result"},
)

// FlowDuration measures end-to-end latency of a single flow invocation,
// including the model round trip.
// Label:
//   - flow: "generate_questions", "grade_paper", or "highlight_answers"
var FlowDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "flow_duration_seconds",
		Help:      "Duration of AI flow invocations from request to parsed response.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30},
	},
	[]string{"flow"},
)
