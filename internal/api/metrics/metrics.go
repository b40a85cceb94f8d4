// Package metrics defines and registers all custom Prometheus metrics for the
// portfolio API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics use promauto and register with the default registry at package
// initialisation; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "bad_credentials", or "not_found"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokensRevokedTotal counts logout-driven token revocations.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of tokens added to the revocation denylist.",
	},
)

// ── Project metrics ───────────────────────────────────────────────────────────

// ProjectMutationsTotal counts successful project writes.
// Label:
//   - op: "create", "update", or "delete"
var ProjectMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_mutations_total",
		Help:      "Total number of successful project mutations, by operation.",
	},
	[]string{"op"},
)

// ── Upload metrics ────────────────────────────────────────────────────────────

// UploadsTotal counts stored files.
// Label:
//   - backend: "local" or "minio"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of files stored, by storage backend.",
	},
	[]string{"backend"},
)
