package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// ContentWrites counts create/update/delete operations per collection.
	ContentWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "kalasangam_content_writes_total", Help: "Total content mutations by collection and operation"},
		[]string{"collection", "operation"},
	)
	// AssetUploads counts media-host uploads by kind and outcome.
	AssetUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "kalasangam_asset_uploads_total", Help: "Total asset uploads by kind and outcome"},
		[]string{"kind", "outcome"},
	)
	// AdminGuardDenials counts admin-page accesses refused by the session guard.
	AdminGuardDenials = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "kalasangam_admin_guard_denials_total", Help: "Total requests denied by the admin session guard"},
	)
)

func Register() {
	prometheus.MustRegister(ContentWrites, AssetUploads, AdminGuardDenials)
}
