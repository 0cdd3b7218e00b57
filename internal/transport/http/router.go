// Package httptransport assembles the public HTTP surface. Handlers stay
// in their domain packages; this router only mounts them next to the
// operational endpoints.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"watchgate/pkg/platform/httputil"
)

// Registrar is implemented by domain handlers that attach their routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports the readiness of an optional backing service.
type HealthChecker func(r *http.Request) error

// NewRouter wires all public endpoints: the screening API, liveness, and
// Prometheus metrics.
func NewRouter(screening Registrar, health HealthChecker) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", handleHealth(health))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	screening.Register(r)
	return r
}

func handleHealth(health HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		code := http.StatusOK
		if health != nil {
			if err := health(r); err != nil {
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}
		httputil.WriteJSON(w, code, map[string]string{"status": status})
	}
}
