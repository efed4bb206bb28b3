package router

import (
	"net/http"
	"slices"

	"github.com/shandysiswandi/venture/internal/pkg/config"
)

// middlewareMaintenance answers 503 while app.maintenance.enabled is set, or
// for the routes listed in app.maintenance.endpoints. Both keys are read per
// request so a config reload takes effect without a restart.
func middlewareMaintenance(cfg config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		if cfg == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)
			if route != "/health" && underMaintenance(cfg, route) {
				writeJSON(w, errorResponse{Message: "service is under maintenance"}, http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func underMaintenance(cfg config.Config, route string) bool {
	if cfg.GetBool("app.maintenance.enabled") {
		return true
	}
	return slices.Contains(cfg.GetArray("app.maintenance.endpoints"), route)
}
