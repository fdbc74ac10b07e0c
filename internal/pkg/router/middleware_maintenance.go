package router

import (
	"net/http"

	"github.com/samber/lo"
	"github.com/shandysiswandi/formguard/internal/pkg/config"
	"github.com/shandysiswandi/formguard/internal/pkg/goerror"
)

// middlewareMaintenance answers 503 for routes listed in
// app.maintenance.endpoints, or for every route except /health when
// app.maintenance.enabled is true. The config is read per request so a
// watched config file takes effect without a restart.
func middlewareMaintenance(cfg config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg == nil {
				next.ServeHTTP(w, r)
				return
			}

			route := matchedRoutePath(r)
			blocked := cfg.GetBool("app.maintenance.enabled") && route != "/health"
			if !blocked {
				_, blocked = lo.Keyify(cfg.GetArray("app.maintenance.endpoints"))[route]
			}

			if blocked {
				encodeError(w, goerror.NewBusiness("service is under maintenance", goerror.CodeUnavailable))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
