package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/valuable-moments-api/internal/domain"
)

type HealthcheckResponse struct {
	Status      string `json:"status"`
	Time        string `json:"time"`
	Environment string `json:"environment"`
}

// HealthcheckHandler é o liveness: não toca no banco
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		writeJSON(ctx, w, http.StatusOK, HealthcheckResponse{
			Status:      "ok",
			Time:        now().UTC().Format(time.RFC3339),
			Environment: domain.EnvironmentFromContext(ctx).String(),
		})
	})
}
