package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/valuable-moments-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
	"github.com/vfg2006/valuable-moments-api/internal/scheduler"
	"github.com/vfg2006/valuable-moments-api/pkg/apiErrors"
	"github.com/vfg2006/valuable-moments-api/pkg/log"
)

// ConnectionHealthChecker é implementado por scheduler.ConnectionHealthService
type ConnectionHealthChecker interface {
	RunCheck(ctx context.Context) (map[domain.Environment]postgres.ConnectionStatus, bool)
	GetStatus() scheduler.ConnectionHealthStatus
}

type ConnectionCheckResponse struct {
	Success      bool                                             `json:"success"`
	Started      bool                                             `json:"started"`
	Environments map[domain.Environment]postgres.ConnectionStatus `json:"environments"`
}

// RunConnectionCheck executa o health check na hora e devolve o resultado
func RunConnectionCheck(checker ConnectionHealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if checker == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Connection health service unavailable", nil)
			return
		}

		log.ForContext(ctx).Info("Health check de conexões disparado manualmente")

		results, started := checker.RunCheck(ctx)

		writeJSON(ctx, w, http.StatusOK, ConnectionCheckResponse{
			Success:      true,
			Started:      started,
			Environments: results,
		})
	}
}

func GetConnectionHealth(checker ConnectionHealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if checker == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Connection health service unavailable", nil)
			return
		}

		writeJSON(ctx, w, http.StatusOK, DataResponse{Success: true, Data: checker.GetStatus()})
	}
}
