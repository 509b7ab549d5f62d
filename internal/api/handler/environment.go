package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/valuable-moments-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuable-moments-api/infrastructure/repository"
	"github.com/vfg2006/valuable-moments-api/infrastructure/selector"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
	"github.com/vfg2006/valuable-moments-api/pkg/apiErrors"
	"github.com/vfg2006/valuable-moments-api/pkg/log"
	"github.com/vfg2006/valuable-moments-api/pkg/middleware"
)

type SwitchEnvironmentRequest struct {
	Environment string `json:"environment"`
}

type EnvironmentResponse struct {
	Success    bool                       `json:"success"`
	Database   domain.Environment         `json:"database"`
	Connection *postgres.ConnectionStatus `json:"connection,omitempty"`
}

type DatabaseTestResponse struct {
	postgres.ConnectionStatus
	BusinessCount *int64 `json:"businessCount,omitempty"`
}

// GetEnvironment devolve o ambiente resolvido para esta requisição
func GetEnvironment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		writeJSON(ctx, w, http.StatusOK, EnvironmentResponse{
			Success:  true,
			Database: domain.EnvironmentFromContext(ctx),
		})
	}
}

// SwitchEnvironment grava o novo ambiente e testa a conexão com ele.
// Falha ao gravar não é erro para o cliente: só gera um warning.
func SwitchEnvironment(sel selector.Selector, executor postgres.Executor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := log.ForContext(ctx)

		var req SwitchEnvironmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		if strings.TrimSpace(req.Environment) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Field environment is required", nil)
			return
		}

		env, err := domain.ParseEnvironment(req.Environment)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidEnvironment, "Invalid environment. Accepted values: UAT, PROD", nil)
			return
		}

		if err := sel.Set(w, r, env); err != nil {
			logger.WithError(err).WithField("env", env.String()).Warn("Não foi possível gravar o ambiente selecionado")
		}

		// a resposta já reflete o novo ambiente
		w.Header().Set(middleware.EnvironmentHeader, env.String())

		status := executor.TestConnection(ctx, env)
		logger.WithFields(log.Fields{
			"env":     env.String(),
			"success": status.Success,
		}).Info("Ambiente alterado")

		writeJSON(ctx, w, http.StatusOK, EnvironmentResponse{
			Success:    true,
			Database:   env,
			Connection: &status,
		})
	}
}

// TestDatabase roda o teste de conexão no ambiente da requisição
func TestDatabase(executor postgres.Executor, repo repository.BusinessRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		env := domain.EnvironmentFromContext(ctx)

		status := executor.TestConnection(ctx, env)
		if !status.Success {
			apiErrors.WriteError(w, apiErrors.ErrConnectionFailed, "Database connection failed", status)
			return
		}

		response := DatabaseTestResponse{ConnectionStatus: status}

		count, err := repo.CountBusinesses(ctx, env)
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("Conexão ok, mas a contagem de empresas falhou")
		} else {
			response.BusinessCount = &count
		}

		writeJSON(ctx, w, http.StatusOK, response)
	}
}
