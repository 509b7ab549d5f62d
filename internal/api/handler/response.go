package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/valuable-moments-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
	"github.com/vfg2006/valuable-moments-api/internal/usecases/moments"
	"github.com/vfg2006/valuable-moments-api/pkg/apiErrors"
	"github.com/vfg2006/valuable-moments-api/pkg/log"
	"github.com/vfg2006/valuable-moments-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DataResponse é o envelope de sucesso das rotas de leitura
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao enviar resposta")
	}
}

// handleServiceError traduz os erros das camadas internas para o envelope da API
func handleServiceError(ctx context.Context, w http.ResponseWriter, err error, message string) {
	logger := log.ForContext(ctx).WithError(err)

	var configErr *postgres.ConfigError
	var connErr *postgres.ConnectionError

	switch {
	case errors.As(err, &configErr):
		logger.WithField("missing", configErr.Missing).Error("Ambiente sem configuração de banco")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseNotConfigured, "Database configuration error", nil)

	case errors.As(err, &connErr):
		logger.Error("Falha de conexão com o banco")
		apiErrors.WriteError(w, apiErrors.ErrConnectionFailed, "Database connection failed", apiErrors.DetailsFromError(err))

	case errors.Is(err, moments.ErrBusinessNotFound):
		apiErrors.WriteError(w, apiErrors.ErrBusinessNotFound, "Business not found", nil)

	case errors.Is(err, moments.ErrInvalidBusinessID),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, utils.ErrInvalidID):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		logger.Error(message)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, apiErrors.DetailsFromError(err))
	}
}
