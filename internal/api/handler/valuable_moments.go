package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/valuable-moments-api/internal/domain"
	"github.com/vfg2006/valuable-moments-api/internal/usecases/moments"
	"github.com/vfg2006/valuable-moments-api/pkg/apiErrors"
	"github.com/vfg2006/valuable-moments-api/pkg/log"
	"github.com/vfg2006/valuable-moments-api/pkg/utils"
)

var now = time.Now

// MetricsResponse é a resposta de /metrics
type MetricsResponse struct {
	Success bool                          `json:"success"`
	Data    []domain.BusinessMetricRecord `json:"data"`
	Totals  domain.MomentTotals           `json:"totals"`
}

// parseMomentFilter lê days e businessIds. Escreve o erro e retorna false quando inválidos.
func parseMomentFilter(w http.ResponseWriter, r *http.Request) (domain.MomentFilter, bool) {
	query := r.URL.Query()

	days, err := utils.ParseDays(query)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return domain.MomentFilter{}, false
	}

	businessIDs, err := utils.ParseBusinessIDs(query.Get("businessIds"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return domain.MomentFilter{}, false
	}

	return domain.MomentFilter{
		BusinessIDs: businessIDs,
		DateRange:   domain.LastDays(now(), days),
	}, true
}

// GetValuableMoments agrega as sete categorias por empresa no período
func GetValuableMoments(service moments.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filter, ok := parseMomentFilter(w, r)
		if !ok {
			return
		}

		env := domain.EnvironmentFromContext(ctx)
		report, err := service.GetValuableMoments(ctx, env, filter)
		if err != nil {
			handleServiceError(ctx, w, err, "Failed to fetch metrics")
			return
		}

		records := report.Records
		if records == nil {
			records = []domain.BusinessMetricRecord{}
		}

		writeJSON(ctx, w, http.StatusOK, MetricsResponse{
			Success: true,
			Data:    records,
			Totals:  report.Totals,
		})
	}
}

// GetDailyMoments retorna a série diária com total acumulado
func GetDailyMoments(service moments.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filter, ok := parseMomentFilter(w, r)
		if !ok {
			return
		}

		series, err := service.GetDailyMoments(ctx, domain.EnvironmentFromContext(ctx), filter)
		if err != nil {
			handleServiceError(ctx, w, err, "Failed to fetch daily metrics")
			return
		}

		if series == nil {
			series = []domain.DailyMoment{}
		}

		writeJSON(ctx, w, http.StatusOK, DataResponse{Success: true, Data: series})
	}
}

// GetMomentDetails lista as linhas de um tipo para uma empresa
func GetMomentDetails(service moments.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		query := r.URL.Query()

		rawID := strings.TrimSpace(query.Get("businessId"))
		rawType := strings.TrimSpace(query.Get("type"))
		if rawID == "" || rawType == "" || strings.TrimSpace(query.Get("days")) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing required parameters: businessId, days, type", nil)
			return
		}

		businessID, err := utils.ParseID(rawID)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "businessId must be a positive integer", nil)
			return
		}

		days, err := utils.ParseDays(query)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		detailType, err := domain.ParseDetailType(rawType)
		if err != nil {
			log.ForContext(ctx).WithField("type", rawType).Warn("Tipo de detalhe desconhecido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidDetailType, "Invalid type. Accepted values: emails, questions, social, content", nil)
			return
		}

		details, err := service.GetMomentDetails(ctx, domain.EnvironmentFromContext(ctx), businessID, detailType, domain.LastDays(now(), days))
		if err != nil {
			handleServiceError(ctx, w, err, "Failed to fetch details")
			return
		}

		if details == nil {
			details = []domain.MomentDetail{}
		}

		writeJSON(ctx, w, http.StatusOK, DataResponse{Success: true, Data: details})
	}
}
