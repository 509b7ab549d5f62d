package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/valuable-moments-api/infrastructure/repository"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
	"github.com/vfg2006/valuable-moments-api/pkg/apiErrors"
	"github.com/vfg2006/valuable-moments-api/pkg/utils"
)

// ListBusinesses lista as empresas ativas do ambiente da requisição
func ListBusinesses(repo repository.BusinessRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		businesses, err := repo.ListBusinesses(ctx, domain.EnvironmentFromContext(ctx))
		if err != nil {
			handleServiceError(ctx, w, err, "Failed to fetch businesses")
			return
		}

		if businesses == nil {
			businesses = []domain.Business{}
		}

		writeJSON(ctx, w, http.StatusOK, DataResponse{Success: true, Data: businesses})
	}
}

func GetBusiness(repo repository.BusinessRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		businessID, err := utils.ParseID(httprouter.ParamsFromContext(ctx).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Business id must be a positive integer", nil)
			return
		}

		business, err := repo.GetBusiness(ctx, domain.EnvironmentFromContext(ctx), businessID)
		if err != nil {
			handleServiceError(ctx, w, err, "Failed to fetch business")
			return
		}

		if business == nil {
			apiErrors.WriteError(w, apiErrors.ErrBusinessNotFound, "Business not found", nil)
			return
		}

		writeJSON(ctx, w, http.StatusOK, DataResponse{Success: true, Data: business})
	}
}
