package handler

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/vfg2006/valuable-moments-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuable-moments-api/infrastructure/repository"
	"github.com/vfg2006/valuable-moments-api/infrastructure/selector"
	"github.com/vfg2006/valuable-moments-api/internal/api/handler/router"
	"github.com/vfg2006/valuable-moments-api/internal/usecases/authenticating"
	"github.com/vfg2006/valuable-moments-api/internal/usecases/moments"
	"github.com/vfg2006/valuable-moments-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, limiter *middleware.RateLimiter) []router.Route {
	var middlewares []alice.Constructor
	if limiter != nil {
		middlewares = append(middlewares, limiter.Middleware())
	}

	return []router.Route{
		{
			Path:        "/login",
			Method:      http.MethodPost,
			Handler:     Login(service),
			Middlewares: middlewares,
		},
	}
}

func Metrics(service moments.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: GetValuableMoments(service),
		},
		{
			Path:    "/metrics/daily",
			Method:  http.MethodGet,
			Handler: GetDailyMoments(service),
		},
		{
			Path:    "/metrics/details",
			Method:  http.MethodGet,
			Handler: GetMomentDetails(service),
		},
	}
}

func Businesses(repo repository.BusinessRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/businesses",
			Method:  http.MethodGet,
			Handler: ListBusinesses(repo),
		},
		{
			Path:    "/businesses/:id",
			Method:  http.MethodGet,
			Handler: GetBusiness(repo),
		},
	}
}

func Environment(sel selector.Selector, executor postgres.Executor, repo repository.BusinessRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/environment",
			Method:  http.MethodGet,
			Handler: GetEnvironment(),
		},
		{
			Path:    "/environment",
			Method:  http.MethodPost,
			Handler: SwitchEnvironment(sel, executor),
		},
		{
			Path:    "/db-test",
			Method:  http.MethodGet,
			Handler: TestDatabase(executor, repo),
		},
	}
}

func ConnectionHealth(checker ConnectionHealthChecker) []router.Route {
	return []router.Route{
		{
			Path:    "/health/connections",
			Method:  http.MethodGet,
			Handler: GetConnectionHealth(checker),
		},
		{
			Path:    "/health/connections/run",
			Method:  http.MethodPost,
			Handler: RunConnectionCheck(checker),
		},
	}
}
