package main

import (
	"context"

	"github.com/vfg2006/valuable-moments-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuable-moments-api/infrastructure/repository"
	"github.com/vfg2006/valuable-moments-api/infrastructure/selector"
	"github.com/vfg2006/valuable-moments-api/internal/api"
	"github.com/vfg2006/valuable-moments-api/internal/config"
	"github.com/vfg2006/valuable-moments-api/internal/scheduler"
	"github.com/vfg2006/valuable-moments-api/internal/usecases/authenticating"
	"github.com/vfg2006/valuable-moments-api/internal/usecases/moments"
	"github.com/vfg2006/valuable-moments-api/pkg/log"
	"github.com/vfg2006/valuable-moments-api/pkg/middleware"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// os pools são abertos sob demanda, na primeira requisição de cada ambiente
	manager, err := postgres.NewManagerFromConfig(cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao configurar a conexão com o banco")
	}

	executor := postgres.NewExecutor(manager)

	businessRepo := repository.NewBusinessRepository(executor)
	momentRepo := repository.NewValuableMomentRepository(executor)

	momentService := moments.NewService(momentRepo, businessRepo)

	authenticator, err := authenticating.NewService(cfg.Auth)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao configurar autenticação")
	}

	envSelector, err := newSelector(cfg.EnvironmentStore)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao configurar o seletor de ambiente")
	}

	var loginLimiter *middleware.RateLimiter
	if cfg.RateLimit.LoginRPS > 0 {
		loginLimiter = middleware.NewRateLimiter(ctx, cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst, cfg.RateLimit.TrustProxyHeaders)
	}

	healthService := scheduler.NewConnectionHealthService(manager, executor, cfg.ConnectionHealth)
	if err := healthService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador do health check de conexões")
	}

	server, err := api.New(cfg, api.Dependencies{
		MomentService: momentService,
		BusinessRepo:  businessRepo,
		Executor:      executor,
		Selector:      envSelector,
		Authenticator: authenticator,
		LoginLimiter:  loginLimiter,
		HealthChecker: healthService,
		OnShutdown:    []func() error{manager.Close},
	})
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

func newSelector(cfg config.EnvironmentStore) (selector.Selector, error) {
	if cfg.Kind == config.EnvironmentStoreCookie {
		log.L.Info("Ambiente ativo guardado em cookie de sessão")
		cookieSelector, err := selector.NewCookieSelector(cfg.SessionSecret, cfg.CookieSecure)
		if err != nil {
			return nil, err
		}
		return cookieSelector, nil
	}

	log.L.WithField("file", cfg.StateFile).Info("Ambiente ativo guardado em arquivo")
	return selector.NewFileSelector(cfg.StateFile), nil
}
