package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/valuable-moments-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuable-moments-api/infrastructure/repository"
	"github.com/vfg2006/valuable-moments-api/infrastructure/selector"
	"github.com/vfg2006/valuable-moments-api/internal/api/handler"
	"github.com/vfg2006/valuable-moments-api/internal/api/handler/router"
	"github.com/vfg2006/valuable-moments-api/internal/config"
	"github.com/vfg2006/valuable-moments-api/internal/usecases/authenticating"
	"github.com/vfg2006/valuable-moments-api/internal/usecases/moments"
	"github.com/vfg2006/valuable-moments-api/pkg/log"
	"github.com/vfg2006/valuable-moments-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Dependencies reúne o que as rotas precisam
type Dependencies struct {
	MomentService moments.Service
	BusinessRepo  repository.BusinessRepository
	Executor      postgres.Executor
	Selector      selector.Selector
	Authenticator authenticating.Authenticator
	LoginLimiter  *middleware.RateLimiter
	HealthChecker handler.ConnectionHealthChecker
	OnShutdown    []func() error
}

type Server struct {
	httpServer *http.Server
	onShutdown []func() error
}

func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	if deps.MomentService == nil || deps.BusinessRepo == nil || deps.Executor == nil ||
		deps.Selector == nil || deps.Authenticator == nil || deps.HealthChecker == nil {
		return nil, fmt.Errorf("dependências obrigatórias do servidor não informadas")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(deps.Authenticator, deps.LoginLimiter)...),
		router.WithRoutes(handler.Metrics(deps.MomentService)...),
		router.WithRoutes(handler.Businesses(deps.BusinessRepo)...),
		router.WithRoutes(handler.Environment(deps.Selector, deps.Executor, deps.BusinessRepo)...),
		router.WithRoutes(handler.ConnectionHealth(deps.HealthChecker)...),
	)

	log.L.WithField("routes", rt.Routes()).Debug("Rotas registradas")

	// o ambiente é resolvido por último: requisições rejeitadas não leem o seletor
	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.CorsAllowedOrigins),
		middleware.AuthMiddleware(deps.Authenticator),
		middleware.EnvironmentMiddleware(deps.Selector),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		onShutdown: deps.OnShutdown,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown para o HTTP e depois fecha os recursos registrados (pools e túneis)
func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	log.L.Info("Servidor HTTP desligado, liberando recursos")

	for _, closeFn := range s.onShutdown {
		if err := closeFn(); err != nil {
			log.L.WithError(err).Warn("Erro ao liberar recurso no desligamento")
		}
	}

	return nil
}
