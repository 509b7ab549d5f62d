package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/valuable-moments-api/infrastructure/database/postgres"
	"github.com/vfg2006/valuable-moments-api/internal/config"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
	"github.com/vfg2006/valuable-moments-api/pkg/log"
)

// OpenEnvironmentLister lista os ambientes com pool aberto. Implementado pelo postgres.Manager.
type OpenEnvironmentLister interface {
	OpenEnvironments() []domain.Environment
}

// ConnectionHealthStatus é o retrato exposto em /health/connections
type ConnectionHealthStatus struct {
	Enabled              bool                                             `json:"enabled"`
	CronSchedule         string                                           `json:"cron_schedule"`
	Running              bool                                             `json:"running"`
	LastCheckStartedAt   *time.Time                                       `json:"last_check_started_at,omitempty"`
	LastCheckCompletedAt *time.Time                                       `json:"last_check_completed_at,omitempty"`
	Environments         map[domain.Environment]postgres.ConnectionStatus `json:"environments"`
}

// ConnectionHealthService testa periodicamente os pools já abertos.
// Ambientes nunca usados não são testados: criar o pool é responsabilidade das requisições.
type ConnectionHealthService struct {
	scheduler    *gocron.Scheduler
	cronSchedule string
	enabled      bool
	pools        OpenEnvironmentLister
	executor     postgres.Executor

	checkMutex           sync.Mutex
	checkRunning         bool
	lastCheckStartedAt   time.Time
	lastCheckCompletedAt time.Time
	results              map[domain.Environment]postgres.ConnectionStatus
}

func NewConnectionHealthService(
	pools OpenEnvironmentLister,
	executor postgres.Executor,
	cfg config.ConnectionHealth,
) *ConnectionHealthService {
	log.L.WithFields(log.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
	}).Info("Configuração do health check de conexões carregada")

	return &ConnectionHealthService{
		scheduler:    gocron.NewScheduler(time.UTC),
		cronSchedule: cfg.CronSchedule,
		enabled:      cfg.Enabled,
		pools:        pools,
		executor:     executor,
		results:      make(map[domain.Environment]postgres.ConnectionStatus),
	}
}

// Start agenda o job e o para quando o contexto for cancelado
func (s *ConnectionHealthService) Start(ctx context.Context) error {
	if !s.enabled {
		log.L.Info("Health check de conexões desabilitado por configuração")
		return nil
	}

	log.L.WithField("cron", s.cronSchedule).Info("Iniciando agendador do health check de conexões")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.RunCheck(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar health check de conexões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador do health check de conexões")
		s.scheduler.Stop()
	}()

	return nil
}

// RunCheck testa todos os pools abertos. Retorna false quando outra verificação já está em andamento.
func (s *ConnectionHealthService) RunCheck(ctx context.Context) (map[domain.Environment]postgres.ConnectionStatus, bool) {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		log.L.Info("Health check de conexões já em andamento, ignorando")
		return s.snapshot(), false
	}
	s.checkRunning = true
	s.lastCheckStartedAt = time.Now()
	s.checkMutex.Unlock()

	defer func() {
		s.checkMutex.Lock()
		s.checkRunning = false
		s.lastCheckCompletedAt = time.Now()
		s.checkMutex.Unlock()
	}()

	envs := s.pools.OpenEnvironments()
	if len(envs) == 0 {
		log.L.Debug("Nenhum pool aberto para verificar")
		return s.snapshot(), true
	}

	results := make(map[domain.Environment]postgres.ConnectionStatus, len(envs))
	for _, env := range envs {
		status := s.executor.TestConnection(ctx, env)
		results[env] = status

		logger := log.L.WithField("env", env.String())
		if status.Success {
			logger.Debug("Conexão saudável")
		} else {
			logger.WithField("error", status.Error).Warn("Falha no health check de conexão")
		}
	}

	s.checkMutex.Lock()
	for env, status := range results {
		s.results[env] = status
	}
	s.checkMutex.Unlock()

	return s.snapshot(), true
}

func (s *ConnectionHealthService) snapshot() map[domain.Environment]postgres.ConnectionStatus {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	copied := make(map[domain.Environment]postgres.ConnectionStatus, len(s.results))
	for env, status := range s.results {
		copied[env] = status
	}
	return copied
}

// GetStatus retorna o status atual do agendador e o último resultado por ambiente
func (s *ConnectionHealthService) GetStatus() ConnectionHealthStatus {
	results := s.snapshot()

	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	status := ConnectionHealthStatus{
		Enabled:      s.enabled,
		CronSchedule: s.cronSchedule,
		Running:      s.checkRunning,
		Environments: results,
	}

	if !s.lastCheckStartedAt.IsZero() {
		started := s.lastCheckStartedAt
		status.LastCheckStartedAt = &started
	}
	if !s.lastCheckCompletedAt.IsZero() {
		completed := s.lastCheckCompletedAt
		status.LastCheckCompletedAt = &completed
	}

	return status
}
