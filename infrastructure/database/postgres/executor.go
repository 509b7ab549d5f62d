package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/vfg2006/valuable-moments-api/internal/domain"
	"github.com/vfg2006/valuable-moments-api/pkg/log"
)

// ConnectionStatus é o resultado de um teste de conexão
type ConnectionStatus struct {
	Success     bool               `json:"success"`
	Environment domain.Environment `json:"environment"`
	Timestamp   *time.Time         `json:"timestamp,omitempty"`
	Error       string             `json:"error,omitempty"`
}

type Executor interface {
	Query(ctx context.Context, env domain.Environment, query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, env domain.Environment, query string, args ...interface{}) (*sql.Row, error)
	TestConnection(ctx context.Context, env domain.Environment) ConnectionStatus
}

type executor struct {
	pools PoolProvider
}

// NewExecutor executa consultas no pool do ambiente informado. Não há cache de resultados.
func NewExecutor(pools PoolProvider) Executor {
	return &executor{pools: pools}
}

// Query roda até o fim ou até o timeout do driver, mesmo que o cliente desconecte
func (e *executor) Query(ctx context.Context, env domain.Environment, query string, args ...interface{}) (*sql.Rows, error) {
	ctx = context.WithoutCancel(ctx)

	conn, err := e.pools.Pool(ctx, env)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		log.ForContext(ctx).WithFields(conn.LogFields()).WithFields(log.Fields{
			"env":         env.String(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("Erro ao executar consulta")
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"env":         env.String(),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Consulta executada")

	return rows, nil
}

func (e *executor) QueryRow(ctx context.Context, env domain.Environment, query string, args ...interface{}) (*sql.Row, error) {
	ctx = context.WithoutCancel(ctx)

	conn, err := e.pools.Pool(ctx, env)
	if err != nil {
		return nil, err
	}

	return conn.QueryRow(ctx, query, args...), nil
}

// TestConnection nunca retorna erro: a falha vai no próprio status
func (e *executor) TestConnection(ctx context.Context, env domain.Environment) ConnectionStatus {
	status := ConnectionStatus{Environment: env}
	ctx = context.WithoutCancel(ctx)

	conn, err := e.pools.Pool(ctx, env)
	if err != nil {
		status.Error = err.Error()
		return status
	}

	var now time.Time
	if err := conn.QueryRow(ctx, "SELECT NOW()").Scan(&now); err != nil {
		log.ForContext(ctx).WithFields(conn.LogFields()).
			WithField("env", env.String()).
			WithError(err).
			Error("Teste de conexão falhou")
		status.Error = ErrConnectionFailed.Error()
		return status
	}

	status.Success = true
	status.Timestamp = &now

	return status
}
