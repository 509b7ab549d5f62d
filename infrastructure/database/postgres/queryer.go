package postgres

import (
	"context"
	"database/sql"

	"github.com/vfg2006/valuable-moments-api/internal/domain"
)

type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}

// PoolProvider entrega o pool de um ambiente. Implementado pelo Manager.
type PoolProvider interface {
	Pool(ctx context.Context, env domain.Environment) (*Connection, error)
}
