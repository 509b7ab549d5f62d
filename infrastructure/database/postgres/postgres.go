package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/lib/pq"
	"github.com/vfg2006/valuable-moments-api/internal/config"
	"github.com/vfg2006/valuable-moments-api/pkg/log"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

// Connection é o pool de um ambiente. target guarda o destino configurado
// (antes do túnel) para identificar o banco nos logs.
type Connection struct {
	db     *sql.DB
	target config.Database
}

// NewConnection abre o pool e valida com um ping.
// host e port já vêm resolvidos pela ConnectivityStrategy.
func NewConnection(
	ctx context.Context,
	db config.Database,
	host string,
	port int,
	pool config.Pool,
) (*Connection, error) {
	connector, err := pq.NewConnector(BuildDSN(db, host, port, pool))
	if err != nil {
		return nil, err
	}

	sqlDB := sql.OpenDB(connector)
	sqlDB.SetMaxOpenConns(pool.MaxConns)
	sqlDB.SetMaxIdleConns(pool.MaxConns)
	sqlDB.SetConnMaxIdleTime(pool.IdleTimeout)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if pool.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pool.ConnectTimeout)
		defer cancel()
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return &Connection{db: sqlDB, target: db}, nil
}

// LogFields identifica o banco do pool, com o usuário mascarado
func (c *Connection) LogFields() log.Fields {
	return log.Fields{
		"host":     c.target.Host,
		"port":     c.target.Port,
		"database": c.target.Name,
		"user":     c.target.MaskedUser(),
	}
}

// BuildDSN monta a url de conexão. sslmode=require não valida o certificado,
// o que permite servidores com certificado autoassinado.
func BuildDSN(db config.Database, host string, port int, pool config.Pool) string {
	sslMode := db.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}

	query := url.Values{}
	query.Set("sslmode", sslMode)
	if pool.ConnectTimeout > 0 {
		query.Set("connect_timeout", strconv.Itoa(int(pool.ConnectTimeout.Seconds())))
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     net.JoinHostPort(host, strconv.Itoa(port)),
		Path:     "/" + db.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func (c *Connection) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return c.db.ExecContext(ctx, query, args...)
}

func (c *Connection) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return c.db.QueryContext(ctx, query, args...)
}

func (c *Connection) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return c.db.QueryRowContext(ctx, query, args...)
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *Connection) Close() error {
	return c.db.Close()
}

// Stats expõe as estatísticas do pool para o health check
func (c *Connection) Stats() sql.DBStats {
	return c.db.Stats()
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback: %v: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
