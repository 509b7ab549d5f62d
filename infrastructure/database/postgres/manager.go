package postgres

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/vfg2006/valuable-moments-api/internal/config"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
	"github.com/vfg2006/valuable-moments-api/pkg/log"
)

type OpenFunc func(ctx context.Context, db config.Database, host string, port int, pool config.Pool) (*Connection, error)

// Manager cria sob demanda e mantém um pool por ambiente.
// Um pool só é fechado por Close; uma falha na criação não fica em cache.
type Manager struct {
	databases map[domain.Environment]config.Database
	pool      config.Pool
	strategy  ConnectivityStrategy
	open      OpenFunc

	// um lock por ambiente: criar o pool de PROD não bloqueia UAT
	locks map[domain.Environment]*sync.Mutex

	mu     sync.RWMutex
	pools  map[domain.Environment]*Connection
	closed bool
}

type ManagerOption func(*Manager)

func WithStrategy(strategy ConnectivityStrategy) ManagerOption {
	return func(m *Manager) {
		m.strategy = strategy
	}
}

func WithOpenFunc(open OpenFunc) ManagerOption {
	return func(m *Manager) {
		m.open = open
	}
}

func NewManager(databases map[domain.Environment]config.Database, pool config.Pool, opts ...ManagerOption) *Manager {
	m := &Manager{
		databases: databases,
		pool:      pool,
		strategy:  Direct{},
		open:      NewConnection,
		locks:     make(map[domain.Environment]*sync.Mutex),
		pools:     make(map[domain.Environment]*Connection),
	}

	for _, env := range domain.Environments() {
		m.locks[env] = &sync.Mutex{}
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// NewManagerFromConfig escolhe a estratégia de conectividade pela presença do proxy SOCKS
func NewManagerFromConfig(cfg *config.Config) (*Manager, error) {
	var strategy ConnectivityStrategy = Direct{}

	if cfg.Socks.ProxyURL != "" {
		tunnel, err := NewSocksTunnel(cfg.Socks.ProxyURL, cfg.Socks.ReadyTimeout)
		if err != nil {
			return nil, err
		}
		strategy = tunnel
	}

	log.L.Infof("Estratégia de conexão com o banco: %s", strategy.Name())

	return NewManager(cfg.Databases, cfg.Pool, WithStrategy(strategy)), nil
}

func (m *Manager) Pool(ctx context.Context, env domain.Environment) (*Connection, error) {
	if !env.IsValid() {
		return nil, domain.ErrInvalidEnvironment
	}

	if conn, ok, err := m.cached(env); ok || err != nil {
		return conn, err
	}

	lock := m.locks[env]
	lock.Lock()
	defer lock.Unlock()

	// outra goroutine pode ter criado o pool enquanto esperávamos
	if conn, ok, err := m.cached(env); ok || err != nil {
		return conn, err
	}

	conn, err := m.create(ctx, env)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		_ = conn.Close()
		return nil, ErrManagerClosed
	}

	m.pools[env] = conn

	return conn, nil
}

func (m *Manager) cached(env domain.Environment) (*Connection, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, false, ErrManagerClosed
	}

	conn, ok := m.pools[env]
	return conn, ok, nil
}

func (m *Manager) create(ctx context.Context, env domain.Environment) (*Connection, error) {
	db, ok := m.databases[env]
	if !ok {
		return nil, &ConfigError{Env: env, Missing: []string{"host", "user", "database", "port"}}
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"env":      env.String(),
		"host":     db.Host,
		"port":     db.Port,
		"database": db.Name,
		"user":     db.MaskedUser(),
		"strategy": m.strategy.Name(),
	})

	if missing := db.MissingFields(); len(missing) > 0 {
		err := &ConfigError{Env: env, Missing: missing}
		logger.WithError(err).Error("Configuração de banco incompleta")
		return nil, err
	}

	connErr := func(err error) error {
		return &ConnectionError{
			Env:      env,
			Host:     db.Host,
			Port:     db.Port,
			Database: db.Name,
			User:     db.MaskedUser(),
			Err:      err,
		}
	}

	host, port, err := m.strategy.Prepare(ctx, db.Host, db.Port)
	if err != nil {
		logger.WithError(err).Error("Erro ao preparar conectividade com o banco")
		return nil, connErr(err)
	}

	conn, err := m.open(ctx, db, host, port, m.pool)
	if err != nil {
		logger.WithError(err).Error("Erro ao criar pool de conexões")
		return nil, connErr(err)
	}

	logger.Info("Pool de conexões criado")

	return conn, nil
}

// OpenEnvironments lista os ambientes com pool já criado
func (m *Manager) OpenEnvironments() []domain.Environment {
	m.mu.RLock()
	defer m.mu.RUnlock()

	envs := make([]domain.Environment, 0, len(m.pools))
	for env := range m.pools {
		envs = append(envs, env)
	}

	sort.Slice(envs, func(i, j int) bool { return envs[i] < envs[j] })

	return envs
}

// Close fecha todos os pools e a estratégia de conectividade
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	var firstErr error
	for env, conn := range m.pools {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(m.pools, env)
		log.L.Infof("Pool %s fechado", env)
	}

	if closer, ok := m.strategy.(io.Closer); ok {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
