package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/valuable-moments-api/internal/domain"
)

var (
	ErrConnectionFailed = errors.New("connection failed")
	ErrNotConfigured    = errors.New("database not configured")
	ErrManagerClosed    = errors.New("connection manager closed")
)

// ConfigError indica credenciais ausentes para um ambiente
type ConfigError struct {
	Env     domain.Environment
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("database configuration incomplete for %s: missing %s", e.Env, strings.Join(e.Missing, ", "))
}

func (e *ConfigError) Unwrap() error {
	return ErrNotConfigured
}

// ConnectionError carrega o contexto da falha para os logs.
// A mensagem é sempre genérica para não vazar host ou credenciais na resposta.
type ConnectionError struct {
	Env      domain.Environment
	Host     string
	Port     int
	Database string
	User     string
	Err      error
}

func (e *ConnectionError) Error() string {
	return ErrConnectionFailed.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnectionFailed
}
