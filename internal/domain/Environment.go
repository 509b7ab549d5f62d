// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"context"
	"errors"
	"strings"
)

// Environment identifica o banco de dados alvo de uma requisição
type Environment string

const (
	EnvironmentUAT  Environment = "UAT"
	EnvironmentPROD Environment = "PROD"

	// DefaultEnvironment é usado quando nenhuma seleção foi registrada
	DefaultEnvironment = EnvironmentUAT
)

var ErrInvalidEnvironment = errors.New("invalid environment")

// Environments lista os ambientes conhecidos, na ordem de exibição
func Environments() []Environment {
	return []Environment{EnvironmentUAT, EnvironmentPROD}
}

// ParseEnvironment converte o nome recebido (ex: "uat", " PROD ") para Environment
func ParseEnvironment(value string) (Environment, error) {
	switch Environment(strings.ToUpper(strings.TrimSpace(value))) {
	case EnvironmentUAT:
		return EnvironmentUAT, nil
	case EnvironmentPROD:
		return EnvironmentPROD, nil
	}

	return "", ErrInvalidEnvironment
}

func (e Environment) IsValid() bool {
	return e == EnvironmentUAT || e == EnvironmentPROD
}

func (e Environment) String() string {
	return string(e)
}

type environmentContextKey struct{}

// WithEnvironment grava no contexto o ambiente resolvido para a requisição
func WithEnvironment(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, environmentContextKey{}, env)
}

// EnvironmentFromContext retorna o ambiente da requisição ou o padrão
func EnvironmentFromContext(ctx context.Context) Environment {
	if env, ok := ctx.Value(environmentContextKey{}).(Environment); ok && env.IsValid() {
		return env
	}
	return DefaultEnvironment
}
