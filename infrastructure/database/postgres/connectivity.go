package postgres

import (
	"context"
)

// ConnectivityStrategy decide como o pool alcança o servidor.
// Prepare devolve o endereço que o driver deve discar.
type ConnectivityStrategy interface {
	Name() string
	Prepare(ctx context.Context, host string, port int) (string, int, error)
}

// Direct conecta no host configurado sem intermediários
type Direct struct{}

func (Direct) Name() string {
	return "direct"
}

func (Direct) Prepare(_ context.Context, host string, port int) (string, int, error) {
	return host, port, nil
}
