package middleware

import (
	"net/http"

	"github.com/vfg2006/valuable-moments-api/infrastructure/selector"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
)

// EnvironmentHeader informa ao cliente qual banco atendeu a requisição
const EnvironmentHeader = "X-Database-Environment"

// EnvironmentMiddleware resolve o ambiente uma única vez por requisição.
// Uma troca concorrente de ambiente não afeta requisições já em andamento.
func EnvironmentMiddleware(sel selector.Selector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			env := sel.Get(r)

			w.Header().Set(EnvironmentHeader, env.String())

			ctx := domain.WithEnvironment(r.Context(), env)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
