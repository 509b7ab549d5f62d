package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
	"github.com/vfg2006/valuable-moments-api/internal/usecases/authenticating"
	"github.com/vfg2006/valuable-moments-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/valuable-moments-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fixedSelector struct {
	env   domain.Environment
	calls int
}

func (s *fixedSelector) Get(_ *http.Request) domain.Environment {
	s.calls++
	return s.env
}

func (s *fixedSelector) Set(_ http.ResponseWriter, _ *http.Request, env domain.Environment) error {
	s.env = env
	return nil
}

var noContent = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestCors(t *testing.T) {
	h := Cors([]string{"http://painel.local"})(noContent)

	t.Run("deve liberar origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.Header.Set("Origin", "http://painel.local")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "http://painel.local", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, EnvironmentHeader, rec.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("não deve liberar origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.Header.Set("Origin", "http://outro.local")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("deve encerrar o preflight sem chamar a rota", func(t *testing.T) {
		called := false
		h := Cors([]string{"*"})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

		req := httptest.NewRequest(http.MethodOptions, "/environment", nil)
		req.Header.Set("Origin", "http://qualquer.local")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestEnvironmentMiddleware(t *testing.T) {
	sel := &fixedSelector{env: domain.EnvironmentPROD}

	var seen domain.Environment
	h := EnvironmentMiddleware(sel)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// troca durante a requisição não muda o ambiente já resolvido
		_ = sel.Set(w, r, domain.EnvironmentUAT)
		seen = domain.EnvironmentFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, domain.EnvironmentPROD, seen)
	assert.Equal(t, "PROD", rec.Header().Get(EnvironmentHeader))
	assert.Equal(t, 1, sel.calls)
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		header         string
		setup          func(m *mocks.MockAuthenticator)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "deve liberar tudo quando o login não é exigido",
			path:           "/metrics",
			setup:          func(m *mocks.MockAuthenticator) { m.EXPECT().Required().Return(false) },
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "deve liberar rota pública",
			path:           "/healthcheck",
			setup:          func(m *mocks.MockAuthenticator) { m.EXPECT().Required().Return(true) },
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "deve exigir o cabeçalho Authorization",
			path:           "/metrics",
			setup:          func(m *mocks.MockAuthenticator) { m.EXPECT().Required().Return(true) },
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:           "deve exigir o prefixo Bearer",
			path:           "/metrics",
			header:         "Basic abc",
			setup:          func(m *mocks.MockAuthenticator) { m.EXPECT().Required().Return(true) },
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "deve repassar o código do token expirado",
			path:   "/metrics",
			header: "Bearer velho",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Required().Return(true)
				m.EXPECT().ValidateToken("velho").Return(nil,
					authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "deve aceitar token válido",
			path:   "/metrics",
			header: "Bearer bom",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Required().Return(true)
				m.EXPECT().ValidateToken("bom").Return(&domain.Claims{Email: "admin@example.com"}, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			AuthMiddleware(auth)(noContent).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Contains(t, rec.Body.String(), `"code":"`+tt.expectedCode+`"`)
			}
		})
	}

	t.Run("deve expor as claims no contexto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().Required().Return(true)
		auth.EXPECT().ValidateToken("bom").Return(&domain.Claims{Email: "admin@example.com"}, nil)

		var claims *domain.Claims
		h := AuthMiddleware(auth)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			claims, _ = ClaimsFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.Header.Set("Authorization", "Bearer bom")
		h.ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, claims)
		assert.Equal(t, "admin@example.com", claims.Email)
	})
}

func TestRateLimiter_IPDoCliente(t *testing.T) {
	tests := []struct {
		name              string
		trustProxyHeaders bool
		headers           []map[string]string
		expectedStatus    []int
	}{
		{
			name:              "deve ignorar X-Forwarded-For por padrão",
			trustProxyHeaders: false,
			headers: []map[string]string{
				{"X-Forwarded-For": "10.0.0.1"},
				{"X-Forwarded-For": "10.0.0.2"},
				{"X-Real-IP": "10.0.0.3"},
			},
			expectedStatus: []int{http.StatusNoContent, http.StatusTooManyRequests, http.StatusTooManyRequests},
		},
		{
			name:              "deve usar X-Forwarded-For atrás de proxy confiável",
			trustProxyHeaders: true,
			headers: []map[string]string{
				{"X-Forwarded-For": "10.0.0.1, 172.16.0.1"},
				{"X-Forwarded-For": "10.0.0.2"},
				{"X-Forwarded-For": "10.0.0.1"},
			},
			expectedStatus: []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests},
		},
		{
			name:              "deve usar X-Real-IP atrás de proxy confiável",
			trustProxyHeaders: true,
			headers: []map[string]string{
				{"X-Real-IP": "10.0.0.5"},
				{"X-Real-IP": "10.0.0.5"},
			},
			expectedStatus: []int{http.StatusNoContent, http.StatusTooManyRequests},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			h := NewRateLimiter(ctx, 0.001, 1, tt.trustProxyHeaders).Middleware()(noContent)

			for i, headers := range tt.headers {
				req := httptest.NewRequest(http.MethodPost, "/login", nil)
				req.RemoteAddr = "192.0.2.10:4321"
				for key, value := range headers {
					req.Header.Set(key, value)
				}
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, req)

				assert.Equalf(t, tt.expectedStatus[i], rec.Code, "requisição %d", i)
			}
		})
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:4321"
	req.Header.Set("X-Forwarded-For", "203.0.113.7:80, 10.0.0.1")

	assert.Equal(t, "192.0.2.10", clientIP(req, false))
	assert.Equal(t, "203.0.113.7", clientIP(req, true))
}
