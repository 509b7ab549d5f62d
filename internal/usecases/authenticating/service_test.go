package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/valuable-moments-api/internal/config"
	"github.com/vfg2006/valuable-moments-api/pkg/apiErrors"
)

func newTestService(t *testing.T, cfg config.Auth) *Service {
	t.Helper()
	s, err := NewService(cfg)
	require.NoError(t, err)
	return s
}

func defaultAuth() config.Auth {
	return config.Auth{
		Secret:        "test-secret",
		Required:      true,
		TokenTTL:      time.Hour,
		AdminEmail:    "Admin@Example.com",
		AdminPassword: "s3nha-forte",
	}
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Auth
		email     string
		password  string
		expectErr error
		code      string
		withToken bool
	}{
		{
			name:      "Credenciais corretas - retorna token",
			cfg:       defaultAuth(),
			email:     " admin@example.com ",
			password:  "s3nha-forte",
			withToken: true,
		},
		{
			name:      "Senha incorreta",
			cfg:       defaultAuth(),
			email:     "admin@example.com",
			password:  "errada",
			expectErr: ErrInvalidCredentials,
			code:      apiErrors.ErrInvalidCredentials,
		},
		{
			name:      "Email incorreto",
			cfg:       defaultAuth(),
			email:     "outro@example.com",
			password:  "s3nha-forte",
			expectErr: ErrInvalidCredentials,
			code:      apiErrors.ErrInvalidCredentials,
		},
		{
			name:      "Campos vazios",
			cfg:       defaultAuth(),
			expectErr: ErrMissingRequiredData,
			code:      apiErrors.ErrMissingRequiredData,
		},
		{
			name:      "Administrador não configurado",
			cfg:       config.Auth{Secret: "test-secret"},
			email:     "admin@example.com",
			password:  "s3nha-forte",
			expectErr: ErrNotConfigured,
			code:      apiErrors.ErrAuthNotConfigured,
		},
		{
			name: "Sem segredo - login válido sem token",
			cfg: config.Auth{
				AdminEmail:    "admin@example.com",
				AdminPassword: "s3nha-forte",
			},
			email:    "admin@example.com",
			password: "s3nha-forte",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t, tt.cfg)

			token, err := s.Login(tt.email, tt.password)

			if tt.expectErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectErr)

				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, tt.code, authErr.Code)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			if tt.withToken {
				assert.NotEmpty(t, token)
			} else {
				assert.Empty(t, token)
			}
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	t.Run("deve aceitar o token emitido no login", func(t *testing.T) {
		s := newTestService(t, defaultAuth())

		token, err := s.Login("admin@example.com", "s3nha-forte")
		require.NoError(t, err)

		claims, err := s.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.Equal(t, tokenIssuer, claims.Issuer)
	})

	t.Run("deve rejeitar token expirado", func(t *testing.T) {
		s := newTestService(t, defaultAuth())
		issuedAt := time.Now().Add(-2 * time.Hour)
		s.now = func() time.Time { return issuedAt }

		token, err := s.Login("admin@example.com", "s3nha-forte")
		require.NoError(t, err)

		s.now = time.Now
		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsTokenError(err))
	})

	t.Run("deve rejeitar token assinado com outro segredo", func(t *testing.T) {
		other := defaultAuth()
		other.Secret = "outro-segredo"
		token, err := newTestService(t, other).Login("admin@example.com", "s3nha-forte")
		require.NoError(t, err)

		_, err = newTestService(t, defaultAuth()).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("deve rejeitar texto qualquer", func(t *testing.T) {
		_, err := newTestService(t, defaultAuth()).ValidateToken("nao-e-um-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
