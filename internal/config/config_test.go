package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
)

func validConfig() *Config {
	return &Config{
		Auth:             Auth{Required: true, Secret: "segredo"},
		EnvironmentStore: EnvironmentStore{Kind: EnvironmentStoreFile},
		Pool:             Pool{MaxConns: 3},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "configuração válida",
			mutate: func(c *Config) {},
		},
		{
			name: "cookie sem segredo de sessão",
			mutate: func(c *Config) {
				c.EnvironmentStore.Kind = EnvironmentStoreCookie
			},
			wantErr: "SESSION_SECRET",
		},
		{
			name: "cookie com segredo de sessão",
			mutate: func(c *Config) {
				c.EnvironmentStore = EnvironmentStore{Kind: EnvironmentStoreCookie, SessionSecret: "s"}
			},
		},
		{
			name:    "armazenamento desconhecido",
			mutate:  func(c *Config) { c.EnvironmentStore.Kind = "redis" },
			wantErr: "ENVIRONMENT_STORE",
		},
		{
			name:    "login exigido sem segredo",
			mutate:  func(c *Config) { c.Auth.Secret = "" },
			wantErr: "AUTH_SECRET",
		},
		{
			name:   "login opcional sem segredo",
			mutate: func(c *Config) { c.Auth = Auth{Required: false} },
		},
		{
			name:    "pool vazio",
			mutate:  func(c *Config) { c.Pool.MaxConns = 0 },
			wantErr: "DB_POOL_MAX_CONNS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Build(t *testing.T) {
	c := &Config{
		Server:       Server{CorsAllowedOrigins: []string{" http://a.local ", "", "http://b.local"}},
		UATDatabase:  UATDatabase{Host: "uat.local", Port: 5432, User: "uat", Name: "moments"},
		ProdDatabase: ProdDatabase{Host: "prod.local", Port: 6543, User: "prod", Name: "moments"},
		Socks:        Socks{FixieHost: "socks5://fixie:1080"},
	}

	c.build()

	uat, ok := c.Database(domain.EnvironmentUAT)
	require.True(t, ok)
	assert.Equal(t, "uat.local", uat.Host)

	prod, ok := c.Database(domain.EnvironmentPROD)
	require.True(t, ok)
	assert.Equal(t, 6543, prod.Port)

	assert.Equal(t, []string{"http://a.local", "http://b.local"}, c.Server.CorsAllowedOrigins)
	assert.Equal(t, "socks5://fixie:1080", c.Socks.ProxyURL)
}

func TestDatabase_MissingFields(t *testing.T) {
	assert.Equal(t, []string{"host", "user", "database", "port"}, Database{}.MissingFields())
	assert.Empty(t, Database{Host: "h", User: "u", Name: "n", Port: 5432}.MissingFields())
}

func TestDatabase_MaskedUser(t *testing.T) {
	assert.Equal(t, "", Database{}.MaskedUser())
	assert.Equal(t, "**", Database{User: "ab"}.MaskedUser())
	assert.Equal(t, "p**d", Database{User: "prod"}.MaskedUser())
}
