package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/valuable-moments-api/internal/domain"
)

type Config struct {
	App              App                             `mapstructure:",squash"`
	Server           Server                          `mapstructure:",squash"`
	UATDatabase      UATDatabase                     `mapstructure:",squash"`
	ProdDatabase     ProdDatabase                    `mapstructure:",squash"`
	Pool             Pool                            `mapstructure:",squash"`
	Socks            Socks                           `mapstructure:",squash"`
	Auth             Auth                            `mapstructure:",squash"`
	EnvironmentStore EnvironmentStore                `mapstructure:",squash"`
	RateLimit        RateLimit                       `mapstructure:",squash"`
	ConnectionHealth ConnectionHealth                `mapstructure:",squash"`
	Databases        map[domain.Environment]Database `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Database descreve o acesso a um ambiente (UAT ou PROD)
type Database struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type UATDatabase struct {
	Host     string `mapstructure:"uat_db_host"`
	Port     int    `mapstructure:"uat_db_port"`
	User     string `mapstructure:"uat_db_user"`
	Password string `mapstructure:"uat_db_password"`
	Name     string `mapstructure:"uat_db_database"`
	SSLMode  string `mapstructure:"uat_db_sslmode"`
}

// ProdDatabase mantém os nomes DB_* usados historicamente para produção
type ProdDatabase struct {
	Host     string `mapstructure:"db_host"`
	Port     int    `mapstructure:"db_port"`
	User     string `mapstructure:"db_user"`
	Password string `mapstructure:"db_password"`
	Name     string `mapstructure:"db_database"`
	SSLMode  string `mapstructure:"db_sslmode"`
}

type Pool struct {
	MaxConns        int           `mapstructure:"db_pool_max_conns"`
	ConnectTimeout  time.Duration `mapstructure:"db_connect_timeout"`
	IdleTimeout     time.Duration `mapstructure:"db_idle_timeout"`
	ConnMaxLifetime time.Duration `mapstructure:"db_conn_max_lifetime"`
}

type Socks struct {
	ProxyURL     string        `mapstructure:"socks_proxy_url"`
	FixieHost    string        `mapstructure:"fixie_socks_host"`
	ReadyTimeout time.Duration `mapstructure:"socks_ready_timeout"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	Required      bool          `mapstructure:"auth_required"`
	TokenTTL      time.Duration `mapstructure:"auth_token_ttl"`
	AdminEmail    string        `mapstructure:"admin_email"`
	AdminPassword string        `mapstructure:"admin_password"`
}

type EnvironmentStore struct {
	Kind          string `mapstructure:"environment_store"`
	StateFile     string `mapstructure:"environment_state_file"`
	SessionSecret string `mapstructure:"session_secret"`
	CookieSecure  bool   `mapstructure:"cookie_secure"`
}

type RateLimit struct {
	LoginRPS          float64 `mapstructure:"login_rate_limit_rps"`
	LoginBurst        int     `mapstructure:"login_rate_limit_burst"`
	TrustProxyHeaders bool    `mapstructure:"trust_proxy_headers"`
}

type ConnectionHealth struct {
	CronSchedule string `mapstructure:"connection_health_cron"`
	Enabled      bool   `mapstructure:"connection_health_enabled"`
}

const (
	EnvironmentStoreFile   = "file"
	EnvironmentStoreCookie = "cookie"
)

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Credenciais sem valor padrão: precisam vir do ambiente
	for _, prefix := range []string{"UAT_DB", "DB"} {
		viper.SetDefault(prefix+"_HOST", "")
		viper.SetDefault(prefix+"_PORT", 5432)
		viper.SetDefault(prefix+"_USER", "")
		viper.SetDefault(prefix+"_PASSWORD", "")
		viper.SetDefault(prefix+"_DATABASE", "")
		viper.SetDefault(prefix+"_SSLMODE", "require") // aceita certificado autoassinado
	}

	// Pool pequeno: a rede de saída limita o número de conexões
	viper.SetDefault("DB_POOL_MAX_CONNS", 3)
	viper.SetDefault("DB_CONNECT_TIMEOUT", "15s")
	viper.SetDefault("DB_IDLE_TIMEOUT", "30s")
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")

	viper.SetDefault("SOCKS_PROXY_URL", "")
	viper.SetDefault("FIXIE_SOCKS_HOST", "")
	viper.SetDefault("SOCKS_READY_TIMEOUT", "20s")

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_REQUIRED", true)
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD", "")

	viper.SetDefault("ENVIRONMENT_STORE", EnvironmentStoreFile)
	viper.SetDefault("ENVIRONMENT_STATE_FILE", ".database-state")
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("COOKIE_SECURE", true)

	viper.SetDefault("LOGIN_RATE_LIMIT_RPS", 1)
	viper.SetDefault("LOGIN_RATE_LIMIT_BURST", 5)
	viper.SetDefault("TRUST_PROXY_HEADERS", false)

	viper.SetDefault("CONNECTION_HEALTH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("CONNECTION_HEALTH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.build()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// build preenche os campos derivados depois do Unmarshal
func (c *Config) build() {
	c.Databases = map[domain.Environment]Database{
		domain.EnvironmentUAT: {
			Host:     c.UATDatabase.Host,
			Port:     c.UATDatabase.Port,
			User:     c.UATDatabase.User,
			Password: c.UATDatabase.Password,
			Name:     c.UATDatabase.Name,
			SSLMode:  c.UATDatabase.SSLMode,
		},
		domain.EnvironmentPROD: {
			Host:     c.ProdDatabase.Host,
			Port:     c.ProdDatabase.Port,
			User:     c.ProdDatabase.User,
			Password: c.ProdDatabase.Password,
			Name:     c.ProdDatabase.Name,
			SSLMode:  c.ProdDatabase.SSLMode,
		},
	}

	if c.Socks.ProxyURL == "" && c.Socks.FixieHost != "" {
		c.Socks.ProxyURL = c.Socks.FixieHost
	}

	origins := make([]string, 0, len(c.Server.CorsAllowedOrigins))
	for _, origin := range c.Server.CorsAllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	c.Server.CorsAllowedOrigins = origins
}

// Validate verifica apenas o que impede o processo de subir.
// Credenciais de banco são validadas quando o ambiente é usado pela primeira vez.
func (c *Config) Validate() error {
	switch c.EnvironmentStore.Kind {
	case EnvironmentStoreFile:
	case EnvironmentStoreCookie:
		if c.EnvironmentStore.SessionSecret == "" {
			return fmt.Errorf("SESSION_SECRET é obrigatório quando ENVIRONMENT_STORE=%s", EnvironmentStoreCookie)
		}
	default:
		return fmt.Errorf("ENVIRONMENT_STORE inválido: %q", c.EnvironmentStore.Kind)
	}

	if c.Auth.Required && c.Auth.Secret == "" {
		return fmt.Errorf("AUTH_SECRET é obrigatório quando AUTH_REQUIRED=true")
	}

	if c.Pool.MaxConns < 1 {
		return fmt.Errorf("DB_POOL_MAX_CONNS deve ser maior que zero")
	}

	return nil
}

// Database retorna a configuração do ambiente informado
func (c *Config) Database(env domain.Environment) (Database, bool) {
	db, ok := c.Databases[env]
	return db, ok
}

// MissingFields lista as variáveis obrigatórias ausentes para o ambiente
func (d Database) MissingFields() []string {
	missing := make([]string, 0)
	if d.Host == "" {
		missing = append(missing, "host")
	}
	if d.User == "" {
		missing = append(missing, "user")
	}
	if d.Name == "" {
		missing = append(missing, "database")
	}
	if d.Port <= 0 {
		missing = append(missing, "port")
	}
	return missing
}

// MaskedUser esconde o usuário nos logs mantendo o primeiro e o último caractere
func (d Database) MaskedUser() string {
	if len(d.User) <= 2 {
		return strings.Repeat("*", len(d.User))
	}
	return d.User[:1] + strings.Repeat("*", len(d.User)-2) + d.User[len(d.User)-1:]
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente do sistema")
}
