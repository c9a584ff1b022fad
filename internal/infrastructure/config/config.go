package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full runtime configuration, sourced from environment
// variables. Every setting carries a development-friendly default so the
// service boots against a local stack with zero configuration; production
// deployments are expected to override all of them.
type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret  string        `env:"JWT_SECRET,  default=dev-only-secret"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	// AdminPassword seeds the default "admin" user when the users table has
	// none. Insecure default kept on purpose for local development.
	AdminPassword string `env:"ADMIN_PASSWORD, default=lvm25"`

	Postgres PostgresConfig
	Redis    RedisConfig
}

// PostgresConfig mirrors the conventional libpq variables, each independently
// overridable.
type PostgresConfig struct {
	Host     string `env:"PGHOST,     default=localhost"`
	User     string `env:"PGUSER,     default=postgres"`
	Password string `env:"PGPASSWORD, default=1234"`
	Database string `env:"PGDATABASE, default=niver_db"`
	Port     int    `env:"PGPORT,     default=5432"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// URL renders the pool connection string consumed by pgxpool.
func (p PostgresConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s", p.User, p.Password, p.Host, p.Port, p.Database)
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
