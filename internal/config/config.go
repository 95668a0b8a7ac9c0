package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config is read from a YAML file; every field can be overridden by its env variable.
type Config struct {
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	HTTP struct {
		Addr              string        `env:"HTTP_ADDR"                env-default:":8080"    yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT"        env-default:"1m"       yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s"      yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT"       env-default:"1m"       yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT"        env-default:"2m"       yaml:"idleTimeout"`
		RequestTimeout    time.Duration `env:"HTTP_REQUEST_TIMEOUT"     env-default:"10s"      yaml:"requestTimeout"`
		MetricsPath       string        `env:"HTTP_METRICS_PATH"        env-default:"/metrics" yaml:"metricsPath"`
		// TrustProxyHeaders makes access logs take the client IP from
		// X-Forwarded-For / X-Real-IP. Enable only behind a proxy that overwrites them.
		TrustProxyHeaders bool `env:"HTTP_TRUST_PROXY_HEADERS" env-default:"false" yaml:"trustProxyHeaders"`
	} `yaml:"http"`

	Storage struct {
		// Driver is either "postgres" or "memory".
		Driver string `env:"STORAGE_DRIVER" env-default:"postgres" yaml:"driver"`
	} `yaml:"storage"`

	Database struct {
		Username        string        `env:"DATABASE_USERNAME"                env-default:"storefront" yaml:"username"`
		Password        string        `env:"DATABASE_PASSWORD"                env-default:"storefront" yaml:"password"`
		Host            string        `env:"DATABASE_HOST"                    env-default:"localhost"  yaml:"host"`
		Port            int           `env:"DATABASE_PORT"                    env-default:"5432"       yaml:"port"`
		SslMode         string        `env:"DATABASE_SSL_MODE"                env-default:"disable"    yaml:"sslMode"`
		DatabaseName    string        `env:"DATABASE_NAME"                    env-default:"storefront" yaml:"name"`
		MaxConnections  int           `env:"DATABASE_MAX_CONNECTIONS"         env-default:"10"         yaml:"maxConnections"`
		MinConnections  int           `env:"DATABASE_MIN_CONNECTIONS"         env-default:"2"          yaml:"minConnections"`
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"30m"        yaml:"connMaxLifetime"`
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"5m"        yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"`
}

// ConnString renders the database settings as a libpq keyword/value string for pgxpool.
func (c *Config) ConnString() string {
	db := c.Database
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		db.Host, db.Port, db.Username, db.Password, db.DatabaseName, db.SslMode)
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
		return nil
	default:
		return fmt.Errorf("unknown storage driver[%s]", c.Storage.Driver)
	}
}

// Load reads the yaml file at configPath and applies env overrides.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cleanenv.ReadConfig: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
