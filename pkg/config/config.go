package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App    AppConfig
	Orders OrdersConfig
	Redis  RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CARTSTORE_APP_ENV" required:"true"`
	Port         string `envconfig:"CARTSTORE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"CARTSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CARTSTORE_LOG_WARN_STACK" default:"false"`
	// CORSOrigins is a comma separated list of renderer origins allowed to call the API.
	CORSOrigins []string `envconfig:"CARTSTORE_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// OrdersConfig selects and configures the order submission boundary.
type OrdersConfig struct {
	Submitter     string        `envconfig:"CARTSTORE_ORDER_SUBMITTER" default:"static"`
	Endpoint      string        `envconfig:"CARTSTORE_ORDER_ENDPOINT"`
	Timeout       time.Duration `envconfig:"CARTSTORE_ORDER_TIMEOUT" default:"10s"`
	StaticMessage string        `envconfig:"CARTSTORE_ORDER_STATIC_MESSAGE" default:"OK"`
	QueueKey      string        `envconfig:"CARTSTORE_ORDER_QUEUE_KEY" default:"orders"`
}

// Kind returns the normalized submitter kind.
func (o OrdersConfig) Kind() string {
	kind := strings.ToLower(strings.TrimSpace(o.Submitter))
	if kind == "" {
		return SubmitterStatic
	}
	return kind
}

type RedisConfig struct {
	URL          string        `envconfig:"CARTSTORE_REDIS_URL"`
	Address      string        `envconfig:"CARTSTORE_REDIS_ADDR"`
	Password     string        `envconfig:"CARTSTORE_REDIS_PASSWORD"`
	DB           int           `envconfig:"CARTSTORE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CARTSTORE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CARTSTORE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CARTSTORE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CARTSTORE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CARTSTORE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether any redis location was supplied.
func (r RedisConfig) Configured() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

func (c *Config) validate() error {
	switch c.Orders.Kind() {
	case SubmitterStatic:
		return nil
	case SubmitterHTTP:
		if c.Orders.Endpoint == "" {
			return fmt.Errorf("%s is required when %s=%s", EnvOrderEndpoint, EnvOrderSubmitter, SubmitterHTTP)
		}
		u, err := url.Parse(c.Orders.Endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute url, got %q", EnvOrderEndpoint, c.Orders.Endpoint)
		}
		return nil
	case SubmitterQueue:
		if !c.Redis.Configured() {
			return fmt.Errorf("either %s or %s is required when %s=%s", EnvRedisURL, EnvRedisAddr, EnvOrderSubmitter, SubmitterQueue)
		}
		if strings.TrimSpace(c.Orders.QueueKey) == "" {
			return fmt.Errorf("%s must not be empty", EnvOrderQueueKey)
		}
		return nil
	default:
		return fmt.Errorf("unknown %s %q", EnvOrderSubmitter, c.Orders.Submitter)
	}
}
