package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

var (
	ErrMissingSecret   = errors.New("jwt secret is required (JWT_SECRET or -s)")
	ErrMissingDatabase = errors.New("database dsn is required (DATABASE_URI or -d)")
)

type Config struct {
	Address        string        `env:"RUN_ADDRESS"      envDefault:"localhost:8080"`
	Database       string        `env:"DATABASE_URI"`
	LogLvl         string        `env:"LOG_LVL"          envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT"       envDefault:"console"`
	JWTSecret      string        `env:"JWT_SECRET"`
	TokenTTL       time.Duration `env:"TOKEN_TTL"        envDefault:"24h"`
	SweepInterval  time.Duration `env:"SWEEP_INTERVAL"   envDefault:"1m"`
	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS"   envDefault:"5"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// New reads the environment first and lets command line flags override it.
func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("can't parse environment: %w", err)
	}

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: console or json")
	flag.StringVar(&cfg.JWTSecret, "s", cfg.JWTSecret, "secret used to sign access tokens")
	flag.DurationVar(&cfg.TokenTTL, "t", cfg.TokenTTL, "access token lifetime")
	flag.DurationVar(&cfg.SweepInterval, "i", cfg.SweepInterval, "expired quest sweep interval")
	flag.Float64Var(&cfg.RateLimitRPS, "rps", cfg.RateLimitRPS, "requests per second allowed per caller on mutating routes")
	flag.IntVar(&cfg.RateLimitBurst, "burst", cfg.RateLimitBurst, "request burst allowed per caller on mutating routes")
	flag.Parse()

	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.JWTSecret == "":
		return ErrMissingSecret
	case c.Database == "":
		return ErrMissingDatabase
	case c.TokenTTL <= 0:
		return fmt.Errorf("token ttl must be positive, got %s", c.TokenTTL)
	case c.SweepInterval <= 0:
		return fmt.Errorf("sweep interval must be positive, got %s", c.SweepInterval)
	case c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0:
		return fmt.Errorf("rate limit must be positive, got %v rps burst %d", c.RateLimitRPS, c.RateLimitBurst)
	}
	return nil
}
