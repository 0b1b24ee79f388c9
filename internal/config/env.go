package config

import (
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/AlexZinkM/share-a-care/internal/address"
)

// Config contains all configuration parameters for the application.
type Config struct {
	// The wallet session is unauthenticated, so the server stays on loopback by default
	ListenAddr           string        `envconfig:"LISTEN_ADDR" default:"127.0.0.1"`
	Port                 string        `envconfig:"PORT" default:"8080"`
	AdminPrimaryAddress  string        `envconfig:"ADMIN_PRIMARY_ADDRESS" required:"true"`
	AdminAddresses       []string      `envconfig:"ADMIN_ADDRESSES"`
	ProviderRPCURL       string        `envconfig:"PROVIDER_RPC_URL"` // empty: no wallet provider
	ProviderPollInterval time.Duration `envconfig:"PROVIDER_POLL_INTERVAL" default:"2s"`
	ChainID              uint64        `envconfig:"CHAIN_ID" default:"8453"` // Base mainnet
	DatabasePath         string        `envconfig:"DATABASE_PATH" default:"shareacare.db"`
	LogLevel             string        `envconfig:"LOG_LEVEL" default:"info"`
}

// cfg is the global configuration instance
var cfg *Config

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the admin addresses and log level.
func (c *Config) Validate() error {
	if err := address.Validate(c.AdminPrimaryAddress); err != nil {
		return fmt.Errorf("ADMIN_PRIMARY_ADDRESS: %w", err)
	}
	for _, a := range c.AdminAddresses {
		if err := address.Validate(strings.TrimSpace(a)); err != nil {
			return fmt.Errorf("ADMIN_ADDRESSES: %w", err)
		}
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// AdminSeed returns the configured secondary admin addresses, trimmed
func (c *Config) AdminSeed() []string {
	seed := make([]string, 0, len(c.AdminAddresses))
	for _, a := range c.AdminAddresses {
		if a = strings.TrimSpace(a); a != "" {
			seed = append(seed, a)
		}
	}
	return seed
}

// ServerAddr returns the host:port the HTTP server listens on
func (c *Config) ServerAddr() string {
	return net.JoinHostPort(c.ListenAddr, c.Port)
}

// Loopback reports whether ListenAddr only accepts local connections
func (c *Config) Loopback() bool {
	if c.ListenAddr == "localhost" {
		return true
	}
	ip := net.ParseIP(c.ListenAddr)
	return ip != nil && ip.IsLoopback()
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error")
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

// Init loads configuration into the global instance.
func Init() error {
	c, err := Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}
