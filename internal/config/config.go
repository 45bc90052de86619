// Package config wraps viper with typed accessors and application defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config provides read access to the loaded configuration tree.
type Config struct {
	v *viper.Viper
}

// New wraps an existing viper instance.
func New(v *viper.Viper) *Config {
	return &Config{v: v}
}

// Load builds the application configuration from defaults, an optional YAML
// file, and CARDSTACK_-prefixed environment variables (highest precedence).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("database.path", "cardstack.db")
	v.SetDefault("admin.token_ttl", "24h")
	v.SetDefault("leads.export_limit", 10000)

	v.SetEnvPrefix("CARDSTACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	return New(v), nil
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return c.GetString("server.host") + ":" + c.GetString("server.port")
}

// GetString returns a string value by key.
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt returns an int value by key.
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool returns a bool value by key.
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetDuration returns a duration value by key.
func (c *Config) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

// IsSet reports whether a key has a value.
func (c *Config) IsSet(key string) bool {
	return c.v.IsSet(key)
}

// Sub returns the configuration subtree rooted at key, or nil if absent.
func (c *Config) Sub(key string) *Config {
	sub := c.v.Sub(key)
	if sub == nil {
		return nil
	}
	return New(sub)
}
