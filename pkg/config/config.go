package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedpulse.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Update struct {
		DefaultInterval time.Duration `yaml:"default_interval" json:"default_interval" jsonschema:"default=1h,description=Initial fetch interval for new feeds"`
		MinInterval     time.Duration `yaml:"min_interval" json:"min_interval" jsonschema:"default=10m,description=Lower bound of the adaptive fetch interval"`
		MaxInterval     time.Duration `yaml:"max_interval" json:"max_interval" jsonschema:"default=24h,description=Upper bound of the adaptive fetch interval"`
		MaxWorkers      int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=8,description=Maximum concurrent feed polls"`
	} `yaml:"update" json:"update" jsonschema:"description=Polling configuration"`

	Escalation struct {
		AutodiscoveryAfter time.Duration `yaml:"autodiscovery_after" json:"autodiscovery_after" jsonschema:"default=24h,description=Failure streak length before forcing autodiscovery"`
		UnavailableAfter   time.Duration `yaml:"unavailable_after" json:"unavailable_after" jsonschema:"default=168h,description=Failure streak length before retiring a feed"`
	} `yaml:"escalation" json:"escalation" jsonschema:"description=Failure escalation configuration"`

	Retention struct {
		MaxFeedEntries int `yaml:"max_feed_entries" json:"max_feed_entries" jsonschema:"default=500,description=Maximum live entries kept per feed (0 disables trimming)"`
	} `yaml:"retention" json:"retention" jsonschema:"description=Retention configuration"`

	HTTP struct {
		UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=FeedPulse/1.0,description=User agent for feed requests"`
		Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed request timeout"`
	} `yaml:"http" json:"http" jsonschema:"description=Outgoing HTTP configuration"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills in zero values section by section
func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:feedpulse.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Update.DefaultInterval == 0 {
		c.Update.DefaultInterval = time.Hour
	}
	if c.Update.MinInterval == 0 {
		c.Update.MinInterval = 10 * time.Minute
	}
	if c.Update.MaxInterval == 0 {
		c.Update.MaxInterval = 24 * time.Hour
	}
	if c.Update.MaxWorkers == 0 {
		c.Update.MaxWorkers = 8
	}

	if c.Escalation.AutodiscoveryAfter == 0 {
		c.Escalation.AutodiscoveryAfter = 24 * time.Hour
	}
	if c.Escalation.UnavailableAfter == 0 {
		c.Escalation.UnavailableAfter = 168 * time.Hour
	}

	if c.Retention.MaxFeedEntries == 0 {
		c.Retention.MaxFeedEntries = 500
	}

	if c.HTTP.UserAgent == "" {
		c.HTTP.UserAgent = "FeedPulse/1.0"
	}
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = 30 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate update config
	if cfg.Update.MinInterval < time.Minute {
		return fmt.Errorf("update.min_interval must be at least 1 minute")
	}
	if cfg.Update.MaxInterval < cfg.Update.MinInterval {
		return fmt.Errorf("update.max_interval must not be below update.min_interval")
	}
	if cfg.Update.DefaultInterval < cfg.Update.MinInterval || cfg.Update.DefaultInterval > cfg.Update.MaxInterval {
		return fmt.Errorf("update.default_interval must be within [min_interval, max_interval]")
	}
	if cfg.Update.MaxWorkers < 1 {
		return fmt.Errorf("update.max_workers must be at least 1")
	}

	// validate escalation config
	if cfg.Escalation.AutodiscoveryAfter <= 0 {
		return fmt.Errorf("escalation.autodiscovery_after must be positive")
	}
	if cfg.Escalation.UnavailableAfter < cfg.Escalation.AutodiscoveryAfter {
		return fmt.Errorf("escalation.unavailable_after must not be below escalation.autodiscovery_after")
	}

	// validate retention config
	if cfg.Retention.MaxFeedEntries < 0 {
		return fmt.Errorf("retention.max_feed_entries must be non-negative")
	}

	// validate http config
	if cfg.HTTP.Timeout < time.Second {
		return fmt.Errorf("http timeout must be at least 1 second")
	}

	return nil
}
