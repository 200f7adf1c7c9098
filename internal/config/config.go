package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StoreConfig selects the record store backend. The default "sqlite"
// backend keeps everything in a local file; "postgres" points at the
// remote database the local store stands in for.
type StoreConfig struct {
	Backend  string         `yaml:"backend"`
	DataDir  string         `yaml:"data_dir"`
	Database DatabaseConfig `yaml:"database"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix LIFTLOG_ and underscore-separated
// paths:
//
//	LIFTLOG_SERVER_HOST, LIFTLOG_SERVER_PORT,
//	LIFTLOG_STORE_BACKEND, LIFTLOG_STORE_DATA_DIR,
//	LIFTLOG_DB_HOST, LIFTLOG_DB_PORT, LIFTLOG_DB_NAME,
//	LIFTLOG_DB_USER, LIFTLOG_DB_PASSWORD, LIFTLOG_DB_SSLMODE
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTLOG_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("LIFTLOG_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LIFTLOG_STORE_BACKEND"); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv("LIFTLOG_STORE_DATA_DIR"); v != "" {
		cfg.Store.DataDir = v
	}
	if v := os.Getenv("LIFTLOG_DB_HOST"); v != "" {
		cfg.Store.Database.Host = v
	}
	if v := os.Getenv("LIFTLOG_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Store.Database.Port = port
		}
	}
	if v := os.Getenv("LIFTLOG_DB_NAME"); v != "" {
		cfg.Store.Database.Name = v
	}
	if v := os.Getenv("LIFTLOG_DB_USER"); v != "" {
		cfg.Store.Database.User = v
	}
	if v := os.Getenv("LIFTLOG_DB_PASSWORD"); v != "" {
		cfg.Store.Database.Password = v
	}
	if v := os.Getenv("LIFTLOG_DB_SSLMODE"); v != "" {
		cfg.Store.Database.SSLMode = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = "sqlite"
	}
	if cfg.Store.DataDir == "" {
		cfg.Store.DataDir = "data"
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	switch c.Store.Backend {
	case "sqlite":
	case "postgres":
		if c.Store.Database.Host == "" {
			return fmt.Errorf("store.database.host is required for postgres backend")
		}
		if c.Store.Database.Port == 0 {
			return fmt.Errorf("store.database.port is required for postgres backend")
		}
		if c.Store.Database.Name == "" {
			return fmt.Errorf("store.database.name is required for postgres backend")
		}
		if c.Store.Database.User == "" {
			return fmt.Errorf("store.database.user is required for postgres backend")
		}
	default:
		return fmt.Errorf("unknown store.backend %q", c.Store.Backend)
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	return nil
}
