// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. The environment alone, when no file is given.
//
// Environment variables always override values read from the file.
package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Environments accepted by Env.
const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity: "dev", "staging" or "prod".
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	HTTPServer HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	Host            string        `yaml:"host"             env:"HTTP_HOST"`
	Port            string        `yaml:"port"             env:"PORT"                  env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"HTTP_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"HTTP_WRITE_TIMEOUT"    env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"HTTP_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Addr is the TCP address the server listens on, e.g. ":8080".
func (h HTTPServer) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// Storage selects and configures the relational store.
type Storage struct {
	Driver   string         `yaml:"driver"   env:"STORAGE_DRIVER" env-default:"sqlite"`
	Path     string         `yaml:"path"     env:"STORAGE_PATH"   env-default:"storage/employees.db"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig holds the details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"     env:"DB_HOST"     env-default:"localhost"`
	Port     string `yaml:"port"     env:"DB_PORT"     env-default:"5432"`
	User     string `yaml:"user"     env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Dbname   string `yaml:"db_name"  env:"DB_NAME"`
}

// Load reads the configuration from the YAML file at path, or from the
// environment alone when path is empty, and validates it.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read config from environment: %w", err)
		}
	} else {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvDev, EnvStaging, EnvProd:
	default:
		return fmt.Errorf("invalid env %q: must be one of dev, staging, prod", c.Env)
	}

	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.Path == "" {
			return errors.New("storage.path is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Storage.Postgres.User == "" || c.Storage.Postgres.Dbname == "" {
			return errors.New("storage.postgres.user and storage.postgres.db_name are required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.HTTPServer.Port == "" {
		return errors.New("http_server.port is required")
	}

	return nil
}

// MustLoad resolves the config path (CONFIG_PATH wins over the --config
// flag value passed in as flagPath), loads the configuration and exits
// the process if anything is wrong. If this returns, the config is valid.
func MustLoad(flagPath string) *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = flagPath
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err.Error())
	}

	return cfg
}
