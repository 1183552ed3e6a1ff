package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Transport modes.
const (
	ModeStdio = "stdio"
	ModeHTTP  = "http"
)

// Config defines server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Session SessionConfig `yaml:"session"`
	Archive ArchiveConfig `yaml:"archive"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Name string `yaml:"name"`
	Mode string `yaml:"mode"`
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type SessionConfig struct {
	// SweepMaxAgeHours is the default max age for cleanup_sessions when the
	// caller does not supply one.
	SweepMaxAgeHours int `yaml:"sweep_max_age_hours"`
}

type ArchiveConfig struct {
	// Path to the SQLite archive file. Empty disables archiving.
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment
// variables. Environment variables win over file values.
func Load() (Config, error) {
	// Missing .env files are fine.
	_ = godotenv.Load()

	cfg := Config{
		Server: ServerConfig{
			Name: "cbt-agent-helper",
			Mode: ModeStdio,
			Host: "0.0.0.0",
			Port: 8080,
		},
		Session: SessionConfig{
			SweepMaxAgeHours: 24,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("CBT_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if name := os.Getenv("CBT_SERVER_NAME"); name != "" {
		cfg.Server.Name = name
	}
	if mode := os.Getenv("CBT_SERVER_MODE"); mode != "" {
		cfg.Server.Mode = mode
	}
	if host := os.Getenv("CBT_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("CBT_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CBT_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if hoursStr := os.Getenv("CBT_SWEEP_MAX_AGE_HOURS"); hoursStr != "" {
		hours, err := strconv.Atoi(hoursStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CBT_SWEEP_MAX_AGE_HOURS: %w", err)
		}
		cfg.Session.SweepMaxAgeHours = hours
	}
	if archivePath := os.Getenv("CBT_ARCHIVE_PATH"); archivePath != "" {
		cfg.Archive.Path = archivePath
	}
	if level := os.Getenv("CBT_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Server.Mode != ModeStdio && cfg.Server.Mode != ModeHTTP {
		return Config{}, fmt.Errorf("invalid server mode %q: must be %q or %q", cfg.Server.Mode, ModeStdio, ModeHTTP)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
