// Package config resolves the server configuration from defaults, an
// optional YAML file, and the environment.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the server needs at startup.
type Config struct {
	Talosctl TalosctlConfig `yaml:"talosctl"`
	Log      LogConfig      `yaml:"log"`
	Audit    AuditConfig    `yaml:"audit"`
}

// TalosctlConfig locates the talosctl binary and its client config file.
type TalosctlConfig struct {
	Path        string `yaml:"path"`
	Talosconfig string `yaml:"talosconfig"`
}

// LogConfig controls the diagnostic logger. Logs go to stderr by
// default; stdout carries protocol frames only.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// AuditConfig enables the SQLite invocation log when Path is set.
type AuditConfig struct {
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Talosctl: TalosctlConfig{Path: "talosctl"},
		Log:      LogConfig{Level: "info"},
	}
}

// Load builds the effective configuration: defaults, then the optional
// YAML file at path, then the TALOSCONFIG environment variable for any
// talosconfig the file did not set. Flags are applied by the caller on
// top of the result, so the overall order is flag > file > env.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if cfg.Talosctl.Talosconfig == "" {
		cfg.Talosctl.Talosconfig = os.Getenv("TALOSCONFIG")
	}
	if cfg.Talosctl.Path == "" {
		cfg.Talosctl.Path = "talosctl"
	}
	return cfg, nil
}
