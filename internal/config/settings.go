package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Defaults used when neither the settings file nor flags provide a value.
const (
	DefaultStorage  = "file"
	DefaultLayout   = "component"
	DefaultUnit     = "rem"
	DefaultLogLevel = "info"
	DefaultListen   = "127.0.0.1:8080"
	dirName         = ".designvars"
	fileName        = "config.yaml"
)

// Settings is the on-disk configuration for designvars.
type Settings struct {
	Storage     string `yaml:"storage" validate:"oneof=file sqlite memory"`
	DataDir     string `yaml:"data_dir" validate:"required"`
	Layout      string `yaml:"layout" validate:"oneof=component script"`
	DefaultUnit string `yaml:"default_unit" validate:"fontunit"`
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn error"`
	Listen      string `yaml:"listen" validate:"hostname_port"`
}

// Overrides carries flag values; empty strings leave the loaded value alone.
type Overrides struct {
	Storage  string
	DataDir  string
	Layout   string
	LogLevel string
	Listen   string
}

// Defaults returns settings rooted at ~/.designvars.
func Defaults() (Settings, error) {
	dir, err := DefaultDir()
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Storage:     DefaultStorage,
		DataDir:     dir,
		Layout:      DefaultLayout,
		DefaultUnit: DefaultUnit,
		LogLevel:    DefaultLogLevel,
		Listen:      DefaultListen,
	}, nil
}

// DefaultDir returns ~/.designvars.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath returns ~/.designvars/config.yaml.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Apply returns s with every non-empty override copied in.
func (s Settings) Apply(o Overrides) Settings {
	if v := strings.TrimSpace(o.Storage); v != "" {
		s.Storage = v
	}
	if v := strings.TrimSpace(o.DataDir); v != "" {
		s.DataDir = expandHome(v)
	}
	if v := strings.TrimSpace(o.Layout); v != "" {
		s.Layout = v
	}
	if v := strings.TrimSpace(o.LogLevel); v != "" {
		s.LogLevel = v
	}
	if v := strings.TrimSpace(o.Listen); v != "" {
		s.Listen = v
	}
	return s
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
