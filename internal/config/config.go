// Package config loads and saves the flat dispatch configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Tie-break policies for ambiguous name resolution.
const (
	TieBreakFirst = "first"
	TieBreakLast  = "last"
)

// Config represents the flat dispatch configuration.
type Config struct {
	Version  string `json:"version"`
	DBPath   string `json:"db_path,omitempty"`   // defaults to ~/.dispatch/dispatch.db
	LogLevel string `json:"log_level,omitempty"` // DEBUG, INFO, WARN, ERROR

	// Name resolution tuning. Zero values fall back to the built-in
	// thresholds (60 composite, 70/80 ratio cutoffs).
	ResolveThreshold     float64 `json:"resolve_threshold,omitempty"`
	PersonnelRatioCutoff int     `json:"personnel_ratio_cutoff,omitempty"`
	VehicleRatioCutoff   int     `json:"vehicle_ratio_cutoff,omitempty"`
	TieBreak             string  `json:"tie_break,omitempty"` // "first" or "last"
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version:  "1.0",
		LogLevel: "INFO",
		TieBreak: TieBreakFirst,
	}
}

// LoadConfig reads .dispatch/config.json from the specified directory.
// Resolution order: dir only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".dispatch", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads the config from dir, falling back to Default when
// the file does not exist. A present but malformed file is still an error.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	dispatchDir := filepath.Join(dir, ".dispatch")
	if err := os.MkdirAll(dispatchDir, 0755); err != nil {
		return fmt.Errorf("failed to create .dispatch dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dispatchDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
