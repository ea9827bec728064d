// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides environment-based configuration for startmenu.
package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	LogLevel        string        // debug, info, warn, error (default: info)
	LogFormat       string        // text, json (default: text)
	LogFile         string        // log file path (empty means stderr)
	ConfigDir       string        // menu/header/theme directory (empty means XDG default)
	MenuPath        string        // explicit menu.json path (empty means ConfigDir/menu.json)
	StatusInterval  time.Duration // status bar repaint cadence (default: 3s)
	WeatherInterval time.Duration // weather refetch cadence (default: 15m)
	Weather         string        // on, off (default: on)
	WeatherURL      string        // default: https://wttr.in/?format=%c+%t
	Shell           string        // shell for dispatching entries (empty means $SHELL, then sh)
	Program         string        // external menu program to exec instead of the built-in UI
}

// validLogLevels contains the allowed log level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// validLogFormats contains the allowed log format values.
var validLogFormats = []string{"text", "json"}

// validWeatherModes contains the allowed weather switch values.
var validWeatherModes = []string{"on", "off"}

// DefaultWeatherURL is wttr.in's one-line format: condition glyph plus temperature.
const DefaultWeatherURL = "https://wttr.in/?format=%c+%t"

// Load reads configuration from environment variables, with .env file as optional override.
// The .env file is loaded if present but errors are ignored if it doesn't exist.
func Load() (*Config, error) {
	// Try to load .env file (ignore if not found)
	_ = godotenv.Load()

	// Read from env vars with defaults
	cfg := &Config{
		LogLevel:        getEnv("STARTMENU_LOG_LEVEL", "info"),
		LogFormat:       getEnv("STARTMENU_LOG_FORMAT", "text"),
		LogFile:         getEnv("STARTMENU_LOG_FILE", ""),
		ConfigDir:       getEnv("STARTMENU_CONFIG_DIR", ""),
		MenuPath:        getEnv("STARTMENU_MENU", ""),
		StatusInterval:  getDurationEnv("STARTMENU_STATUS_INTERVAL", 3*time.Second),
		WeatherInterval: getDurationEnv("STARTMENU_WEATHER_INTERVAL", 15*time.Minute),
		Weather:         getEnv("STARTMENU_WEATHER", "on"),
		WeatherURL:      getEnv("STARTMENU_WEATHER_URL", DefaultWeatherURL),
		Shell:           getEnv("STARTMENU_SHELL", ""),
		Program:         getEnv("STARTMENU_PROGRAM", ""),
	}

	// Validate log level
	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid STARTMENU_LOG_LEVEL %q: must be one of %v", cfg.LogLevel, validLogLevels)
	}

	// Validate log format
	if !slices.Contains(validLogFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid STARTMENU_LOG_FORMAT %q: must be one of %v", cfg.LogFormat, validLogFormats)
	}

	// Validate weather switch
	if !slices.Contains(validWeatherModes, cfg.Weather) {
		return nil, fmt.Errorf("invalid STARTMENU_WEATHER %q: must be one of %v", cfg.Weather, validWeatherModes)
	}

	if cfg.StatusInterval <= 0 {
		return nil, fmt.Errorf("invalid STARTMENU_STATUS_INTERVAL: must be positive")
	}

	return cfg, nil
}

// WeatherEnabled reports whether the status bar should fetch weather at all.
func (c *Config) WeatherEnabled() bool {
	return c.Weather == "on"
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv retrieves a duration environment variable or returns a default value.
// If the value cannot be parsed as a duration, the default is returned.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
