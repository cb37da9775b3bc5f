// SPDX-License-Identifier: MIT

// Package config loads the server configuration from an optional .env file
// and PATHSEARCH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvGraph           = "PATHSEARCH_GRAPH"
	EnvAddr            = "PATHSEARCH_ADDR"
	EnvMaxExpansions   = "PATHSEARCH_MAX_EXPANSIONS"
	EnvLogLevel        = "PATHSEARCH_LOG_LEVEL"
	EnvCORSOrigins     = "PATHSEARCH_CORS_ORIGINS"
	EnvRenderWidth     = "PATHSEARCH_RENDER_WIDTH"
	EnvRenderHeight    = "PATHSEARCH_RENDER_HEIGHT"
	EnvShutdownTimeout = "PATHSEARCH_SHUTDOWN_TIMEOUT"
)

// ErrInvalidConfig wraps every parse or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the server settings.
type Config struct {
	GraphPath       string        `validate:"required"`
	Addr            string        `validate:"required"`
	MaxExpansions   int           `validate:"gte=0"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	CORSOrigins     []string      `validate:"min=1,dive,required"`
	RenderWidth     int           `validate:"gt=0"`
	RenderHeight    int           `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load reads the given .env files (".env" when none are named; a missing
// file is not an error), then the process environment, applies defaults
// and validates the result. Variables already set in the environment win
// over .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, f, err)
		}
	}

	var (
		cfg Config
		err error
	)
	cfg.GraphPath = getEnv(EnvGraph, "")
	cfg.Addr = getEnv(EnvAddr, ":8080")
	cfg.LogLevel = strings.ToLower(getEnv(EnvLogLevel, "info"))
	cfg.CORSOrigins = splitList(getEnv(EnvCORSOrigins, "*"))
	if cfg.MaxExpansions, err = getEnvInt(EnvMaxExpansions, 0); err != nil {
		return nil, err
	}
	if cfg.RenderWidth, err = getEnvInt(EnvRenderWidth, 960); err != nil {
		return nil, err
	}
	if cfg.RenderHeight, err = getEnvInt(EnvRenderHeight, 740); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getEnvDuration(EnvShutdownTimeout, 10*time.Second); err != nil {
		return nil, err
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate checks field rules and reports the first violation by variable name.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	fe := verrs[0]
	name := envNames[fe.StructField()]
	if fe.Tag() == "required" {
		return fmt.Errorf("%w: %s is required", ErrInvalidConfig, name)
	}

	return fmt.Errorf("%w: %s=%v fails %s %s", ErrInvalidConfig, name, fe.Value(), fe.Tag(), fe.Param())
}

var envNames = map[string]string{
	"GraphPath":       EnvGraph,
	"Addr":            EnvAddr,
	"MaxExpansions":   EnvMaxExpansions,
	"LogLevel":        EnvLogLevel,
	"CORSOrigins":     EnvCORSOrigins,
	"RenderWidth":     EnvRenderWidth,
	"RenderHeight":    EnvRenderHeight,
	"ShutdownTimeout": EnvShutdownTimeout,
}

// SlogLevel maps LogLevel onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a JSON logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: c.SlogLevel()}))
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v)
	}
	return n, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a duration", ErrInvalidConfig, key, v)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
