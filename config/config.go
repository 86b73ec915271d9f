package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

const (
	DefaultDepth       = 4
	MaxEngineDepth     = 8 // upper bound of the UCI Depth option
	DefaultMaxDepth    = 5
	DefaultServerAddr  = ":8080"
	DefaultEngineName  = "Shrine"
	DefaultEngineOwner = "Shrine developers"
)

type Config struct {
	Logs   LogConfig
	Engine EngineConfig
	Server ServerConfig
}

type LogConfig struct {
	Style string // "console" for human-readable output, anything else is JSON
	Level string
}

type EngineConfig struct {
	Name   string
	Author string
	Depth  int
}

type ServerConfig struct {
	Addr     string
	MaxDepth int
}

// Load reads the configuration from the environment. Unset variables take
// their defaults; malformed numbers are reported as errors.
func Load() (*Config, error) {
	depth, err := intEnv("ENGINE_DEPTH", DefaultDepth)
	if err != nil {
		return nil, err
	}
	maxDepth, err := intEnv("SERVER_MAX_DEPTH", DefaultMaxDepth)
	if err != nil {
		return nil, err
	}
	if depth < 1 || depth > MaxEngineDepth {
		return nil, fmt.Errorf("ENGINE_DEPTH must be between 1 and %d, got %d", MaxEngineDepth, depth)
	}
	if maxDepth < 1 {
		return nil, fmt.Errorf("SERVER_MAX_DEPTH must be at least 1, got %d", maxDepth)
	}

	cfg := &Config{
		Logs: LogConfig{
			Style: os.Getenv("LOG_STYLE"),
			Level: stringEnv("LOG_LEVEL", "info"),
		},
		Engine: EngineConfig{
			Name:   stringEnv("ENGINE_NAME", DefaultEngineName),
			Author: stringEnv("ENGINE_AUTHOR", DefaultEngineOwner),
			Depth:  depth,
		},
		Server: ServerConfig{
			Addr:     stringEnv("SERVER_ADDR", DefaultServerAddr),
			MaxDepth: maxDepth,
		},
	}
	return cfg, nil
}

// Default returns the configuration Load produces with an empty environment.
func Default() *Config {
	return &Config{
		Logs:   LogConfig{Level: "info"},
		Engine: EngineConfig{Name: DefaultEngineName, Author: DefaultEngineOwner, Depth: DefaultDepth},
		Server: ServerConfig{Addr: DefaultServerAddr, MaxDepth: DefaultMaxDepth},
	}
}

// Logger builds a zerolog logger writing to w. An unknown level falls back
// to info.
func (c LogConfig) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil || c.Level == "" {
		level = zerolog.InfoLevel
	}
	if strings.EqualFold(c.Style, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func stringEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("converting %s: %w", key, err)
	}
	return n, nil
}
