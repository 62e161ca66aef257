package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/lk16/flippy/minimax/internal/search"
)

const (
	DefaultMoveLogFile = "movesLog.txt"
	DefaultHistoryFile = ".flippy_history"
)

// GetEnv returns the value of an environment variable, or an empty string if it is not set.
type GetEnv func(key string) string

// ServerConfig holds all configuration values of the analysis server.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool
	MaxDepth          int
}

// PlayConfig holds the configuration of the terminal game.
type PlayConfig struct {
	Search      search.Config
	MoveLogFile string
	HistoryFile string
}

// LoadServerConfig loads the server configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	cfg, err := ParseServerConfig(os.Getenv)
	if err != nil {
		slog.Error("Invalid server configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

// ParseServerConfig builds a server configuration using getEnv.
func ParseServerConfig(getEnv GetEnv) (*ServerConfig, error) {
	cfg := &ServerConfig{
		ServerHost:        getEnvDefault(getEnv, "FLIPPY_SERVER_HOST", "localhost"),
		ServerPort:        getEnvDefault(getEnv, "FLIPPY_SERVER_PORT", "3000"),
		RedisURL:          getEnv("FLIPPY_REDIS_URL"),
		BasicAuthUsername: getEnv("FLIPPY_SERVER_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnv("FLIPPY_SERVER_BASIC_AUTH_PASS"),
		Token:             getEnv("FLIPPY_SERVER_TOKEN"),
	}

	if cfg.Token == "" {
		return nil, fmt.Errorf("environment variable %s is not set", "FLIPPY_SERVER_TOKEN")
	}

	var err error
	if cfg.Prefork, err = getEnvBool(getEnv, "FLIPPY_SERVER_PREFORK", false); err != nil {
		return nil, err
	}

	if cfg.MaxDepth, err = getEnvInt(getEnv, "FLIPPY_MAX_DEPTH", search.MaxDepth); err != nil {
		return nil, err
	}

	if cfg.MaxDepth < search.MinDepth || cfg.MaxDepth > search.MaxDepth {
		return nil, fmt.Errorf("FLIPPY_MAX_DEPTH must be in range [%d-%d], got %d", search.MinDepth, search.MaxDepth, cfg.MaxDepth)
	}

	return cfg, nil
}

// LoadPlayConfig loads the terminal game configuration from environment variables.
func LoadPlayConfig() *PlayConfig {
	cfg, err := ParsePlayConfig(os.Getenv)
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

// ParsePlayConfig builds a terminal game configuration using getEnv.
func ParsePlayConfig(getEnv GetEnv) (*PlayConfig, error) {
	searchCfg, err := ParseSearchConfig(getEnv)
	if err != nil {
		return nil, err
	}

	return &PlayConfig{
		Search:      searchCfg,
		MoveLogFile: getEnvDefault(getEnv, "FLIPPY_MOVE_LOG", DefaultMoveLogFile),
		HistoryFile: getEnvDefault(getEnv, "FLIPPY_HISTORY_FILE", DefaultHistoryFile),
	}, nil
}

// ParseSearchConfig builds the default search configuration using getEnv.
func ParseSearchConfig(getEnv GetEnv) (search.Config, error) {
	cfg := search.DefaultConfig()

	var err error
	if cfg.Depth, err = getEnvInt(getEnv, "FLIPPY_SEARCH_DEPTH", cfg.Depth); err != nil {
		return search.Config{}, err
	}

	if cfg.Pruning, err = getEnvBool(getEnv, "FLIPPY_SEARCH_PRUNING", cfg.Pruning); err != nil {
		return search.Config{}, err
	}

	if cfg.Debug, err = getEnvBool(getEnv, "FLIPPY_SEARCH_DEBUG", cfg.Debug); err != nil {
		return search.Config{}, err
	}

	if err = cfg.Validate(); err != nil {
		return search.Config{}, fmt.Errorf("invalid FLIPPY_SEARCH_DEPTH: %w", err)
	}

	return cfg, nil
}

func getEnvDefault(getEnv GetEnv, key, fallback string) string {
	if value := getEnv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(getEnv GetEnv, key string, fallback bool) (bool, error) {
	value := getEnv(key)
	if value == "" {
		return fallback, nil
	}

	if value != "true" && value != "false" {
		return false, fmt.Errorf("environment variable %s must be \"true\" or \"false\", got %q", key, value)
	}

	return value == "true", nil
}

func getEnvInt(getEnv GetEnv, key string, fallback int) (int, error) {
	value := getEnv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}

	return parsed, nil
}
