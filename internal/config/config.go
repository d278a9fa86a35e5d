package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

const (
	DefaultDebug = "False"
	DefaultPort  = 8000
	DefaultHost  = "0.0.0.0"
)

// Config holds the process settings read once from the environment at startup.
type Config struct {
	// Debug is true when DEBUG equals "true" in any letter case.
	Debug bool
	// DebugRaw is the DEBUG value as supplied, echoed back by /api/info.
	DebugRaw string
	Port     int
	Host     string
}

// Load builds a Config from the given lookup function, normally os.Getenv.
// Unset or empty variables fall back to their defaults.
func Load(getenv func(string) string) (Config, error) {
	cfg := Config{
		DebugRaw: DefaultDebug,
		Port:     DefaultPort,
		Host:     DefaultHost,
	}

	if v := getenv("DEBUG"); v != "" {
		cfg.DebugRaw = v
	}
	cfg.Debug = strings.ToLower(cfg.DebugRaw) == "true"

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("parsing PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := getenv("HOST"); v != "" {
		cfg.Host = v
	}

	return cfg, nil
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
