package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/oastsgen/emitter"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxInputSize caps inline content and fetched documents, in bytes.
	MaxInputSize int64
	// Runtime is the runtime style used when a call does not name one.
	Runtime emitter.Runtime
	// Concurrency is the number of routes extracted in parallel.
	Concurrency int
	// FetchTimeout bounds URL fetches.
	FetchTimeout time.Duration
	// AllowPrivateIPs disables the private address check on URL fetches.
	AllowPrivateIPs bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASTSGEN_MCP_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInputSize:    int64(envInt("OASTSGEN_MCP_MAX_INPUT_SIZE", 10*1024*1024)),
		Runtime:         envRuntime("OASTSGEN_MCP_RUNTIME", emitter.RuntimeGlobal),
		Concurrency:     envInt("OASTSGEN_MCP_CONCURRENCY", 1),
		FetchTimeout:    envDuration("OASTSGEN_MCP_FETCH_TIMEOUT", 30*time.Second),
		AllowPrivateIPs: envBool("OASTSGEN_MCP_ALLOW_PRIVATE_IPS", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}

func envRuntime(key string, fallback emitter.Runtime) emitter.Runtime {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	r, err := emitter.ParseRuntime(v)
	if err != nil {
		slog.Warn("invalid runtime env var, using default", "key", key, "value", v, "default", fallback.String()) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return r
}
