package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the limit applied to one method and path. A Path ending
// in "/" matches every path below it. Burst defaults to Limit; a zero Limit
// disables limiting.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// LoadConfig reads RATE_LIMIT_* variables, falling back to defaults on
// unset or unparsable values.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		IdleTimeout:     getEnvDuration("RATE_LIMIT_IDLE_TIMEOUT", time.Hour),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Credential endpoints: strictest limits
		{Path: "/v1/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/v1/auth/register", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
		{Path: "/v1/auth/guest", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/v1/users/me/password", Method: "PUT", Limit: 10, Window: time.Minute, Burst: 3},

		// Writes
		{Path: "/v1/survey/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/v1/rooms", Method: "POST", Limit: 30, Window: time.Minute, Burst: 10},
		{Path: "/v1/rooms/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/v1/rooms/", Method: "DELETE", Limit: 30, Window: time.Minute, Burst: 10},
		{Path: "/v1/organizations", Method: "POST", Limit: 30, Window: time.Minute, Burst: 10},
		{Path: "/v1/feedback", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/v1/feedback/", Method: "PATCH", Limit: 60, Window: time.Minute, Burst: 10},

		// Reads use the default limit; /health and /metrics are unlimited
	}
}

func envOr[T any](key string, def T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int { return envOr(key, def, strconv.Atoi) }

func getEnvBool(key string, def bool) bool { return envOr(key, def, strconv.ParseBool) }

func getEnvDuration(key string, def time.Duration) time.Duration {
	return envOr(key, def, time.ParseDuration)
}

// parseIPList splits a comma-separated address list into a set
func parseIPList(list string) map[string]bool {
	set := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			set[ip] = true
		}
	}
	return set
}
