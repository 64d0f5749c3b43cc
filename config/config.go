package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"hotel-frontend/utils"
)

// Config is everything the service reads from the environment. Loaded once at
// startup and passed down; no package-level state.
type Config struct {
	Port string

	// BackendURL is the base of the external reservation API, e.g.
	// https://<project>.supabase.co/functions/v1/make-server-aa71f191
	BackendURL string

	// SupabaseURL / SupabaseAnonKey identify the session provider. The anon
	// key doubles as the bearer fallback for unauthenticated API calls.
	SupabaseURL     string
	SupabaseAnonKey string

	CORSOrigins    []string
	RequestTimeout time.Duration
}

// Load resolves the configuration. The provider URL and anon key are
// required: without them neither sign-in nor the reservation API work.
func Load() (*Config, error) {
	supabaseURL := strings.TrimSpace(os.Getenv("SUPABASE_URL"))
	if supabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL environment variable is not set")
	}
	anonKey := strings.TrimSpace(os.Getenv("SUPABASE_ANON_KEY"))
	if anonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY environment variable is not set")
	}

	backendURL := strings.TrimSpace(os.Getenv("BACKEND_URL"))
	if backendURL == "" {
		backendURL = strings.TrimRight(supabaseURL, "/") + "/functions/v1/make-server-aa71f191"
	}

	timeout, err := time.ParseDuration(utils.EnvOrDefault("BACKEND_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKEND_TIMEOUT: %w", err)
	}

	return &Config{
		Port:            utils.EnvOrDefault("PORT", "8080"),
		BackendURL:      backendURL,
		SupabaseURL:     supabaseURL,
		SupabaseAnonKey: anonKey,
		CORSOrigins:     parseCorsOrigins(),
		RequestTimeout:  timeout,
	}, nil
}

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
