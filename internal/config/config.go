package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	APIAddr             string
	LLMProviders        string
	GeminiModel         string
	ModelTimeoutSeconds int
	MaxUploadMB         int
	CORSOrigins         []string
	LogMode             string
	PostgresURL         string
	ServiceName         string
}

var defaultCORSOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}

func Load() Config {
	return Config{
		APIAddr:             getenv("LEGALCOPILOT_API_ADDR", ":5000"),
		LLMProviders:        getenv("LEGALCOPILOT_LLM_PROVIDERS", "gemini"),
		GeminiModel:         getenv("LEGALCOPILOT_GEMINI_MODEL", "gemini-1.5-flash"),
		ModelTimeoutSeconds: getenvInt("LEGALCOPILOT_MODEL_TIMEOUT_SECONDS", 90),
		MaxUploadMB:         getenvInt("LEGALCOPILOT_MAX_UPLOAD_MB", 32),
		CORSOrigins:         getenvList("LEGALCOPILOT_CORS_ORIGINS", defaultCORSOrigins),
		LogMode:             getenv("LEGALCOPILOT_LOG_MODE", "dev"),
		PostgresURL:         getenv("LEGALCOPILOT_POSTGRES_URL", ""),
		ServiceName:         getenv("LEGALCOPILOT_SERVICE_NAME", "legalcopilot"),
	}
}

// ModelTimeout bounds a single model call. Zero disables the bound.
func (c Config) ModelTimeout() time.Duration {
	if c.ModelTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.ModelTimeoutSeconds) * time.Second
}

func (c Config) MaxUploadBytes() int64 {
	mb := c.MaxUploadMB
	if mb <= 0 {
		mb = 32
	}
	return int64(mb) << 20
}

func getenv(k, fallback string) string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvList(k string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return append([]string(nil), fallback...)
	}
	out := make([]string, 0, 4)
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), fallback...)
	}
	return out
}
