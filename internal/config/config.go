package config

import (
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/MaroIng01/portfolio/internal/apperr"
)

// Config holds everything the server, exporter and preview read from the
// environment.
type Config struct {
	Port          string
	GinMode       string
	AssetsDir     string
	DefaultLang   string
	ParticleFPS   int
	StreamMaxTime time.Duration
	LogFormat     string
}

const (
	defaultPort      = "8080"
	defaultAssetsDir = "./public"
	defaultLang      = "en"
	defaultFPS       = 30
	defaultStreamMax = 600
)

// Load reads the process environment, including a .env file when present.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any env-like lookup function.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:        get("PORT", defaultPort),
		GinMode:     get("GIN_MODE", ""),
		AssetsDir:   get("ASSETS_DIR", defaultAssetsDir),
		DefaultLang: get("DEFAULT_LANG", defaultLang),
		LogFormat:   get("LOG_FORMAT", ""),
	}

	fps, err := positiveInt("PARTICLE_FPS", get("PARTICLE_FPS", strconv.Itoa(defaultFPS)))
	if err != nil {
		return Config{}, err
	}
	if fps > 120 {
		return Config{}, apperr.New("config.load", apperr.KindInvalidConfig, "PARTICLE_FPS=%d exceeds 120", fps)
	}
	cfg.ParticleFPS = fps

	secs, err := positiveInt("STREAM_MAX_SECONDS", get("STREAM_MAX_SECONDS", strconv.Itoa(defaultStreamMax)))
	if err != nil {
		return Config{}, err
	}
	cfg.StreamMaxTime = time.Duration(secs) * time.Second

	switch cfg.GinMode {
	case "", "debug", "release", "test":
	default:
		return Config{}, apperr.New("config.load", apperr.KindInvalidConfig, "GIN_MODE must be debug, release or test, got %q", cfg.GinMode)
	}

	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return Config{}, apperr.New("config.load", apperr.KindInvalidConfig, "LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func positiveInt(key, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &apperr.OpError{Op: "config.load", Kind: apperr.KindInvalidConfig, Path: key, Err: err}
	}
	if n <= 0 {
		return 0, apperr.New("config.load", apperr.KindInvalidConfig, "%s must be positive, got %d", key, n)
	}
	return n, nil
}
