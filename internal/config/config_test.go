package config

import (
	"testing"
	"time"

	"github.com/MaroIng01/portfolio/internal/apperr"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Addr())
	}
	if cfg.DefaultLang != "en" || cfg.AssetsDir != "./public" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ParticleFPS != 30 || cfg.StreamMaxTime != 10*time.Minute {
		t.Fatalf("unexpected animation defaults: %+v", cfg)
	}
}

func TestOverrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"PORT":               "9000",
		"DEFAULT_LANG":       "fr",
		"PARTICLE_FPS":       "60",
		"STREAM_MAX_SECONDS": "5",
		"LOG_FORMAT":         "json",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" || cfg.DefaultLang != "fr" || cfg.ParticleFPS != 60 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.StreamMaxTime != 5*time.Second {
		t.Fatalf("expected 5s, got %s", cfg.StreamMaxTime)
	}
}

func TestInvalidValues(t *testing.T) {
	cases := []map[string]string{
		{"PARTICLE_FPS": "fast"},
		{"PARTICLE_FPS": "0"},
		{"PARTICLE_FPS": "500"},
		{"STREAM_MAX_SECONDS": "-3"},
		{"LOG_FORMAT": "xml"},
		{"GIN_MODE": "production"},
	}
	for _, env := range cases {
		_, err := FromLookup(lookupFrom(env))
		if !apperr.IsKind(err, apperr.KindInvalidConfig) {
			t.Fatalf("env %v: expected invalid_config, got %v", env, err)
		}
	}
}
