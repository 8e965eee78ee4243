package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if !cfg.SeedEnabled {
		t.Fatalf("expected seeding enabled by default")
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout %s, got %s", defaultShutdownTimeout, cfg.ShutdownTimeout)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"*"}) {
		t.Fatalf("expected wildcard cors origin by default, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected default service name %s, got %s", defaultServiceName, cfg.Metrics.ServiceName)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envSeedEnabled, "false")
	t.Setenv(envShutdownTimeout, "3s")
	t.Setenv(envCORSOrigins, "https://a.example, https://b.example,")
	t.Setenv(envMetricsOn, "0")
	t.Setenv(envOtelEndpoint, "collector:4318")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.SeedEnabled {
		t.Fatalf("expected seeding disabled")
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("expected shutdown timeout 3s, got %s", cfg.ShutdownTimeout)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Fatalf("expected origins %v, got %v", want, cfg.CORS.AllowedOrigins)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
	if cfg.Metrics.OtlpEndpoint != "collector:4318" {
		t.Fatalf("expected otlp endpoint override, got %s", cfg.Metrics.OtlpEndpoint)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envShutdownTimeout, "not-a-duration")

	cfg := Load()

	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout on invalid value, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envShutdownTimeout, "0s")

	cfg := Load()

	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout on non-positive value, got %s", cfg.ShutdownTimeout)
	}
}

func TestListEnvOnlySeparatorsFallsBack(t *testing.T) {
	t.Setenv(envCORSOrigins, " , ,")

	if got := listEnvOrDefault(envCORSOrigins, []string{"x"}); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("expected default for separator-only value, got %v", got)
	}
}
