package config

import "time"

const (
	envPort            = "PORT"
	envSeedEnabled     = "SEED_ENABLED"
	envShutdownTimeout = "SHUTDOWN_TIMEOUT"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort            = "4000"
	defaultSeedEnabled     = true
	defaultShutdownTimeout = 10 * Duration(time.Second)
	defaultCORSOrigin      = "*"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "schedule-api"
)
