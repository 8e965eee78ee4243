package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	SeedEnabled     bool
	ShutdownTimeout Duration
	CORS            CORSConfig
	Metrics         MetricsConfig
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		SeedEnabled:     boolEnvOrDefault(envSeedEnabled, defaultSeedEnabled),
		ShutdownTimeout: durationEnvOrDefault(envShutdownTimeout, defaultShutdownTimeout),
		CORS: CORSConfig{
			AllowedOrigins: listEnvOrDefault(envCORSOrigins, []string{defaultCORSOrigin}),
		},
		Metrics: loadMetrics(),
	}
}
