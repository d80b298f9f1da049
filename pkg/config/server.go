package config

import "strconv"

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port        int
	Environment string
	LogLevel    string
	BaseURL     string
	CORSOrigins []string
	BodyLimitMB int
}

// ListenAddr is the address handed to the fiber listener.
func (sc ServerConfig) ListenAddr() string {
	return ":" + strconv.Itoa(sc.Port)
}

// BodyLimitBytes converts the configured megabyte cap for fiber, which
// takes bytes.
func (sc ServerConfig) BodyLimitBytes() int {
	return sc.BodyLimitMB * 1024 * 1024
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:        getEnvInt("SERVER_PORT", 8080),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		CORSOrigins: getEnvStringSlice("CORS_ORIGINS", []string{"http://localhost:3000"}),
		BodyLimitMB: getEnvInt("BODY_LIMIT_MB", 10),
	}
}
