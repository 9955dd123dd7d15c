// Package config loads and validates application configuration from
// environment variables. Required variables and parse failures are
// collected and reported together so a misconfigured deployment fails
// with one complete message instead of dying on the first missing key.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DBConfig holds settings for the PostgreSQL connection pool.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	PoolSize int
}

// AuthConfig holds token-signing settings.
type AuthConfig struct {
	TokenSecret   string        // secret key for signing session tokens
	TokenDuration time.Duration // session token lifetime
}

// MediaConfig holds Cloudinary credentials. All three fields empty means
// media uploads are disabled.
type MediaConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Enabled reports whether media hosting credentials are configured.
func (m *MediaConfig) Enabled() bool {
	return m.CloudName != "" && m.APIKey != "" && m.APISecret != ""
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// AppConfig is the top-level configuration for the service.
type AppConfig struct {
	DB             *DBConfig
	Auth           *AuthConfig
	Media          *MediaConfig
	Server         *ServerConfig
	MigrationsPath string // migrations run at startup when non-empty
}

func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getOptionalEnvInt(key string, defaultValue int, errs *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

func getOptionalEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// LoadConfig reads environment variables into an AppConfig. It returns a
// single aggregated error naming every problem it found.
func LoadConfig() (*AppConfig, error) {
	var errs []string

	dbUser := getRequiredEnv("DB_USER", &errs)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errs)
	dbName := getRequiredEnv("DB_NAME", &errs)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errs)

	poolSize := getOptionalEnvInt("DB_POOL_SIZE", 10, &errs)
	if poolSize < 1 {
		errs = append(errs, fmt.Sprintf("DB_POOL_SIZE (%d) must be at least 1", poolSize))
		poolSize = 1
	}
	if poolSize > 100 {
		errs = append(errs, fmt.Sprintf("DB_POOL_SIZE (%d) is greater than maximum 100, clamping to 100", poolSize))
		poolSize = 100
	}

	tokenSecret := getRequiredEnv("TOKEN_SECRET", &errs)
	// Session tokens live 30 days, matching the cookie the login handler sets.
	tokenDuration := getOptionalEnvDuration("TOKEN_DURATION", 720*time.Hour, &errs)

	media := &MediaConfig{
		CloudName: getOptionalEnv("CLOUDINARY_CLOUD_NAME", ""),
		APIKey:    getOptionalEnv("CLOUDINARY_API_KEY", ""),
		APISecret: getOptionalEnv("CLOUDINARY_API_SECRET", ""),
	}

	serverPort := getOptionalEnv("PORT", "5000")

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return &AppConfig{
		DB: &DBConfig{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			PoolSize: poolSize,
		},
		Auth: &AuthConfig{
			TokenSecret:   tokenSecret,
			TokenDuration: tokenDuration,
		},
		Media:          media,
		Server:         &ServerConfig{Port: serverPort},
		MigrationsPath: getOptionalEnv("MIGRATIONS_PATH", ""),
	}, nil
}
