package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// AuthConfig agrupa la configuración de emisión/verificación de tokens.
// La clave de firma se carga una sola vez al arrancar y es de solo lectura.
type AuthConfig struct {
	JWTKey        string
	TokenDuration time.Duration
}

type DBConfig struct {
	URL string
}

type UploadsConfig struct {
	Dir string
}

type ServerConfig struct {
	Port string
}

type AppConfig struct {
	Server  ServerConfig
	Auth    AuthConfig
	DB      DBConfig
	Uploads UploadsConfig
}

func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

func getOptionalEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return value
	}
	return defaultValue
}

func getOptionalEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valueStr) == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration string, got '%s'", key, valueStr))
		return defaultValue
	}
	return d
}

// Load lee y valida la configuración desde variables de entorno.
// Junta todos los errores antes de reportar, para no fallar de a uno.
func Load() (*AppConfig, error) {
	var errs []string

	jwtKey := getRequiredEnv("JWT_KEY", &errs)
	dbURL := getRequiredEnv("DATABASE_URL", &errs)
	tokenDuration := getOptionalEnvDuration("TOKEN_DURATION", time.Hour, &errs)

	cfg := &AppConfig{
		Server: ServerConfig{
			Port: getOptionalEnv("PORT", "3000"),
		},
		Auth: AuthConfig{
			JWTKey:        jwtKey,
			TokenDuration: tokenDuration,
		},
		DB: DBConfig{
			URL: dbURL,
		},
		Uploads: UploadsConfig{
			Dir: getOptionalEnv("UPLOADS_DIR", "photos"),
		},
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}
	return cfg, nil
}
