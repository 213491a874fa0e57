package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ServiceConfig configuración del servicio resuelta desde el entorno
type ServiceConfig struct {
	Port                 string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	PrometheusEnabled    bool
	NotificationCapacity int
	LowStockThreshold    int
	FallbackCostRatio    float64
}

// Load arma la configuración desde variables de entorno con defaults
// Un .env local se carga si existe; en producción las variables vienen del entorno
func Load() ServiceConfig {
	_ = godotenv.Load()

	return ServiceConfig{
		Port:                 getEnv("PORT", "8080"),
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnv("DB_PORT", "5432"),
		DBUser:               getEnv("DB_USER", "postgres"),
		DBPassword:           getEnv("DB_PASSWORD", "postgres"),
		DBName:               getEnv("DB_NAME", "smartpos_db"),
		PrometheusEnabled:    getEnv("PROMETHEUS_ENABLED", "") == "true",
		NotificationCapacity: getEnvInt("NOTIFICATION_CAPACITY", 100),
		LowStockThreshold:    getEnvInt("LOW_STOCK_THRESHOLD", 5),
		FallbackCostRatio:    getEnvFloat("FALLBACK_COST_RATIO", 0),
	}
}

// ConnString arma el string de conexión a PostgreSQL
func (c ServiceConfig) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
