// Package config carga la configuración del proceso desde variables de
// entorno, con un .env opcional para desarrollo.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string // puerto HTTP
	DBDSN     string // DSN de Postgres; vacío = repos in-memory (modo dev)
	LogLevel  string
	LogFormat string
	AppName   string
}

// Load lee el entorno. Todo tiene default: sin configuración alguna el
// servicio arranca en :8080 contra los repos in-memory.
func Load() Config {
	// .env es opcional; si no existe se ignora el error
	_ = godotenv.Load()

	return Config{
		Port:      getenv("PORT", "8080"),
		DBDSN:     os.Getenv("DB_DSN"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "text"),
		AppName:   getenv("APP_NAME", "doggohub"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
