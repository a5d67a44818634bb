package config

import (
	"os"
	"time"

	"github.com/spf13/cast"
)

// WebConfig holds HTTP listener settings.
type WebConfig struct {
	Host string
	Port int
}

// DBConfig holds PostgreSQL connection settings. The DSN comes from the
// environment; pool bounds are applied on the underlying sql.DB.
type DBConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
	// SSLMode "require" encrypts the connection without verifying the
	// server certificate, matching the deployment this service targets
	// (managed databases with self-signed chains). Set "verify-full" to
	// verify. Applied only when the DSN carries no sslmode of its own.
	SSLMode string
}

// LoggerConfig holds zap logger settings.
type LoggerConfig struct {
	Mode       string // "production" or "development"
	FileEnable bool
	Filename   string
}

type AppConfig struct {
	Web      WebConfig
	Database DBConfig
	Logger   LoggerConfig
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return cast.ToInt(v)
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return cast.ToBool(v)
}

// LoadConfig collects configuration from the process environment.
// PORT and DATABASE_URL keep the names the service has always used;
// everything else is namespaced under INVENTARIO_.
func LoadConfig() *AppConfig {
	return &AppConfig{
		Web: WebConfig{
			Host: envString("INVENTARIO_WEB_HOST", "0.0.0.0"),
			Port: envInt("PORT", 3000),
		},
		Database: DBConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    envInt("INVENTARIO_DB_MAX_OPEN_CONNS", 50),
			MaxIdleConns:    envInt("INVENTARIO_DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: time.Duration(envInt("INVENTARIO_DB_CONN_MAX_LIFETIME", 300)) * time.Second,
			QueryTimeout:    time.Duration(envInt("INVENTARIO_DB_QUERY_TIMEOUT", 10)) * time.Second,
			SSLMode:         envString("INVENTARIO_DB_SSLMODE", "require"),
		},
		Logger: LoggerConfig{
			Mode:       envString("INVENTARIO_LOGGER_MODE", "production"),
			FileEnable: envBool("INVENTARIO_LOGGER_FILE_ENABLE", false),
			Filename:   envString("INVENTARIO_LOGGER_FILENAME", "inventario.log"),
		},
	}
}
