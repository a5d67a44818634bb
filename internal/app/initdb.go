package app

import (
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/invenkit/inventario/config"
)

func getDatabase(cfg config.DBConfig) *gorm.DB {
	if cfg.URL == "" {
		zap.S().Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: dsnWithSSLMode(cfg.URL, cfg.SSLMode),
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		zap.S().Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		zap.S().Fatalf("failed to access database pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db
}

// dsnWithSSLMode appends the configured sslmode when the DSN does not
// already pick one. Managed-database URLs usually omit it; the default
// "require" encrypts without verifying the server certificate.
func dsnWithSSLMode(dsn, sslmode string) string {
	if sslmode == "" || strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return dsn + sep + "sslmode=" + sslmode
	}
	// keyword/value DSN form
	return dsn + " sslmode=" + sslmode
}
