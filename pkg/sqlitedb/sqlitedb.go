package sqlitedb

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type Config struct {
	Path string `mapstructure:"path"`
}

// NewConnection opens the single-file SQLite store behind a gorm handle.
// Writers queue on a single connection so concurrent handlers serialize at
// the store instead of failing on SQLITE_BUSY.
func NewConnection(cfg Config, logger *zap.Logger) (*gorm.DB, error) {
	gl := gormLogger.New(&zapWriter{logger: logger},
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		})

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gl,
	})
	if err != nil {
		logger.Error("Failed to open database", zap.Error(err), zap.String("path", cfg.Path))
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get underlying DB", zap.Error(err))
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		logger.Error("Database ping failed", zap.Error(err))
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	logger.Info("Successfully opened SQLite database", zap.String("path", cfg.Path))

	return db, nil
}

type zapWriter struct {
	logger *zap.Logger
}

func (z *zapWriter) Printf(format string, args ...interface{}) {
	z.logger.Info(fmt.Sprintf(format, args...))
}
