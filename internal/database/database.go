package database

import (
	"github.com/eugenezastrogin/sms-moneybot/internal/config"
	"github.com/eugenezastrogin/sms-moneybot/internal/model"
	"github.com/eugenezastrogin/sms-moneybot/pkg/sqlitedb"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := sqlitedb.NewConnection(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the three ledger tables if absent; safe to run on every
// startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Transaction{},
		&model.IgnoredCard{},
		&model.NotifySubscription{},
	)
}
