package database

import (
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection initializes the local admin database. Only staff
// accounts, sessions and the audit trail live here; request records
// stay on the platform core.
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.AuditLog{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
