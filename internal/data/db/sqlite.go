package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
)

// NewSQLiteService opens a file-backed (or ":memory:") SQLite database. Used
// for local development without a Postgres instance.
func NewSQLiteService(logg *logger.Logger, path string) (*Service, error) {
	serviceLog := logg.With("service", "SQLiteService")
	if path == "" {
		path = "neurobridge-lms.db"
	}
	serviceLog.Info("Opening SQLite database...", "path", path)

	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}
	// A single connection keeps ":memory:" databases from splitting per conn.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	return &Service{db: db, log: serviceLog}, nil
}
