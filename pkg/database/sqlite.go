package database

import (
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqliteParams makes every transaction take the write lock up front and
// waits instead of failing when another process holds it.
const sqliteParams = "_txlock=immediate&_busy_timeout=5000&_foreign_keys=on"

// NewSQLiteDB opens the till's local database. path may be ":memory:".
// The pool is limited to a single connection: SQLite serializes writers anyway,
// and an in-memory database only lives as long as its connection.
func NewSQLiteDB(path string, debug bool) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path cannot be empty")
	}

	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&" + sqliteParams
	} else {
		dsn += "?" + sqliteParams
	}

	logLevel := logger.Silent
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	slog.Info("Opened SQLite database", slog.String("path", path))
	return db, nil
}

// CloseSQLiteDB closes the underlying connection pool.
func CloseSQLiteDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
		slog.Info("SQLite database closed")
	}
}
