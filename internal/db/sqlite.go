package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/orderbridge-backend/internal/types"
)

// NewSQLite opens a sqlite database at the given path (":memory:" for an
// in-process throwaway) with the import schema migrated. Repo and service
// tests run on this instead of a live Postgres.
func NewSQLite(path string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite at %s: %w", path, err)
	}
	if err := gdb.AutoMigrate(
		&types.User{},
		&types.Order{},
		&types.OrderProduct{},
	); err != nil {
		return nil, fmt.Errorf("sqlite auto migration failed: %w", err)
	}
	return gdb, nil
}
