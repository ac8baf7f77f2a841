package testutils

import (
	"testing"

	"prayer-roster-backend/internal/database"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a migrated in-memory SQLite database closed at test cleanup
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Initialize(":memory:", &database.Options{LogLevel: logger.Silent})
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
