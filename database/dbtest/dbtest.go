// Package dbtest opens throwaway sqlite databases for package tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"cropcare/database"
)

// Open returns a migrated database stored under t.TempDir.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "test.db"), "")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
