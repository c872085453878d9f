package helpers

import (
	"fmt"
	"testing"

	"gorm.io/gorm"

	"github.com/andrescamacho/craftchain-go/internal/infrastructure/database"
)

// NewTestDB opens a migrated in-memory store owned by t and closed on cleanup.
// Repository tests use it; the BDD suite shares SharedTestDB instead.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewTestConnection()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	return db
}

// SharedTestDB is the singleton database instance used across all integration tests
var SharedTestDB *gorm.DB

// InitializeSharedTestDB creates and migrates the shared test database
// Called once in TestMain before running any tests
func InitializeSharedTestDB() error {
	db, err := database.NewTestConnection()
	if err != nil {
		return fmt.Errorf("failed to open shared test database: %w", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate shared test database: %w", err)
	}

	SharedTestDB = db
	return nil
}

// TruncateAllTables clears all data from all tables
// Called before each scenario to ensure test isolation
func TruncateAllTables() error {
	if SharedTestDB == nil {
		return fmt.Errorf("shared test database not initialized")
	}

	tables := []string{
		"resolution_runs",
		"bookmark_groups",
	}

	for _, table := range tables {
		if err := SharedTestDB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}

	return nil
}

// CloseSharedTestDB closes the shared database connection
// Called in TestMain after all tests complete
func CloseSharedTestDB() error {
	if SharedTestDB == nil {
		return nil
	}

	return database.Close(SharedTestDB)
}
