// Package testutil provides a migrated in-memory database and a fully wired
// application for tests.
package testutil

import (
	"context"
	"testing"
	"time"

	migration "diet-diary/cmd/database/migrate"
	"diet-diary/entities"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory sqlite database with foreign keys
// enforced and every table migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every connection to :memory: is a separate database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Migrate(db))
	return db
}

func Date(t *testing.T, s string) datatypes.Date {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return datatypes.Date(d)
}

func Float(f float64) *float64 { return &f }

// Create inserts each row, failing the test on error.
func Create(t *testing.T, db *gorm.DB, rows ...any) {
	t.Helper()
	for _, row := range rows {
		require.NoError(t, db.WithContext(context.Background()).Create(row).Error)
	}
}

// Count returns the number of rows of model.
func Count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

// NewUser inserts a user with an empty profile. The password is stored as
// given; tests that log in should go through the user service instead.
func NewUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	t.Helper()
	u := &entities.User{Username: username, Password: "x", Email: username + "@example.com"}
	Create(t, db, u)
	Create(t, db, &entities.Profile{UserID: u.ID})
	return u
}
