package services

import (
	"testing"

	"github.com/chrisshaungrayson-max/DMR-Jason-sub000/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite per test. TranslateError is
// on, same as production, so unique violations surface as
// gorm.ErrDuplicatedKey.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Goal{},
		&models.Measurement{},
		&models.DailyProgress{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := models.User{Email: "test@example.com", Password: "x", FullName: "Test User"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}
