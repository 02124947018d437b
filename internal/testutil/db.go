// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-schedule/internal/db"
	"github.com/BruksfildServices01/barber-schedule/internal/models"
)

// NewDB opens a migrated in-memory SQLite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Connect("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return gdb
}

// SeedBarber creates a user and its barber row; firstName is the provider
// display name.
func SeedBarber(t *testing.T, gdb *gorm.DB, firstName string) *models.Barber {
	t.Helper()

	user := models.User{
		Username:     firstName + ".user",
		FirstName:    firstName,
		LastName:     "Barbeiro",
		PasswordHash: "x",
	}
	require.NoError(t, gdb.Create(&user).Error)

	b := models.Barber{UserID: user.ID, PhoneNumber: "+5511988887777"}
	require.NoError(t, gdb.Create(&b).Error)
	b.User = user

	return &b
}
