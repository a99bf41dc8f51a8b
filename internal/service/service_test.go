package service

import (
	"testing"
	"time"

	"github.com/Pearlman11/RentReady/internal/model"
	"github.com/Pearlman11/RentReady/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see a different in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	// sqlite ships with foreign keys off, postgres enforces them always
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, database.Migrate(db))
	return db
}

// seedLeaseFixture inserts one property, one tenant and one open-ended lease
// and returns the lease id
func seedLeaseFixture(t *testing.T, db *gorm.DB) uint {
	property := model.Property{Address: "123 Main St", Unit: "Apt 101", RentAmount: 1200.00}
	require.NoError(t, db.Create(&property).Error)

	tenant := model.Tenant{Name: "Alice Johnson", Email: "alice@example.com", PhoneNumber: "555-1234"}
	require.NoError(t, db.Create(&tenant).Error)

	lease := model.Lease{
		PropertyID: property.ID,
		TenantID:   tenant.ID,
		StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&lease).Error)
	return lease.ID
}
