package database

import (
	"time"

	"github.com/Pearlman11/RentReady/internal/model"

	"gorm.io/gorm"
)

// Seed inserts the demo fixture: two properties, two tenants, two leases and
// two payments. Rows already present are left alone, so calling it on every
// startup is safe.
func Seed(db *gorm.DB) error {
	properties := []model.Property{
		{ID: 1, Address: "123 Main St", Unit: "Apt 101", RentAmount: 1200.00},
		{ID: 2, Address: "456 Oak Ave", Unit: "Unit B", RentAmount: 1500.00},
	}
	tenants := []model.Tenant{
		{ID: 1, Name: "Alice Johnson", Email: "alice@example.com", PhoneNumber: "555-1234"},
		{ID: 2, Name: "Bob Williams", Email: "bob@example.com", PhoneNumber: "555-5678"},
	}
	leases := []model.Lease{
		{ID: 1, PropertyID: 1, TenantID: 1, StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, PropertyID: 2, TenantID: 2, StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	payments := []model.Payment{
		{ID: 1, LeaseID: 1, Amount: 1200.00, Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: 2, LeaseID: 2, Amount: 1500.00, Date: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)},
	}

	for i := range properties {
		if err := db.FirstOrCreate(&properties[i], properties[i].ID).Error; err != nil {
			return err
		}
	}
	for i := range tenants {
		if err := db.FirstOrCreate(&tenants[i], tenants[i].ID).Error; err != nil {
			return err
		}
	}
	for i := range leases {
		if err := db.FirstOrCreate(&leases[i], leases[i].ID).Error; err != nil {
			return err
		}
	}
	for i := range payments {
		if err := db.FirstOrCreate(&payments[i], payments[i].ID).Error; err != nil {
			return err
		}
	}
	return nil
}
