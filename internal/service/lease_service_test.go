package service

import (
	"context"
	"testing"
	"time"

	"github.com/Pearlman11/RentReady/internal/dto"
	"github.com/Pearlman11/RentReady/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaseServiceGetExpandsPropertyAndTenant(t *testing.T) {
	db := setupTestDB(t)
	leaseID := seedLeaseFixture(t, db)
	svc := NewLeaseService(db)

	lease, err := svc.Get(context.Background(), leaseID)

	require.NoError(t, err)
	require.NotNil(t, lease)
	require.NotNil(t, lease.Property)
	require.NotNil(t, lease.Tenant)
	assert.Equal(t, "123 Main St", lease.Property.Address)
	assert.Equal(t, "Alice Johnson", lease.Tenant.Name)
	assert.Nil(t, lease.EndDate)
}

func TestLeaseServiceListExpandsEveryLease(t *testing.T) {
	db := setupTestDB(t)
	seedLeaseFixture(t, db)
	seedLeaseFixture(t, db)
	svc := NewLeaseService(db)

	leases, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, leases, 2)
	for _, l := range leases {
		assert.NotNil(t, l.Property)
		assert.NotNil(t, l.Tenant)
	}
}

func TestLeaseServiceCreateExpandsExistingRelations(t *testing.T) {
	db := setupTestDB(t)
	property := model.Property{Address: "456 Oak Ave", Unit: "Unit B", RentAmount: 1500}
	require.NoError(t, db.Create(&property).Error)
	tenant := model.Tenant{Name: "Bob Williams", Email: "bob@example.com", PhoneNumber: "555-5678"}
	require.NoError(t, db.Create(&tenant).Error)
	svc := NewLeaseService(db)

	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), dto.LeaseForEditDto{
		PropertyID: property.ID,
		TenantID:   tenant.ID,
		StartDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    &end,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)
	// The response carries the pre-existing property and tenant even though
	// the insert only wrote foreign keys
	require.NotNil(t, created.Property)
	require.NotNil(t, created.Tenant)
	assert.Equal(t, "456 Oak Ave", created.Property.Address)
	assert.Equal(t, "Bob Williams", created.Tenant.Name)
	require.NotNil(t, created.EndDate)
	assert.True(t, end.Equal(*created.EndDate))
}

func TestLeaseServiceUpdateOverwritesForeignKeys(t *testing.T) {
	db := setupTestDB(t)
	leaseID := seedLeaseFixture(t, db)
	otherProperty := model.Property{Address: "456 Oak Ave", Unit: "Unit B", RentAmount: 1500}
	require.NoError(t, db.Create(&otherProperty).Error)
	otherTenant := model.Tenant{Name: "Bob Williams", Email: "bob@example.com", PhoneNumber: "555-5678"}
	require.NoError(t, db.Create(&otherTenant).Error)
	svc := NewLeaseService(db)

	updated, err := svc.Update(context.Background(), leaseID, dto.LeaseForEditDto{
		PropertyID: otherProperty.ID,
		TenantID:   otherTenant.ID,
		StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, otherProperty.ID, updated.PropertyID)
	assert.Equal(t, otherTenant.ID, updated.TenantID)
	assert.Nil(t, updated.EndDate)
	require.NotNil(t, updated.Property)
	assert.Equal(t, "456 Oak Ave", updated.Property.Address)
	require.NotNil(t, updated.Tenant)
	assert.Equal(t, "Bob Williams", updated.Tenant.Name)
}

func TestLeaseServiceUpdateClobbersEndDate(t *testing.T) {
	db := setupTestDB(t)
	leaseID := seedLeaseFixture(t, db)
	svc := NewLeaseService(db)

	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	var lease model.Lease
	require.NoError(t, db.First(&lease, leaseID).Error)

	// Set an end date, then resend the edit without one; full overwrite
	// semantics must null it back out
	_, err := svc.Update(context.Background(), leaseID, dto.LeaseForEditDto{
		PropertyID: lease.PropertyID,
		TenantID:   lease.TenantID,
		StartDate:  lease.StartDate,
		EndDate:    &end,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), leaseID, dto.LeaseForEditDto{
		PropertyID: lease.PropertyID,
		TenantID:   lease.TenantID,
		StartDate:  lease.StartDate,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.EndDate)
}

func TestLeaseServiceUpdateAbsentReturnsNotFound(t *testing.T) {
	svc := NewLeaseService(setupTestDB(t))

	_, err := svc.Update(context.Background(), 999, dto.LeaseForEditDto{})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeaseServiceDeleteAbsentReturnsNotFound(t *testing.T) {
	svc := NewLeaseService(setupTestDB(t))

	assert.ErrorIs(t, svc.Delete(context.Background(), 999), ErrNotFound)
}

func TestLeaseServiceDeleteWithPaymentsRejected(t *testing.T) {
	db := setupTestDB(t)
	leaseID := seedLeaseFixture(t, db)
	payment := model.Payment{LeaseID: leaseID, Amount: 1200.00, Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, db.Create(&payment).Error)
	svc := NewLeaseService(db)

	err := svc.Delete(context.Background(), leaseID)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
