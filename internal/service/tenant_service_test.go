package service

import (
	"context"
	"testing"

	"github.com/Pearlman11/RentReady/internal/dto"
	"github.com/Pearlman11/RentReady/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantServiceGetExpandsOwnLeasesOnly(t *testing.T) {
	db := setupTestDB(t)
	firstLease := seedLeaseFixture(t, db)
	seedLeaseFixture(t, db) // belongs to a different tenant
	var lease model.Lease
	require.NoError(t, db.First(&lease, firstLease).Error)
	svc := NewTenantService(db)

	tenant, err := svc.Get(context.Background(), lease.TenantID)

	require.NoError(t, err)
	require.NotNil(t, tenant)
	require.Len(t, tenant.Leases, 1)
	assert.Equal(t, firstLease, tenant.Leases[0].ID)
}

func TestTenantServiceGetAbsentReturnsNil(t *testing.T) {
	svc := NewTenantService(setupTestDB(t))

	got, err := svc.Get(context.Background(), 999)

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTenantServiceCreateHasNoLeases(t *testing.T) {
	svc := NewTenantService(setupTestDB(t))

	created, err := svc.Create(context.Background(), dto.TenantForEditDto{
		Name:        "Carol Smith",
		Email:       "carol@example.com",
		PhoneNumber: "555-9999",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Carol Smith", created.Name)
	assert.Empty(t, created.Leases)
}

func TestTenantServiceUpdateOverwritesEveryField(t *testing.T) {
	db := setupTestDB(t)
	tenant := model.Tenant{Name: "Old Name", Email: "old@example.com", PhoneNumber: "555-0000"}
	require.NoError(t, db.Create(&tenant).Error)
	svc := NewTenantService(db)

	updated, err := svc.Update(context.Background(), tenant.ID, dto.TenantForEditDto{
		Name:        "New Name",
		Email:       "new@example.com",
		PhoneNumber: "555-1111",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "555-1111", updated.PhoneNumber)
}

func TestTenantServiceUpdateAbsentReturnsNotFound(t *testing.T) {
	svc := NewTenantService(setupTestDB(t))

	_, err := svc.Update(context.Background(), 999, dto.TenantForEditDto{Name: "X"})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTenantServiceDeleteRemovesRow(t *testing.T) {
	db := setupTestDB(t)
	tenant := model.Tenant{Name: "N", Email: "n@example.com", PhoneNumber: "555-0000"}
	require.NoError(t, db.Create(&tenant).Error)
	svc := NewTenantService(db)

	require.NoError(t, svc.Delete(context.Background(), tenant.ID))

	got, err := svc.Get(context.Background(), tenant.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
