package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Pearlman11/RentReady/internal/dto"
	"github.com/Pearlman11/RentReady/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GET /api/leases/1 against the demo fixture carries the expanded property
// and tenant and a null end date
func TestLeaseHandlerGetReturnsExpandedDto(t *testing.T) {
	h := NewLeaseHandler(service.NewLeaseService(seededDB(t)))
	c, rec := newJSONContext(http.MethodGet, "", "1")

	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var lease dto.LeaseDto
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lease))
	assert.Equal(t, uint(1), lease.ID)
	require.NotNil(t, lease.Property)
	assert.Equal(t, "123 Main St", lease.Property.Address)
	require.NotNil(t, lease.Tenant)
	assert.Equal(t, "Alice Johnson", lease.Tenant.Name)
	assert.Nil(t, lease.EndDate)
	assert.Contains(t, rec.Body.String(), `"endDate":null`)
}

func TestLeaseHandlerGetAbsentReturns404(t *testing.T) {
	h := NewLeaseHandler(service.NewLeaseService(setupTestDB(t)))
	c, rec := newJSONContext(http.MethodGet, "", "999")

	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeaseHandlerCreateReturns201WithExpansion(t *testing.T) {
	h := NewLeaseHandler(service.NewLeaseService(seededDB(t)))
	c, rec := newJSONContext(http.MethodPost,
		`{"propertyId":2,"tenantId":1,"startDate":"2025-06-01T00:00:00Z","endDate":null}`, "")

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var created dto.LeaseDto
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	require.NotNil(t, created.Property)
	assert.Equal(t, "456 Oak Ave", created.Property.Address)
	require.NotNil(t, created.Tenant)
	assert.Equal(t, "Alice Johnson", created.Tenant.Name)
	assert.Contains(t, rec.Header().Get("Location"), "/api/leases/")
}

func TestLeaseHandlerUpdateAbsentReturns404(t *testing.T) {
	h := NewLeaseHandler(service.NewLeaseService(setupTestDB(t)))
	c, rec := newJSONContext(http.MethodPut,
		`{"propertyId":1,"tenantId":1,"startDate":"2025-01-01T00:00:00Z"}`, "999")

	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeaseHandlerDeleteAbsentReturns404(t *testing.T) {
	h := NewLeaseHandler(service.NewLeaseService(setupTestDB(t)))
	c, rec := newJSONContext(http.MethodDelete, "", "999")

	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
