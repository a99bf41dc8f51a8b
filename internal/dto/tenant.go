package dto

import (
	"time"

	"github.com/Pearlman11/RentReady/internal/model"
)

// TenantDto is the read projection of a tenant. Leases is only populated
// when the tenant's leases were loaded with it.
type TenantDto struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	PhoneNumber string            `json:"phoneNumber"`
	Leases      []LeaseSummaryDto `json:"leases,omitempty"`
}

// LeaseSummaryDto is the flat lease shape embedded in a tenant, without the
// nested property/tenant expansion a full LeaseDto carries.
type LeaseSummaryDto struct {
	ID         uint       `json:"id"`
	PropertyID uint       `json:"propertyId"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
}

// TenantForEditDto carries the mutable tenant fields for create/update
type TenantForEditDto struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// NewTenantDto projects a tenant entity to its read DTO
func NewTenantDto(t model.Tenant) TenantDto {
	d := TenantDto{
		ID:          t.ID,
		Name:        t.Name,
		Email:       t.Email,
		PhoneNumber: t.PhoneNumber,
	}
	if t.Leases != nil {
		d.Leases = make([]LeaseSummaryDto, 0, len(t.Leases))
		for _, l := range t.Leases {
			d.Leases = append(d.Leases, LeaseSummaryDto{
				ID:         l.ID,
				PropertyID: l.PropertyID,
				StartDate:  l.StartDate,
				EndDate:    l.EndDate,
			})
		}
	}
	return d
}

// NewTenantFromEdit builds a new tenant entity from an edit payload
func NewTenantFromEdit(edit TenantForEditDto) model.Tenant {
	return model.Tenant{
		Name:        edit.Name,
		Email:       edit.Email,
		PhoneNumber: edit.PhoneNumber,
	}
}

// ApplyTenantEdit overwrites every editable field on an existing tenant
func ApplyTenantEdit(t *model.Tenant, edit TenantForEditDto) {
	t.Name = edit.Name
	t.Email = edit.Email
	t.PhoneNumber = edit.PhoneNumber
}
