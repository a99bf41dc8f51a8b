package dto

import (
	"time"

	"github.com/Pearlman11/RentReady/internal/model"
)

// LeaseDto is the read projection of a lease with its property and tenant
// expanded inline
type LeaseDto struct {
	ID         uint       `json:"id"`
	PropertyID uint       `json:"propertyId"`
	TenantID   uint       `json:"tenantId"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`

	Property *PropertyDto `json:"property,omitempty"`
	Tenant   *TenantDto   `json:"tenant,omitempty"`
}

// LeaseForEditDto carries the mutable lease fields for create/update
type LeaseForEditDto struct {
	PropertyID uint       `json:"propertyId"`
	TenantID   uint       `json:"tenantId"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
}

// NewLeaseDto projects a lease entity to its read DTO, expanding whichever
// relations were loaded with it
func NewLeaseDto(l model.Lease) LeaseDto {
	d := LeaseDto{
		ID:         l.ID,
		PropertyID: l.PropertyID,
		TenantID:   l.TenantID,
		StartDate:  l.StartDate,
		EndDate:    l.EndDate,
	}
	if l.Property != nil {
		p := NewPropertyDto(*l.Property)
		d.Property = &p
	}
	if l.Tenant != nil {
		t := NewTenantDto(*l.Tenant)
		d.Tenant = &t
	}
	return d
}

// NewLeaseFromEdit builds a new lease entity from an edit payload
func NewLeaseFromEdit(edit LeaseForEditDto) model.Lease {
	return model.Lease{
		PropertyID: edit.PropertyID,
		TenantID:   edit.TenantID,
		StartDate:  edit.StartDate,
		EndDate:    edit.EndDate,
	}
}

// ApplyLeaseEdit overwrites every editable field on an existing lease,
// foreign keys included
func ApplyLeaseEdit(l *model.Lease, edit LeaseForEditDto) {
	l.PropertyID = edit.PropertyID
	l.TenantID = edit.TenantID
	l.StartDate = edit.StartDate
	l.EndDate = edit.EndDate
}
