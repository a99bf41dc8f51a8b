package model

import "time"

// Lease ties a tenant to a property for a period of time. EndDate is nil for
// an open-ended lease.
type Lease struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	PropertyID uint       `json:"propertyId" gorm:"not null;index"`
	TenantID   uint       `json:"tenantId" gorm:"not null;index"`
	StartDate  time.Time  `json:"startDate" gorm:"not null"`
	EndDate    *time.Time `json:"endDate"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	Tenant   *Tenant   `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`

	Payments []Payment `json:"payments,omitempty" gorm:"foreignKey:LeaseID;constraint:OnDelete:RESTRICT"`
}
