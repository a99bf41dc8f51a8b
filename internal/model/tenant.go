package model

// Tenant represents a person renting one or more properties
type Tenant struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	Name        string `json:"name" gorm:"type:varchar(255);not null"`
	Email       string `json:"email" gorm:"type:varchar(255);not null"`
	PhoneNumber string `json:"phoneNumber" gorm:"type:varchar(50);not null"`

	Leases []Lease `json:"leases,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:RESTRICT"`
}
