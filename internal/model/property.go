package model

// Property represents a rentable unit at a street address
type Property struct {
	ID         uint    `json:"id" gorm:"primarykey"`
	Address    string  `json:"address" gorm:"type:varchar(255);not null"`
	Unit       string  `json:"unit" gorm:"type:varchar(100);not null"`
	RentAmount float64 `json:"rentAmount" gorm:"type:decimal(10,2);not null"`

	// Leases on this property. Deleting a property with leases is rejected
	// by the store.
	Leases []Lease `json:"leases,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:RESTRICT"`
}
