package model

import "time"

// Payment records a single payment made against a lease
type Payment struct {
	ID      uint      `json:"id" gorm:"primarykey"`
	LeaseID uint      `json:"leaseId" gorm:"not null;index"`
	Amount  float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date    time.Time `json:"date" gorm:"not null"`

	Lease *Lease `json:"lease,omitempty" gorm:"foreignKey:LeaseID"`
}
