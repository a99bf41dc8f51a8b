package dto

import (
	"time"

	"github.com/Pearlman11/RentReady/internal/model"
)

// PaymentDto is the read projection of a payment with its lease (and the
// lease's property and tenant) expanded inline
type PaymentDto struct {
	ID      uint      `json:"id"`
	LeaseID uint      `json:"leaseId"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`

	Lease *LeaseDto `json:"lease,omitempty"`
}

// PaymentForEditDto carries the mutable payment fields for create/update
type PaymentForEditDto struct {
	LeaseID uint      `json:"leaseId"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
}

// NewPaymentDto projects a payment entity to its read DTO
func NewPaymentDto(p model.Payment) PaymentDto {
	d := PaymentDto{
		ID:      p.ID,
		LeaseID: p.LeaseID,
		Amount:  p.Amount,
		Date:    p.Date,
	}
	if p.Lease != nil {
		l := NewLeaseDto(*p.Lease)
		d.Lease = &l
	}
	return d
}

// NewPaymentFromEdit builds a new payment entity from an edit payload
func NewPaymentFromEdit(edit PaymentForEditDto) model.Payment {
	return model.Payment{
		LeaseID: edit.LeaseID,
		Amount:  edit.Amount,
		Date:    edit.Date,
	}
}

// ApplyPaymentEdit overwrites every editable field on an existing payment,
// the lease foreign key included
func ApplyPaymentEdit(p *model.Payment, edit PaymentForEditDto) {
	p.LeaseID = edit.LeaseID
	p.Amount = edit.Amount
	p.Date = edit.Date
}
