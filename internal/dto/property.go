// Package dto holds the wire-facing projections of the entity model and the
// explicit mapping functions between them. Read-direction constructors only
// expand relations that were eagerly loaded; edit payloads never carry an id.
package dto

import "github.com/Pearlman11/RentReady/internal/model"

// PropertyDto is the read projection of a property
type PropertyDto struct {
	ID         uint    `json:"id"`
	Address    string  `json:"address"`
	Unit       string  `json:"unit"`
	RentAmount float64 `json:"rentAmount"`
}

// PropertyForEditDto carries the mutable property fields for create/update
type PropertyForEditDto struct {
	Address    string  `json:"address"`
	Unit       string  `json:"unit"`
	RentAmount float64 `json:"rentAmount"`
}

// NewPropertyDto projects a property entity to its read DTO
func NewPropertyDto(p model.Property) PropertyDto {
	return PropertyDto{
		ID:         p.ID,
		Address:    p.Address,
		Unit:       p.Unit,
		RentAmount: p.RentAmount,
	}
}

// NewPropertyFromEdit builds a new property entity from an edit payload.
// The id is left zero so the store assigns it on insert.
func NewPropertyFromEdit(edit PropertyForEditDto) model.Property {
	return model.Property{
		Address:    edit.Address,
		Unit:       edit.Unit,
		RentAmount: edit.RentAmount,
	}
}

// ApplyPropertyEdit overwrites every editable field on an existing property
func ApplyPropertyEdit(p *model.Property, edit PropertyForEditDto) {
	p.Address = edit.Address
	p.Unit = edit.Unit
	p.RentAmount = edit.RentAmount
}
