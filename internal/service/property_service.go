// Package service implements the CRUD operations for each entity. Every
// service holds its own gorm handle passed in at construction and resolves
// relationship expansion with explicit preloading queries, including a
// re-read after each write so responses always carry the expanded shape.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/Pearlman11/RentReady/internal/dto"
	"github.com/Pearlman11/RentReady/internal/model"
	"github.com/Pearlman11/RentReady/prometheus"

	"gorm.io/gorm"
)

// PropertyService implements CRUD for properties. Properties expand no
// relations in their read projection.
type PropertyService struct {
	db *gorm.DB
}

// NewPropertyService creates a property service on the given database handle
func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{db: db}
}

// List returns every property
func (s *PropertyService) List(ctx context.Context) ([]dto.PropertyDto, error) {
	defer prometheus.TrackDBOperation("property_list")(time.Now())

	var properties []model.Property
	if err := s.db.WithContext(ctx).Find(&properties).Error; err != nil {
		return nil, err
	}

	dtos := make([]dto.PropertyDto, 0, len(properties))
	for _, p := range properties {
		dtos = append(dtos, dto.NewPropertyDto(p))
	}
	return dtos, nil
}

// Get returns the property with the given id, or nil when absent
func (s *PropertyService) Get(ctx context.Context, id uint) (*dto.PropertyDto, error) {
	defer prometheus.TrackDBOperation("property_get")(time.Now())

	var property model.Property
	err := s.db.WithContext(ctx).First(&property, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	d := dto.NewPropertyDto(property)
	return &d, nil
}

// Create inserts a new property and returns its projection with the
// store-assigned id
func (s *PropertyService) Create(ctx context.Context, edit dto.PropertyForEditDto) (*dto.PropertyDto, error) {
	defer prometheus.TrackDBOperation("property_create")(time.Now())

	property := dto.NewPropertyFromEdit(edit)
	if err := s.db.WithContext(ctx).Create(&property).Error; err != nil {
		return nil, err
	}

	d := dto.NewPropertyDto(property)
	return &d, nil
}

// Update overwrites every editable field of the property with the given id.
// Returns ErrNotFound when the id does not resolve.
func (s *PropertyService) Update(ctx context.Context, id uint, edit dto.PropertyForEditDto) (*dto.PropertyDto, error) {
	defer prometheus.TrackDBOperation("property_update")(time.Now())

	var property model.Property
	err := s.db.WithContext(ctx).First(&property, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	dto.ApplyPropertyEdit(&property, edit)
	if err := s.db.WithContext(ctx).Save(&property).Error; err != nil {
		return nil, err
	}

	d := dto.NewPropertyDto(property)
	return &d, nil
}

// Delete removes the property with the given id. Returns ErrNotFound when
// the id does not resolve.
func (s *PropertyService) Delete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("property_delete")(time.Now())

	var property model.Property
	err := s.db.WithContext(ctx).First(&property, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&property).Error
}
