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

// LeaseService implements CRUD for leases. Lease reads always expand the
// lease's property and tenant.
type LeaseService struct {
	db *gorm.DB
}

// NewLeaseService creates a lease service on the given database handle
func NewLeaseService(db *gorm.DB) *LeaseService {
	return &LeaseService{db: db}
}

// List returns every lease with its property and tenant
func (s *LeaseService) List(ctx context.Context) ([]dto.LeaseDto, error) {
	defer prometheus.TrackDBOperation("lease_list")(time.Now())

	var leases []model.Lease
	err := s.db.WithContext(ctx).
		Preload("Property").
		Preload("Tenant").
		Find(&leases).Error
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.LeaseDto, 0, len(leases))
	for _, l := range leases {
		dtos = append(dtos, dto.NewLeaseDto(l))
	}
	return dtos, nil
}

// Get returns the lease with the given id, expanded, or nil when absent
func (s *LeaseService) Get(ctx context.Context, id uint) (*dto.LeaseDto, error) {
	defer prometheus.TrackDBOperation("lease_get")(time.Now())

	var lease model.Lease
	err := s.db.WithContext(ctx).
		Preload("Property").
		Preload("Tenant").
		First(&lease, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	d := dto.NewLeaseDto(lease)
	return &d, nil
}

// Create inserts a new lease and re-reads it with its property and tenant so
// the response carries the expanded shape. A dangling property or tenant id
// is rejected by the store, not checked here.
func (s *LeaseService) Create(ctx context.Context, edit dto.LeaseForEditDto) (*dto.LeaseDto, error) {
	defer prometheus.TrackDBOperation("lease_create")(time.Now())

	lease := dto.NewLeaseFromEdit(edit)
	if err := s.db.WithContext(ctx).Create(&lease).Error; err != nil {
		return nil, err
	}

	return s.expand(ctx, lease.ID)
}

// Update overwrites every editable field of the lease with the given id,
// foreign keys included, then re-reads the expansion. Returns ErrNotFound
// when the id does not resolve.
func (s *LeaseService) Update(ctx context.Context, id uint, edit dto.LeaseForEditDto) (*dto.LeaseDto, error) {
	defer prometheus.TrackDBOperation("lease_update")(time.Now())

	var lease model.Lease
	err := s.db.WithContext(ctx).First(&lease, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	dto.ApplyLeaseEdit(&lease, edit)
	if err := s.db.WithContext(ctx).Save(&lease).Error; err != nil {
		return nil, err
	}

	return s.expand(ctx, id)
}

// Delete removes the lease with the given id. Returns ErrNotFound when the
// id does not resolve. A lease with payments is rejected by the store.
func (s *LeaseService) Delete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("lease_delete")(time.Now())

	var lease model.Lease
	err := s.db.WithContext(ctx).First(&lease, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&lease).Error
}

// expand re-reads a lease with its property and tenant and projects it
func (s *LeaseService) expand(ctx context.Context, id uint) (*dto.LeaseDto, error) {
	var lease model.Lease
	err := s.db.WithContext(ctx).
		Preload("Property").
		Preload("Tenant").
		First(&lease, id).Error
	if err != nil {
		return nil, err
	}

	d := dto.NewLeaseDto(lease)
	return &d, nil
}
