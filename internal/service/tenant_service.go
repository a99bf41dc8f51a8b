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

// TenantService implements CRUD for tenants. Tenant reads expand the
// tenant's leases as flat summaries.
type TenantService struct {
	db *gorm.DB
}

// NewTenantService creates a tenant service on the given database handle
func NewTenantService(db *gorm.DB) *TenantService {
	return &TenantService{db: db}
}

// List returns every tenant with its leases
func (s *TenantService) List(ctx context.Context) ([]dto.TenantDto, error) {
	defer prometheus.TrackDBOperation("tenant_list")(time.Now())

	var tenants []model.Tenant
	if err := s.db.WithContext(ctx).Preload("Leases").Find(&tenants).Error; err != nil {
		return nil, err
	}

	dtos := make([]dto.TenantDto, 0, len(tenants))
	for _, t := range tenants {
		dtos = append(dtos, dto.NewTenantDto(t))
	}
	return dtos, nil
}

// Get returns the tenant with the given id and its leases, or nil when absent
func (s *TenantService) Get(ctx context.Context, id uint) (*dto.TenantDto, error) {
	defer prometheus.TrackDBOperation("tenant_get")(time.Now())

	var tenant model.Tenant
	err := s.db.WithContext(ctx).Preload("Leases").First(&tenant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	d := dto.NewTenantDto(tenant)
	return &d, nil
}

// Create inserts a new tenant. A fresh tenant has no leases yet, so the
// entity is projected directly without an expansion re-read.
func (s *TenantService) Create(ctx context.Context, edit dto.TenantForEditDto) (*dto.TenantDto, error) {
	defer prometheus.TrackDBOperation("tenant_create")(time.Now())

	tenant := dto.NewTenantFromEdit(edit)
	if err := s.db.WithContext(ctx).Create(&tenant).Error; err != nil {
		return nil, err
	}

	d := dto.NewTenantDto(tenant)
	return &d, nil
}

// Update overwrites every editable field of the tenant with the given id and
// re-reads its leases for the response. Returns ErrNotFound when the id does
// not resolve.
func (s *TenantService) Update(ctx context.Context, id uint, edit dto.TenantForEditDto) (*dto.TenantDto, error) {
	defer prometheus.TrackDBOperation("tenant_update")(time.Now())

	var tenant model.Tenant
	err := s.db.WithContext(ctx).First(&tenant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	dto.ApplyTenantEdit(&tenant, edit)
	if err := s.db.WithContext(ctx).Save(&tenant).Error; err != nil {
		return nil, err
	}

	return s.expand(ctx, id)
}

// Delete removes the tenant with the given id. Returns ErrNotFound when the
// id does not resolve. A tenant with leases is rejected by the store.
func (s *TenantService) Delete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("tenant_delete")(time.Now())

	var tenant model.Tenant
	err := s.db.WithContext(ctx).First(&tenant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&tenant).Error
}

// expand re-reads a tenant with its leases and projects it
func (s *TenantService) expand(ctx context.Context, id uint) (*dto.TenantDto, error) {
	var tenant model.Tenant
	if err := s.db.WithContext(ctx).Preload("Leases").First(&tenant, id).Error; err != nil {
		return nil, err
	}

	d := dto.NewTenantDto(tenant)
	return &d, nil
}
