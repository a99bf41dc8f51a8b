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

// PaymentService implements CRUD for payments. Payment reads expand the
// payment's lease together with that lease's property and tenant.
type PaymentService struct {
	db *gorm.DB
}

// NewPaymentService creates a payment service on the given database handle
func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// List returns every payment with its lease expansion
func (s *PaymentService) List(ctx context.Context) ([]dto.PaymentDto, error) {
	defer prometheus.TrackDBOperation("payment_list")(time.Now())

	var payments []model.Payment
	err := s.db.WithContext(ctx).
		Preload("Lease").
		Preload("Lease.Property").
		Preload("Lease.Tenant").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.PaymentDto, 0, len(payments))
	for _, p := range payments {
		dtos = append(dtos, dto.NewPaymentDto(p))
	}
	return dtos, nil
}

// Get returns the payment with the given id, expanded, or nil when absent
func (s *PaymentService) Get(ctx context.Context, id uint) (*dto.PaymentDto, error) {
	defer prometheus.TrackDBOperation("payment_get")(time.Now())

	var payment model.Payment
	err := s.db.WithContext(ctx).
		Preload("Lease").
		Preload("Lease.Property").
		Preload("Lease.Tenant").
		First(&payment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	d := dto.NewPaymentDto(payment)
	return &d, nil
}

// Create inserts a new payment and re-reads it with the full lease
// expansion. A dangling lease id is rejected by the store, not checked here.
func (s *PaymentService) Create(ctx context.Context, edit dto.PaymentForEditDto) (*dto.PaymentDto, error) {
	defer prometheus.TrackDBOperation("payment_create")(time.Now())

	payment := dto.NewPaymentFromEdit(edit)
	if err := s.db.WithContext(ctx).Create(&payment).Error; err != nil {
		return nil, err
	}

	return s.expand(ctx, payment.ID)
}

// Update overwrites every editable field of the payment with the given id,
// the lease foreign key included, then re-reads the expansion. Returns
// ErrNotFound when the id does not resolve.
func (s *PaymentService) Update(ctx context.Context, id uint, edit dto.PaymentForEditDto) (*dto.PaymentDto, error) {
	defer prometheus.TrackDBOperation("payment_update")(time.Now())

	var payment model.Payment
	err := s.db.WithContext(ctx).First(&payment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	dto.ApplyPaymentEdit(&payment, edit)
	if err := s.db.WithContext(ctx).Save(&payment).Error; err != nil {
		return nil, err
	}

	return s.expand(ctx, id)
}

// Delete removes the payment with the given id. Returns ErrNotFound when
// the id does not resolve.
func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("payment_delete")(time.Now())

	var payment model.Payment
	err := s.db.WithContext(ctx).First(&payment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&payment).Error
}

// expand re-reads a payment with its lease, property and tenant and projects it
func (s *PaymentService) expand(ctx context.Context, id uint) (*dto.PaymentDto, error) {
	var payment model.Payment
	err := s.db.WithContext(ctx).
		Preload("Lease").
		Preload("Lease.Property").
		Preload("Lease.Tenant").
		First(&payment, id).Error
	if err != nil {
		return nil, err
	}

	d := dto.NewPaymentDto(payment)
	return &d, nil
}
