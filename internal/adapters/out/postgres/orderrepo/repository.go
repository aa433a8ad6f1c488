package orderrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// withItems preloads line items in their checkout order.
func withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position")
	})
}

// Add saves a new order to the database, line items included.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageUnavailableError("save order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the mutable fields of an existing order: owner link and
// the two statuses. Contact, line items, and the tracking number never
// change after creation and are left untouched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"owner_id":       dto.OwnerID,
			"payment_status": dto.PaymentStatus,
			"status":         dto.Status,
		})
	if result.Error != nil {
		return errs.NewStorageUnavailableError("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by its storage identity.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := withItems(r.db.WithContext(ctx)).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, errs.NewStorageUnavailableError("get order", err)
	}

	return toDomain(dto)
}

// GetByTrackingNumber retrieves an order by its human-facing number.
func (r *GormOrderRepository) GetByTrackingNumber(ctx context.Context, trackingNumber int64) (*order.Order, error) {
	var dto OrderDTO
	err := withItems(r.db.WithContext(ctx)).First(&dto, "tracking_number = ?", trackingNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber)
		}
		return nil, errs.NewStorageUnavailableError("get order by tracking number", err)
	}

	return toDomain(dto)
}

// GetAll retrieves every order, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.findAll(r.db.WithContext(ctx))
}

// GetByOwner retrieves the orders linked to the given user, newest first.
func (r *GormOrderRepository) GetByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(r.db.WithContext(ctx).Where("owner_id = ?", ownerID.Bytes()))
}

// GetByEmail retrieves orders whose contact email matches exactly, newest
// first. The match is case-exact: reconciliation correlates on whatever was
// stored at checkout.
func (r *GormOrderRepository) GetByEmail(ctx context.Context, email string) ([]*order.Order, error) {
	return r.findAll(r.db.WithContext(ctx).Where("email = ?", email))
}

// LinkOwnerByEmail backfills ownerID onto unowned orders with an exactly
// matching contact email. A single batch update keeps the operation
// idempotent: a repeat run matches zero rows.
func (r *GormOrderRepository) LinkOwnerByEmail(ctx context.Context, email string, ownerID kernel.UUID) (int64, error) {
	if err := ownerID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("email = ? AND owner_id IS NULL", email).
		Update("owner_id", ownerID.Bytes())
	if result.Error != nil {
		return 0, errs.NewStorageUnavailableError("link owner by email", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *GormOrderRepository) findAll(tx *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := withItems(tx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageUnavailableError("list orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
