package orderrepo

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

const batchSize = 100

// GormOrderRepository persists the order table set. It is bound to whatever
// *gorm.DB it is given; the snapshot store hands it a transaction.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// ReplaceAll drops every stored order and writes orders in their given order.
func (r *GormOrderRepository) ReplaceAll(ctx context.Context, orders []*order.Order) error {
	db := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := db.Delete(&ItemDTO{}).Error; err != nil {
		return err
	}
	if err := db.Delete(&OrderDTO{}).Error; err != nil {
		return err
	}
	if len(orders) == 0 {
		return nil
	}

	dtos := make([]OrderDTO, 0, len(orders))
	for i, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(o, i))
	}

	return r.db.WithContext(ctx).CreateInBatches(&dtos, batchSize).Error
}

// List returns every stored order with its lines, in insertion order.
func (r *GormOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("position").
		Find(&dtos).Error; err != nil {
		return nil, err
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
