package memory

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

var _ ports.OrderRepository = &OrderRepository{}

// OrderRepository keeps orders in memory with one lock per order. Claims on
// different orders never contend; claims on the same order are serialized.
type OrderRepository struct {
	orders *store[kernel.UUID, *order.Order]
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: newStore[kernel.UUID, *order.Order]("order")}
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.orders.add(aggregate.ID(), aggregate)
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	return r.orders.get(id)
}

func (r *OrderRepository) Update(_ context.Context, id kernel.UUID, fn func(o *order.Order) error) error {
	return r.orders.update(id, fn)
}

func (r *OrderRepository) List(_ context.Context) ([]*order.Order, error) {
	return r.orders.list(), nil
}

func (r *OrderRepository) Replace(_ context.Context, orders []*order.Order) error {
	return r.orders.replace((*order.Order).ID, orders)
}
