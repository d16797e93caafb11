package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/complaint"
	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
)

// Dataset is the complete state of the engine at a process boundary.
type Dataset struct {
	Foods      []*food.FoodItem
	Users      []*user.User
	Orders     []*order.Order
	Complaints []*complaint.Complaint
}

// IsEmpty reports whether nothing has been stored yet.
func (d Dataset) IsEmpty() bool {
	return len(d.Foods) == 0 && len(d.Users) == 0 && len(d.Orders) == 0 && len(d.Complaints) == 0
}

// SnapshotStore saves and restores a Dataset atomically.
type SnapshotStore interface {
	// Save replaces the stored dataset with d in one transaction.
	Save(ctx context.Context, d Dataset) error
	// Load returns the stored dataset, empty when nothing was saved.
	Load(ctx context.Context) (Dataset, error)
}
