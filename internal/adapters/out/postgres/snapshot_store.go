// Package postgres keeps durable snapshots of the engine state in PostgreSQL.
//
// The live state is held in memory; this package only writes it out and reads
// it back at process boundaries (startup, periodic autosave, shutdown). Each
// Save replaces the whole dataset inside one transaction so a crash mid-save
// leaves the previous snapshot intact.
//
// Usage:
//
//	store := postgres.NewGormSnapshotStore(db)
//	if err := store.Migrate(ctx); err != nil {
//	    return err
//	}
//	if err := store.Save(ctx, dataset); err != nil {
//	    return err
//	}
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fooddelivery/internal/adapters/out/postgres/complaintrepo"
	"fooddelivery/internal/adapters/out/postgres/foodrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.SnapshotStore = &GormSnapshotStore{}

// GormSnapshotStore implements ports.SnapshotStore on top of the per-aggregate
// GORM repositories, giving each of them the same transaction.
type GormSnapshotStore struct {
	db *gorm.DB
}

func NewGormSnapshotStore(db *gorm.DB) *GormSnapshotStore {
	return &GormSnapshotStore{db: db}
}

// Migrate creates or updates the snapshot tables.
func (s *GormSnapshotStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(
		&foodrepo.FoodDTO{},
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&complaintrepo.ComplaintDTO{},
	)
}

// Save replaces the stored dataset with d. Either every table is rewritten or
// none is.
func (s *GormSnapshotStore) Save(ctx context.Context, d ports.Dataset) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := foodrepo.NewGormFoodRepository(tx).ReplaceAll(ctx, d.Foods); err != nil {
			return fmt.Errorf("save foods: %w", err)
		}
		if err := userrepo.NewGormUserRepository(tx).ReplaceAll(ctx, d.Users); err != nil {
			return fmt.Errorf("save users: %w", err)
		}
		if err := orderrepo.NewGormOrderRepository(tx).ReplaceAll(ctx, d.Orders); err != nil {
			return fmt.Errorf("save orders: %w", err)
		}
		if err := complaintrepo.NewGormComplaintRepository(tx).ReplaceAll(ctx, d.Complaints); err != nil {
			return fmt.Errorf("save complaints: %w", err)
		}
		return nil
	})
}

// Load reads every table from one consistent view. An empty database yields
// an empty Dataset, not an error.
func (s *GormSnapshotStore) Load(ctx context.Context) (ports.Dataset, error) {
	var d ports.Dataset
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if d.Foods, err = foodrepo.NewGormFoodRepository(tx).List(ctx); err != nil {
			return fmt.Errorf("load foods: %w", err)
		}
		if d.Users, err = userrepo.NewGormUserRepository(tx).List(ctx); err != nil {
			return fmt.Errorf("load users: %w", err)
		}
		if d.Orders, err = orderrepo.NewGormOrderRepository(tx).List(ctx); err != nil {
			return fmt.Errorf("load orders: %w", err)
		}
		if d.Complaints, err = complaintrepo.NewGormComplaintRepository(tx).List(ctx); err != nil {
			return fmt.Errorf("load complaints: %w", err)
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return ports.Dataset{}, err
	}
	return d, nil
}
