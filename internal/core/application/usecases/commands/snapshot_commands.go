package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrSaveSnapshotCommandIsNotConstructed = errors.New(
		"SaveSnapshotCommand must be created via NewSaveSnapshotCommand constructor",
	)
	ErrLoadSnapshotCommandIsNotConstructed = errors.New(
		"LoadSnapshotCommand must be created via NewLoadSnapshotCommand constructor",
	)
	ErrNoSnapshotStore = errors.New("no snapshot store configured")
)

// SaveSnapshotCommand persists the catalog, users, orders and complaints.
// Carts are session state and are not saved.
type SaveSnapshotCommand struct {
	guard guard.ConstructorGuard
}

func NewSaveSnapshotCommand() SaveSnapshotCommand {
	return SaveSnapshotCommand{guard: guard.NewConstructorGuard()}
}

func (c SaveSnapshotCommand) Validate() error {
	return c.guard.Validate(ErrSaveSnapshotCommandIsNotConstructed)
}

// LoadSnapshotCommand replaces the in-memory state with the stored snapshot.
type LoadSnapshotCommand struct {
	guard guard.ConstructorGuard
}

func NewLoadSnapshotCommand() LoadSnapshotCommand {
	return LoadSnapshotCommand{guard: guard.NewConstructorGuard()}
}

func (c LoadSnapshotCommand) Validate() error {
	return c.guard.Validate(ErrLoadSnapshotCommandIsNotConstructed)
}

// SaveSnapshotCommandHandler collects each repository's clones and hands them
// to the store in one call. Every aggregate is internally consistent; the set
// as a whole is not a point-in-time cut across aggregates.
type SaveSnapshotCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewSaveSnapshotCommandHandler(deps Deps) SaveSnapshotCommandHandler {
	return SaveSnapshotCommandHandler{deps: deps, logger: deps.logger("save_snapshot")}
}

func (h SaveSnapshotCommandHandler) Handle(ctx context.Context, cmd SaveSnapshotCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if h.deps.Snapshots == nil {
		return ErrNoSnapshotStore
	}

	var (
		d   ports.Dataset
		err error
	)
	if d.Foods, err = h.deps.Foods.List(ctx); err != nil {
		return err
	}
	if d.Users, err = h.deps.Users.List(ctx); err != nil {
		return err
	}
	if d.Orders, err = h.deps.Orders.List(ctx); err != nil {
		return err
	}
	if d.Complaints, err = h.deps.Complaints.List(ctx); err != nil {
		return err
	}

	if err = h.deps.Snapshots.Save(ctx, d); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Snapshot saved",
		"foods", len(d.Foods), "users", len(d.Users), "orders", len(d.Orders), "complaints", len(d.Complaints))
	return nil
}

type LoadSnapshotCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewLoadSnapshotCommandHandler(deps Deps) LoadSnapshotCommandHandler {
	return LoadSnapshotCommandHandler{deps: deps, logger: deps.logger("load_snapshot")}
}

// Handle reports whether anything was loaded. An empty snapshot leaves the
// repositories untouched so a seeded demo dataset survives a first start.
func (h LoadSnapshotCommandHandler) Handle(ctx context.Context, cmd LoadSnapshotCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}
	if h.deps.Snapshots == nil {
		return false, ErrNoSnapshotStore
	}

	d, err := h.deps.Snapshots.Load(ctx)
	if err != nil {
		return false, err
	}
	if d.IsEmpty() {
		h.logger.InfoContext(ctx, "No snapshot to load")
		return false, nil
	}

	if err = errors.Join(
		h.deps.Foods.Replace(ctx, d.Foods),
		h.deps.Users.Replace(ctx, d.Users),
		h.deps.Orders.Replace(ctx, d.Orders),
		h.deps.Complaints.Replace(ctx, d.Complaints),
	); err != nil {
		return false, err
	}

	h.logger.InfoContext(ctx, "Snapshot loaded",
		"foods", len(d.Foods), "users", len(d.Users), "orders", len(d.Orders), "complaints", len(d.Complaints))
	return true, nil
}
