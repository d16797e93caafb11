package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/domain/model/complaint"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/guard"
)

var ErrResolveComplaintCommandIsNotConstructed = errors.New(
	"ResolveComplaintCommand must be created via NewResolveComplaintCommand constructor",
)

// ResolveComplaintCommand closes a free-standing complaint.
type ResolveComplaintCommand struct { //nolint:recvcheck //using for validation
	complaintID kernel.UUID
	actor       user.Actor

	guard guard.ConstructorGuard
}

func NewResolveComplaintCommand(complaintID kernel.UUID, actor user.Actor) (ResolveComplaintCommand, error) {
	if err := errors.Join(complaintID.Validate(), actor.Validate()); err != nil {
		return ResolveComplaintCommand{}, err
	}
	return ResolveComplaintCommand{complaintID: complaintID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c ResolveComplaintCommand) Validate() error {
	return c.guard.Validate(ErrResolveComplaintCommandIsNotConstructed)
}

func (c ResolveComplaintCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

func (c ResolveComplaintCommand) Actor() user.Actor {
	return c.actor
}

// ResolveComplaintCommandHandler is restricted to support staff.
type ResolveComplaintCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewResolveComplaintCommandHandler(deps Deps) ResolveComplaintCommandHandler {
	return ResolveComplaintCommandHandler{deps: deps, logger: deps.logger("resolve_complaint")}
}

func (h ResolveComplaintCommandHandler) Handle(ctx context.Context, cmd ResolveComplaintCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireSupport(cmd.Actor(), "resolve complaints"); err != nil {
		return err
	}

	var message string
	err := h.deps.Complaints.Update(ctx, cmd.ComplaintID(), func(c *complaint.Complaint) error {
		message = c.Message()
		return c.Resolve()
	})
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Complaint resolved", "complaint_id", cmd.ComplaintID().String(), "by", cmd.Actor().Username)
	h.deps.publish(ctx, h.logger, ports.Event{
		Type:    ports.ComplaintResolved,
		Actor:   cmd.Actor().String(),
		Subject: cmd.ComplaintID().String(),
		Message: message,
	})
	return nil
}
