package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/complaint"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
)

type FileComplaintCommandHandler struct {
	deps   Deps
	logger *slog.Logger
}

func NewFileComplaintCommandHandler(deps Deps) FileComplaintCommandHandler {
	return FileComplaintCommandHandler{deps: deps, logger: deps.logger("file_complaint")}
}

// Handle stores the complaint as Pending and returns it.
func (h FileComplaintCommandHandler) Handle(ctx context.Context, cmd FileComplaintCommand) (*complaint.Complaint, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := complaint.NewComplaint(kernel.NewUUID(), cmd.Author().Username, cmd.Author().Role,
		cmd.Message(), h.deps.now())
	if err != nil {
		return nil, err
	}
	if err = h.deps.Complaints.Add(ctx, c); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Complaint filed", "complaint_id", c.ID().String(), "author", c.Author())
	h.deps.publish(ctx, h.logger, ports.Event{
		Type:    ports.ComplaintFiled,
		Actor:   cmd.Author().String(),
		Subject: c.ID().String(),
		Message: c.Message(),
	})
	return c, nil
}
