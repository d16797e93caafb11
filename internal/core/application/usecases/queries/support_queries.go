package queries

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrListComplaintsQueryIsNotConstructed = errors.New(
		"ListComplaintsQuery must be created via NewListComplaintsQuery constructor",
	)
	ErrListActivityQueryIsNotConstructed = errors.New(
		"ListActivityQuery must be created via NewListActivityQuery constructor",
	)
)

// ListComplaintsQuery builds the support desk view.
type ListComplaintsQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

func NewListComplaintsQuery(actor user.Actor) (ListComplaintsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListComplaintsQuery{}, err
	}
	return ListComplaintsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListComplaintsQuery) Validate() error {
	return q.guard.Validate(ErrListComplaintsQueryIsNotConstructed)
}

type ComplaintResponse struct {
	ID        kernel.UUID
	Author    string
	Role      string
	Message   string
	Status    string
	CreatedAt time.Time
	Line      string
}

type OrderComplaintResponse struct {
	Order     OrderSummaryResponse
	Complaint string
}

// ComplaintsResponse lists free-standing complaints and the orders that carry
// an active complaint.
type ComplaintsResponse struct {
	Complaints []ComplaintResponse
	Orders     []OrderComplaintResponse
}

type ListComplaintsQueryHandler struct {
	sources Sources
}

func NewListComplaintsQueryHandler(sources Sources) ListComplaintsQueryHandler {
	return ListComplaintsQueryHandler{sources: sources}
}

func (h ListComplaintsQueryHandler) Handle(ctx context.Context, query ListComplaintsQuery) (ComplaintsResponse, error) {
	if err := query.Validate(); err != nil {
		return ComplaintsResponse{}, err
	}
	if !query.actor.Role.CanResolveComplaints() {
		return ComplaintsResponse{}, errs.NewUnauthorizedError(query.actor.String(), "view the support desk")
	}

	complaints, err := h.sources.Complaints.List(ctx)
	if err != nil {
		return ComplaintsResponse{}, err
	}
	orders, err := h.sources.Orders.List(ctx)
	if err != nil {
		return ComplaintsResponse{}, err
	}

	resp := ComplaintsResponse{
		Complaints: make([]ComplaintResponse, 0, len(complaints)),
		Orders:     make([]OrderComplaintResponse, 0),
	}
	for _, c := range complaints {
		resp.Complaints = append(resp.Complaints, ComplaintResponse{
			ID:        c.ID(),
			Author:    c.Author(),
			Role:      c.Role().String(),
			Message:   c.Message(),
			Status:    c.Status().String(),
			CreatedAt: c.CreatedAt(),
			Line:      c.String(),
		})
	}

	live := orderIDs(orders)
	for _, o := range orders {
		if !o.HasComplaint() {
			continue
		}
		resp.Orders = append(resp.Orders, OrderComplaintResponse{
			Order:     summarize(o, kernel.ShortID(o.ID(), live)),
			Complaint: o.Complaint(),
		})
	}
	return resp, nil
}

// ListActivityQuery reads the human-readable activity log, newest last.
type ListActivityQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

func NewListActivityQuery(actor user.Actor) (ListActivityQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListActivityQuery{}, err
	}
	return ListActivityQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListActivityQuery) Validate() error {
	return q.guard.Validate(ErrListActivityQueryIsNotConstructed)
}

type ListActivityQueryHandler struct {
	sources Sources
}

func NewListActivityQueryHandler(sources Sources) ListActivityQueryHandler {
	return ListActivityQueryHandler{sources: sources}
}

// Handle is limited to Administrator, Admin and Owner.
func (h ListActivityQueryHandler) Handle(ctx context.Context, query ListActivityQuery) ([]ports.ActivityEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	switch query.actor.Role {
	case user.Administrator, user.Admin, user.Owner:
	default:
		return nil, errs.NewUnauthorizedError(query.actor.String(), "read the activity log")
	}
	return h.sources.Activity.List(ctx)
}
