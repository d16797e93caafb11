package memory

import (
	"context"

	"fooddelivery/internal/core/domain/model/complaint"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
)

var _ ports.ComplaintRepository = &ComplaintRepository{}

type ComplaintRepository struct {
	complaints *store[kernel.UUID, *complaint.Complaint]
}

func NewComplaintRepository() *ComplaintRepository {
	return &ComplaintRepository{complaints: newStore[kernel.UUID, *complaint.Complaint]("complaint")}
}

func (r *ComplaintRepository) Add(_ context.Context, c *complaint.Complaint) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return r.complaints.add(c.ID(), c)
}

func (r *ComplaintRepository) Get(_ context.Context, id kernel.UUID) (*complaint.Complaint, error) {
	return r.complaints.get(id)
}

func (r *ComplaintRepository) Update(_ context.Context, id kernel.UUID, fn func(c *complaint.Complaint) error) error {
	return r.complaints.update(id, fn)
}

func (r *ComplaintRepository) List(_ context.Context) ([]*complaint.Complaint, error) {
	return r.complaints.list(), nil
}

func (r *ComplaintRepository) Replace(_ context.Context, complaints []*complaint.Complaint) error {
	return r.complaints.replace((*complaint.Complaint).ID, complaints)
}
