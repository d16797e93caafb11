package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/complaint"
	"fooddelivery/internal/core/domain/model/kernel"
)

type ComplaintRepository interface {
	Add(ctx context.Context, c *complaint.Complaint) error
	Get(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error)
	Update(ctx context.Context, id kernel.UUID, fn func(c *complaint.Complaint) error) error
	List(ctx context.Context) ([]*complaint.Complaint, error)
	Replace(ctx context.Context, complaints []*complaint.Complaint) error
}
