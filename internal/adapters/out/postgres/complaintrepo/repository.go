package complaintrepo

import (
	"context"

	"fooddelivery/internal/core/domain/model/complaint"

	"gorm.io/gorm"
)

// GormComplaintRepository persists the complaint table.
type GormComplaintRepository struct {
	db *gorm.DB
}

func NewGormComplaintRepository(db *gorm.DB) *GormComplaintRepository {
	return &GormComplaintRepository{db: db}
}

// ReplaceAll drops every stored complaint and writes complaints in their given order.
func (r *GormComplaintRepository) ReplaceAll(ctx context.Context, complaints []*complaint.Complaint) error {
	if err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&ComplaintDTO{}).Error; err != nil {
		return err
	}
	if len(complaints) == 0 {
		return nil
	}

	dtos := make([]ComplaintDTO, 0, len(complaints))
	for i, c := range complaints {
		if err := c.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(c, i))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

func (r *GormComplaintRepository) List(ctx context.Context) ([]*complaint.Complaint, error) {
	var dtos []ComplaintDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&dtos).Error; err != nil {
		return nil, err
	}

	complaints := make([]*complaint.Complaint, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}

	return complaints, nil
}
