// Package complaintrepo provides data transfer objects and mapping functions for support ticket persistence.
package complaintrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/complaint"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// ComplaintDTO represents the database structure for free-standing complaints.
type ComplaintDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"type:int;not null"`
	Author    string    `gorm:"type:varchar(255);not null;index"`
	Role      string    `gorm:"type:varchar(32);not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	Status    string    `gorm:"type:varchar(16);not null;index"`
}

// TableName specifies the database table name for complaints.
func (ComplaintDTO) TableName() string {
	return "complaints"
}

func fromDomain(c *complaint.Complaint, position int) ComplaintDTO {
	return ComplaintDTO{
		ID:        c.ID().Bytes(),
		Position:  position,
		Author:    c.Author(),
		Role:      c.Role().String(),
		Message:   c.Message(),
		CreatedAt: c.CreatedAt(),
		Status:    c.Status().String(),
	}
}

func toDomain(dto ComplaintDTO) (*complaint.Complaint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	status, err := complaint.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return complaint.RestoreComplaint(id, dto.Author, role, dto.Message, dto.CreatedAt, status)
}
