package userrepo

import (
	"context"

	"fooddelivery/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GormUserRepository persists the account table.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// ReplaceAll drops every stored account and writes users in their given order.
func (r *GormUserRepository) ReplaceAll(ctx context.Context, users []*user.User) error {
	if err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&UserDTO{}).Error; err != nil {
		return err
	}
	if len(users) == 0 {
		return nil
	}

	dtos := make([]UserDTO, 0, len(users))
	for i, u := range users {
		if err := u.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(u, i))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

func (r *GormUserRepository) List(ctx context.Context) ([]*user.User, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&dtos).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}
