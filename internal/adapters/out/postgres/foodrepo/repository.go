package foodrepo

import (
	"context"

	"fooddelivery/internal/core/domain/model/food"

	"gorm.io/gorm"
)

// GormFoodRepository persists the catalog table.
type GormFoodRepository struct {
	db *gorm.DB
}

func NewGormFoodRepository(db *gorm.DB) *GormFoodRepository {
	return &GormFoodRepository{db: db}
}

// ReplaceAll drops every stored item and writes items in their given order.
func (r *GormFoodRepository) ReplaceAll(ctx context.Context, items []*food.FoodItem) error {
	if err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&FoodDTO{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	dtos := make([]FoodDTO, 0, len(items))
	for i, f := range items {
		if err := f.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(f, i))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

func (r *GormFoodRepository) List(ctx context.Context) ([]*food.FoodItem, error) {
	var dtos []FoodDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*food.FoodItem, 0, len(dtos))
	for _, dto := range dtos {
		f, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}

	return items, nil
}
