// Package foodrepo provides data transfer objects and mapping functions for catalog persistence.
package foodrepo

import (
	"fooddelivery/internal/core/domain/model/food"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FoodDTO represents the database structure for persisting food items.
// Variations and the rating history are stored as JSON columns; the average
// is never stored because RestoreFoodItem recomputes it.
type FoodDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Position    int            `gorm:"type:int;not null"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Price       int64          `gorm:"not null"`
	Category    string         `gorm:"type:varchar(255);not null;index"`
	Restaurant  string         `gorm:"type:varchar(255);not null;index"`
	InStock     bool           `gorm:"not null"`
	Variations  []VariationDTO `gorm:"serializer:json"`
	Ratings     []int          `gorm:"serializer:json"`
	Comments    []string       `gorm:"serializer:json"`
}

// TableName specifies the database table name for food items.
func (FoodDTO) TableName() string {
	return "foods"
}

// VariationDTO stores the delta in cents.
type VariationDTO struct {
	Name  string `json:"name"`
	Delta int64  `json:"delta"`
}

func fromDomain(f *food.FoodItem, position int) FoodDTO {
	variations := make([]VariationDTO, 0, len(f.Variations()))
	for _, v := range f.Variations() {
		variations = append(variations, VariationDTO{Name: v.Name, Delta: v.Delta.Cents()})
	}

	return FoodDTO{
		ID:          f.ID().Bytes(),
		Position:    position,
		Name:        f.Name(),
		Description: f.Description(),
		Price:       f.Price().Cents(),
		Category:    f.Category(),
		Restaurant:  f.Restaurant(),
		InStock:     f.InStock(),
		Variations:  variations,
		Ratings:     f.Ratings(),
		Comments:    f.Comments(),
	}
}

func toDomain(dto FoodDTO) (*food.FoodItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	variations := make([]food.Variation, 0, len(dto.Variations))
	for _, v := range dto.Variations {
		variations = append(variations, food.Variation{Name: v.Name, Delta: kernel.Cents(v.Delta)})
	}

	return food.RestoreFoodItem(
		id,
		dto.Name,
		dto.Description,
		kernel.Cents(dto.Price),
		dto.Category,
		dto.Restaurant,
		dto.InStock,
		variations,
		dto.Ratings,
		dto.Comments,
	)
}
