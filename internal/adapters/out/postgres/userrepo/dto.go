// Package userrepo provides data transfer objects and mapping functions for account persistence.
package userrepo

import (
	"fooddelivery/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting accounts. The
// shipper rating history only has entries for shippers.
type UserDTO struct {
	Username        string   `gorm:"type:varchar(255);primaryKey"`
	Position        int      `gorm:"type:int;not null"`
	Role            string   `gorm:"type:varchar(32);not null;index"`
	Address         string   `gorm:"type:text"`
	Phone           string   `gorm:"type:varchar(64)"`
	DisplayName     string   `gorm:"type:varchar(255)"`
	Open            bool     `gorm:"not null"`
	ShipperRatings  []int    `gorm:"serializer:json"`
	ShipperComments []string `gorm:"serializer:json"`
}

// TableName specifies the database table name for accounts.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User, position int) UserDTO {
	return UserDTO{
		Username:        u.Username(),
		Position:        position,
		Role:            u.Role().String(),
		Address:         u.Address(),
		Phone:           u.Phone(),
		DisplayName:     u.DisplayName(),
		Open:            u.IsOpen(),
		ShipperRatings:  u.ShipperRatings(),
		ShipperComments: u.ShipperComments(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		dto.Username,
		role,
		dto.Address,
		dto.Phone,
		dto.DisplayName,
		dto.Open,
		dto.ShipperRatings,
		dto.ShipperComments,
	)
}
