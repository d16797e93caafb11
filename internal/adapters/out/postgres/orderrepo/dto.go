// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Order lines live in their own table; the chat transcript and feedback batch
// are small value lists and are stored as JSON columns on the order row.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID               uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	Position         int                        `gorm:"type:int;not null"`
	Customer         string                     `gorm:"type:varchar(255);not null;index"`
	Status           string                     `gorm:"type:varchar(32);not null;index"`
	Address          string                     `gorm:"type:text"`
	Phone            string                     `gorm:"type:varchar(64)"`
	Note             string                     `gorm:"type:text"`
	Payment          string                     `gorm:"type:varchar(32);not null"`
	PaymentReference string                     `gorm:"type:varchar(255)"`
	Shipper          string                     `gorm:"type:varchar(255);index"`
	CreatedAt        time.Time                  `gorm:"not null"`
	Items            []ItemDTO                  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Chat             []MessageDTO               `gorm:"serializer:json"`
	Complaint        string                     `gorm:"type:text"`
	FoodFeedback     map[string]FoodFeedbackDTO `gorm:"serializer:json"`
	ShipperRating    *int                       `gorm:"type:smallint"`
	ShipperComment   string                     `gorm:"type:text"`
	Rated            bool                       `gorm:"not null;default:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one frozen order line. Prices are stored in cents.
type ItemDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position       int       `gorm:"type:int;primaryKey;autoIncrement:false"`
	FoodID         uuid.UUID `gorm:"type:uuid;not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Restaurant     string    `gorm:"type:varchar(255);not null;index"`
	UnitPrice      int64     `gorm:"not null"`
	Variation      string    `gorm:"type:varchar(255)"`
	VariationDelta int64     `gorm:"not null;default:0"`
	Quantity       int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

type MessageDTO struct {
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

type FoodFeedbackDTO struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// fromDomain converts an order aggregate to its database representation.
// position keeps the repository's insertion order across restarts.
func fromDomain(o *order.Order, position int) OrderDTO {
	s := o.State()
	orderID := s.ID.Bytes()

	items := make([]ItemDTO, 0, len(s.Items))
	for i, item := range s.Items {
		items = append(items, ItemDTO{
			OrderID:        orderID,
			Position:       i,
			FoodID:         item.FoodID().Bytes(),
			Name:           item.Name(),
			Restaurant:     item.Restaurant(),
			UnitPrice:      item.UnitPrice().Cents(),
			Variation:      item.Variation(),
			VariationDelta: item.VariationDelta().Cents(),
			Quantity:       item.Quantity(),
		})
	}

	chat := make([]MessageDTO, 0, len(s.Chat))
	for _, m := range s.Chat {
		chat = append(chat, MessageDTO{Sender: m.Sender, Text: m.Text, SentAt: m.SentAt})
	}

	var feedback map[string]FoodFeedbackDTO
	if len(s.FoodFeedback) > 0 {
		feedback = make(map[string]FoodFeedbackDTO, len(s.FoodFeedback))
		for foodID, ff := range s.FoodFeedback {
			feedback[foodID.String()] = FoodFeedbackDTO{Rating: ff.Rating, Comment: ff.Comment}
		}
	}

	return OrderDTO{
		ID:               orderID,
		Position:         position,
		Customer:         s.Customer,
		Status:           s.Status.String(),
		Address:          s.Address,
		Phone:            s.Phone,
		Note:             s.Note,
		Payment:          s.Payment.String(),
		PaymentReference: s.PaymentReference,
		Shipper:          s.Shipper,
		CreatedAt:        s.CreatedAt,
		Items:            items,
		Chat:             chat,
		Complaint:        s.Complaint,
		FoodFeedback:     feedback,
		ShipperRating:    s.ShipperRating,
		ShipperComment:   s.ShipperComment,
		Rated:            s.Rated,
	}
}

// toDomain rebuilds the aggregate through RestoreOrder, so a row that breaks
// an order invariant (a chat on a delivered order, say) is rejected.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	payment, err := order.ParsePaymentMethod(dto.Payment)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	chat := make([]order.Message, 0, len(dto.Chat))
	for _, m := range dto.Chat {
		chat = append(chat, order.Message{Sender: m.Sender, Text: m.Text, SentAt: m.SentAt})
	}

	var feedback map[kernel.UUID]order.FoodFeedback
	if len(dto.FoodFeedback) > 0 {
		feedback = make(map[kernel.UUID]order.FoodFeedback, len(dto.FoodFeedback))
		for rawID, ff := range dto.FoodFeedback {
			foodID, idErr := kernel.UUIDFromString(rawID)
			if idErr != nil {
				return nil, idErr
			}
			feedback[foodID] = order.FoodFeedback{Rating: ff.Rating, Comment: ff.Comment}
		}
	}

	return order.RestoreOrder(order.State{
		ID:               id,
		Customer:         dto.Customer,
		Items:            items,
		Status:           status,
		Address:          dto.Address,
		Phone:            dto.Phone,
		Note:             dto.Note,
		Payment:          payment,
		PaymentReference: dto.PaymentReference,
		Shipper:          dto.Shipper,
		CreatedAt:        dto.CreatedAt,
		Chat:             chat,
		Complaint:        dto.Complaint,
		FoodFeedback:     feedback,
		ShipperRating:    dto.ShipperRating,
		ShipperComment:   dto.ShipperComment,
		Rated:            dto.Rated,
	})
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	foodID, err := kernel.UUIDFromBytes(dto.FoodID[:])
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(
		foodID,
		dto.Name,
		dto.Restaurant,
		kernel.Cents(dto.UnitPrice),
		dto.Variation,
		kernel.Cents(dto.VariationDelta),
		dto.Quantity,
	)
}
