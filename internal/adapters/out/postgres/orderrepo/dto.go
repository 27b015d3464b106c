// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and courier assignment.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code               string     `gorm:"type:varchar(16);not null;uniqueIndex"`
	RequesterID        string     `gorm:"type:varchar(255);not null;index"`
	RestaurantName     string     `gorm:"type:varchar(255);not null"`
	Lines              []LineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	DeliveryFee        int64      `gorm:"type:bigint;not null"`
	Discount           int64      `gorm:"type:bigint;not null"`
	PromoCode          string     `gorm:"type:varchar(64)"`
	DestinationID      *string    `gorm:"type:varchar(64)"`
	DestinationName    *string    `gorm:"type:varchar(255)"`
	DestinationFee     *int64     `gorm:"type:bigint"`
	DiningHall         string     `gorm:"type:varchar(255)"`
	Notes              string     `gorm:"type:text"`
	Phone              string     `gorm:"type:varchar(32)"`
	Status             int        `gorm:"type:int;not null;index"`
	CourierID          *uuid.UUID `gorm:"type:uuid;index"`
	CustomerPaid       bool       `gorm:"not null"`
	CancellationReason string     `gorm:"type:text"`
	ETAMinutes         int        `gorm:"type:int;not null"`
	CreatedAt          time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one persisted cart line of an order.
// Links to its order via foreign key; Position preserves the cart ordering.
type LineDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"type:int;not null"`
	ItemID    string    `gorm:"type:varchar(64);not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Quantity  int       `gorm:"type:int;not null"`
	UnitPrice int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the cart lines and the optional
// destination and courier binding.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	var courierID *uuid.UUID
	if id := o.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var destID, destName *string
	var destFee *int64
	if dest := o.Destination(); dest != nil {
		id := dest.ID()
		name := dest.Name()
		fee := dest.Fee()
		destID, destName, destFee = &id, &name, &fee
	}

	domainLines := o.Lines()
	lines := make([]LineDTO, 0, len(domainLines))
	for i, line := range domainLines {
		lines = append(lines, LineDTO{
			OrderID:   orderID,
			Position:  i,
			ItemID:    line.ItemID(),
			Name:      line.Name(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:                 orderID,
		Code:               o.Code().String(),
		RequesterID:        o.RequesterID(),
		RestaurantName:     o.RestaurantName(),
		Lines:              lines,
		DeliveryFee:        o.DeliveryFee(),
		Discount:           o.Discount(),
		PromoCode:          o.PromoCode(),
		DestinationID:      destID,
		DestinationName:    destName,
		DestinationFee:     destFee,
		DiningHall:         o.DiningHall(),
		Notes:              o.Notes(),
		Phone:              o.Phone(),
		Status:             int(o.Status()),
		CourierID:          courierID,
		CustomerPaid:       o.IsCustomerPaid(),
		CancellationReason: o.CancellationReason(),
		ETAMinutes:         o.ETAMinutes(),
		CreatedAt:          o.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including cart lines, destination,
// status, and courier binding using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := kernel.OrderCodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	var destination *kernel.Location
	if dto.DestinationID != nil && dto.DestinationName != nil && dto.DestinationFee != nil {
		loc, locErr := kernel.NewLocation(*dto.DestinationID, *dto.DestinationName, *dto.DestinationFee)
		if locErr != nil {
			return nil, locErr
		}
		destination = &loc
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := order.NewLine(lineDTO.ItemID, lineDTO.Name, lineDTO.Quantity, lineDTO.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 id,
		Code:               code,
		RequesterID:        dto.RequesterID,
		RestaurantName:     dto.RestaurantName,
		Lines:              lines,
		DeliveryFee:        dto.DeliveryFee,
		Discount:           dto.Discount,
		PromoCode:          dto.PromoCode,
		Destination:        destination,
		DiningHall:         dto.DiningHall,
		Notes:              dto.Notes,
		Phone:              dto.Phone,
		Status:             order.Status(dto.Status),
		CourierID:          courierID,
		CustomerPaid:       dto.CustomerPaid,
		CancellationReason: dto.CancellationReason,
		ETAMinutes:         dto.ETAMinutes,
		CreatedAt:          dto.CreatedAt,
	})
}
