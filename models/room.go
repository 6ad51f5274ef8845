package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeSuite  RoomType = "Suite"
	RoomTypeDeluxe RoomType = "Deluxe"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe:
		return true
	}
	return false
}

// RoomStatus is derived from the room's active reservations. The engine
// recomputes it after every reservation write; Maintenance is the only
// value set by hand and it survives recomputation while the room has no
// active reservations.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomBooked      RoomStatus = "Booked"
	RoomOccupied    RoomStatus = "Occupied"
	RoomMaintenance RoomStatus = "Maintenance"
)

type Room struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	RoomNumber string          `gorm:"uniqueIndex;not null" json:"roomNumber"`
	RoomType   RoomType        `gorm:"type:varchar(20);not null" json:"roomType"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Floor      int             `json:"floor"`
	Capacity   int             `gorm:"not null" json:"capacity"`
	Facilities string          `gorm:"type:text" json:"facilities"`
	Status     RoomStatus      `gorm:"type:varchar(20);default:'Available'" json:"status"`

	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
