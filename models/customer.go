package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Name     string `gorm:"not null" json:"name"`
	IDNumber string `gorm:"uniqueIndex;not null" json:"idNumber"`
	Phone    string `gorm:"not null" json:"phone"`
	Email    string `json:"email"`
	Address  string `gorm:"type:text" json:"address"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
