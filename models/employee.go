package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "Active"
	EmployeeOnLeave  EmployeeStatus = "OnLeave"
	EmployeeResigned EmployeeStatus = "Resigned"
)

type Employee struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Name     string          `gorm:"not null" json:"name"`
	Position string          `gorm:"not null" json:"position"`
	Phone    string          `json:"phone"`
	Email    string          `json:"email"`
	Address  string          `gorm:"type:text" json:"address"`
	Salary   decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"salary"`
	HireDate time.Time       `gorm:"type:date" json:"hireDate"`
	Status   EmployeeStatus  `gorm:"type:varchar(20);default:'Active'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
