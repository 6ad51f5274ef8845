package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IncomeSource string

const (
	IncomeSourceRoom  IncomeSource = "Room"
	IncomeSourceFood  IncomeSource = "Food"
	IncomeSourceOther IncomeSource = "Other"
)

func (s IncomeSource) Valid() bool {
	switch s {
	case IncomeSourceRoom, IncomeSourceFood, IncomeSourceOther:
		return true
	}
	return false
}

type ExpenseCategory string

const (
	ExpenseSalary      ExpenseCategory = "Salary"
	ExpenseMaintenance ExpenseCategory = "Maintenance"
	ExpenseUtilities   ExpenseCategory = "Utilities"
	ExpenseOther       ExpenseCategory = "Other"
)

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseSalary, ExpenseMaintenance, ExpenseUtilities, ExpenseOther:
		return true
	}
	return false
}

// Income is a ledger entry. Entries are append-only: once written they are
// never deleted, and only the description may grow (refund and deletion
// annotations). ReservationID correlates engine-generated entries to their
// reservation; the description carries the same facts for human audit.
type Income struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Date          time.Time       `gorm:"type:date;not null" json:"date"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Source        IncomeSource    `gorm:"type:varchar(20);not null" json:"source"`
	Description   string          `gorm:"type:text" json:"description"`
	ReservationID *uuid.UUID      `gorm:"type:uuid;index" json:"reservationId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Expense follows the same append-only rules as Income. Refunds land here
// under the Other category.
type Expense struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Date          time.Time       `gorm:"type:date;not null" json:"date"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Category      ExpenseCategory `gorm:"type:varchar(20);not null" json:"category"`
	Description   string          `gorm:"type:text" json:"description"`
	ReservationID *uuid.UUID      `gorm:"type:uuid;index" json:"reservationId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
