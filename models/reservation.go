package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationStatus string

const (
	ReservationBooked     ReservationStatus = "Booked"
	ReservationCheckedIn  ReservationStatus = "CheckedIn"
	ReservationCheckedOut ReservationStatus = "CheckedOut"
	ReservationRefunded   ReservationStatus = "Refunded"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationBooked, ReservationCheckedIn, ReservationCheckedOut, ReservationRefunded:
		return true
	}
	return false
}

// Active reservations occupy or reserve a room.
func (s ReservationStatus) Active() bool {
	return s == ReservationBooked || s == ReservationCheckedIn
}

// Terminal statuses accept no further transitions.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationCheckedOut || s == ReservationRefunded
}

// transitions is the full state machine:
//
//	Booked    -> CheckedIn | Refunded
//	CheckedIn -> CheckedOut
//	CheckedOut, Refunded -> (none)
var transitions = map[ReservationStatus][]ReservationStatus{
	ReservationBooked:    {ReservationCheckedIn, ReservationRefunded},
	ReservationCheckedIn: {ReservationCheckedOut},
}

func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowedTransitions reports where a reservation may go from its current
// status. The admin front end uses this to build its action menus instead
// of keeping its own copy of the state machine.
func (s ReservationStatus) AllowedTransitions() []ReservationStatus {
	return transitions[s]
}

// CustomerLocked reports whether the customer reference is frozen. It is
// editable only before the reservation exists, so every persisted status
// locks it.
func (s ReservationStatus) CustomerLocked() bool { return true }

// RoomLocked mirrors CustomerLocked for the room reference.
func (s ReservationStatus) RoomLocked() bool { return true }

// DatesEditable reports whether check-in/check-out dates and the guest
// count may still change. Terminal reservations are frozen.
func (s ReservationStatus) DatesEditable() bool { return s.Active() }

type Reservation struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`
	RoomID     uuid.UUID `gorm:"type:uuid;index;not null" json:"roomId"`

	CheckInDate     time.Time         `gorm:"type:date;not null" json:"checkInDate"`
	CheckOutDate    time.Time         `gorm:"type:date;not null" json:"checkOutDate"`
	NumberOfGuests  int               `gorm:"not null" json:"numberOfGuests"`
	SpecialRequests string            `gorm:"type:text" json:"specialRequests"`
	Status          ReservationStatus `gorm:"type:varchar(20);index;default:'Booked'" json:"status"`

	// PaidAmount is recomputed as nights x room price on every save; a
	// caller-supplied value never survives validation.
	PaidAmount     decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"paidAmount"`
	RefundAmount   decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"refundAmount"`
	IncomeRecorded bool            `gorm:"default:false" json:"incomeRecorded"`
	RefundRecorded bool            `gorm:"default:false" json:"refundRecorded"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Room     *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Nights returns the length of stay for the half-open interval
// [CheckInDate, CheckOutDate), counted in calendar days. Plain duration
// division would lose a night when the stay crosses a DST change in a
// non-UTC location.
func (r *Reservation) Nights() int {
	y1, m1, d1 := r.CheckInDate.Date()
	y2, m2, d2 := r.CheckOutDate.Date()
	in := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	out := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(out.Sub(in).Hours() / 24)
}
