// services/reservation_validate.go
package services

import (
	"fmt"
	"time"

	"hotelpro-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// validate runs the business-rule pipeline, short-circuiting on the first
// failure:
//
//  1. overdue check-in normalization
//  2. date ordering
//  3. paid-amount recomputation (nights x room price)
//  4. guest-count bounds and room capacity
//  5. date-range conflict detection against other active reservations
//
// Nothing is written here; persistence happens only after the pipeline
// passes.
func (s *ReservationService) validate(tx *gorm.DB, r *models.Reservation, room *models.Room) error {
	normalizeOverdue(r)

	if !r.CheckInDate.Before(r.CheckOutDate) {
		return &ValidationError{Field: "checkInDate", Message: "check-in date must be before check-out date"}
	}

	r.PaidAmount = room.Price.Mul(decimal.NewFromInt(int64(r.Nights())))

	if r.NumberOfGuests < 1 || r.NumberOfGuests > 100 {
		return &ValidationError{Field: "numberOfGuests", Message: "number of guests must be between 1 and 100"}
	}
	if r.NumberOfGuests > room.Capacity {
		return &ValidationError{
			Field:   "numberOfGuests",
			Message: fmt.Sprintf("guest count (%d) exceeds room capacity (%d)", r.NumberOfGuests, room.Capacity),
		}
	}

	conflict, err := hasConflict(tx, room.ID, r.CheckInDate, r.CheckOutDate, r.ID)
	if err != nil {
		return err
	}
	if conflict {
		return &ValidationError{
			Field:   "checkInDate",
			Message: fmt.Sprintf("room %s is already booked for this period", room.RoomNumber),
		}
	}
	return nil
}

// hasConflict reports whether another active reservation for the room
// overlaps the half-open interval [checkIn, checkOut). Two intervals
// [a,b) and [c,d) overlap iff a < d and c < b, so a check-out landing on
// another booking's check-in day is not a conflict.
func hasConflict(tx *gorm.DB, roomID uuid.UUID, checkIn, checkOut time.Time, excludeID uuid.UUID) (bool, error) {
	var count int64
	q := tx.Model(&models.Reservation{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []models.ReservationStatus{models.ReservationBooked, models.ReservationCheckedIn}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
