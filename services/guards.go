// services/guards.go
package services

import (
	"hotelpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func activeStatuses() []models.ReservationStatus {
	return []models.ReservationStatus{models.ReservationBooked, models.ReservationCheckedIn}
}

// RoomHasActiveReservations reports whether any Booked or CheckedIn
// reservation still references the room. Rooms with active reservations
// cannot be edited or deleted.
func RoomHasActiveReservations(db *gorm.DB, roomID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&models.Reservation{}).
		Where("room_id = ? AND status IN ?", roomID, activeStatuses()).
		Count(&count).Error
	return count > 0, err
}

// CustomerHasActiveReservations guards customer deletion.
func CustomerHasActiveReservations(db *gorm.DB, customerID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&models.Reservation{}).
		Where("customer_id = ? AND status IN ?", customerID, activeStatuses()).
		Count(&count).Error
	return count > 0, err
}

// CustomerHasCheckedInReservations guards customer edits: a customer with
// a guest in house cannot be modified.
func CustomerHasCheckedInReservations(db *gorm.DB, customerID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&models.Reservation{}).
		Where("customer_id = ? AND status = ?", customerID, models.ReservationCheckedIn).
		Count(&count).Error
	return count > 0, err
}
