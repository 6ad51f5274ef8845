// services/room_status.go
package services

import (
	"hotelpro-backend/models"

	"gorm.io/gorm"
)

// computeRoomStatus derives a room's status from its active reservations:
// any checked-in guest wins, then any booking, then Available. Maintenance
// is preserved only when nothing active references the room.
func computeRoomStatus(tx *gorm.DB, room *models.Room) (models.RoomStatus, error) {
	var checkedIn, booked int64
	if err := tx.Model(&models.Reservation{}).
		Where("room_id = ? AND status = ?", room.ID, models.ReservationCheckedIn).
		Count(&checkedIn).Error; err != nil {
		return "", err
	}
	if checkedIn > 0 {
		return models.RoomOccupied, nil
	}
	if err := tx.Model(&models.Reservation{}).
		Where("room_id = ? AND status = ?", room.ID, models.ReservationBooked).
		Count(&booked).Error; err != nil {
		return "", err
	}
	if booked > 0 {
		return models.RoomBooked, nil
	}
	if room.Status == models.RoomMaintenance {
		return models.RoomMaintenance, nil
	}
	return models.RoomAvailable, nil
}

// syncRoomStatus recomputes and persists the room status, writing only
// when the value actually changed.
func syncRoomStatus(tx *gorm.DB, room *models.Room) error {
	next, err := computeRoomStatus(tx, room)
	if err != nil {
		return err
	}
	if next == room.Status {
		return nil
	}
	room.Status = next
	return tx.Model(&models.Room{}).Where("id = ?", room.ID).
		UpdateColumn("status", next).Error
}
