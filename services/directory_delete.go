// services/directory_delete.go
//
// Room and customer deletion. Both are guarded against active reservations;
// terminal (CheckedOut/Refunded) reservations referencing the entity are
// removed in the same transaction, with the usual ledger treatment, so the
// delete never leaves rows pointing at a missing room or customer.
package services

import (
	"context"
	"errors"
	"fmt"

	"hotelpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// purgeReservation removes a single terminal reservation: unprocessed
// refunds are settled, the income entry gets its deletion marker, then the
// row goes away. Room status is the caller's concern.
func (s *ReservationService) purgeReservation(tx *gorm.DB, r *models.Reservation, room *models.Room) error {
	// CheckedOut stays paid on deletion; only Refunded rows with an
	// unprocessed refund settle here.
	if r.Status == models.ReservationRefunded && r.PaidAmount.IsPositive() && !r.RefundRecorded {
		if err := s.processRefund(tx, r, room); err != nil {
			return err
		}
	}
	if r.IncomeRecorded {
		if err := annotateIncome(tx, r.ID, "|[reservation deleted]"); err != nil {
			return err
		}
	}
	return tx.Delete(&models.Reservation{}, "id = ?", r.ID).Error
}

// DeleteRoom removes a room and, with it, the room's reservation history.
func (s *ReservationService) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := lockRoom(tx, id)
		if err != nil {
			return err
		}

		var active int64
		if err := tx.Model(&models.Reservation{}).
			Where("room_id = ? AND status IN ?", id, activeStatuses()).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return &GuardError{Message: fmt.Sprintf("room %s has active reservations and cannot be deleted", room.RoomNumber)}
		}

		var history []models.Reservation
		if err := tx.Where("room_id = ?", id).Find(&history).Error; err != nil {
			return err
		}
		for i := range history {
			if err := s.purgeReservation(tx, &history[i], room); err != nil {
				return err
			}
		}

		return tx.Delete(&models.Room{}, "id = ?", id).Error
	})
}

// DeleteCustomer removes a customer and the customer's reservation history.
func (s *ReservationService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "customer"}
			}
			return err
		}

		var active int64
		if err := tx.Model(&models.Reservation{}).
			Where("customer_id = ? AND status IN ?", id, activeStatuses()).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return &GuardError{Message: fmt.Sprintf("customer %s has active reservations and cannot be deleted", customer.Name)}
		}

		var history []models.Reservation
		if err := tx.Where("customer_id = ?", id).Find(&history).Error; err != nil {
			return err
		}
		for i := range history {
			room, err := lockRoom(tx, history[i].RoomID)
			if err != nil {
				return err
			}
			if err := s.purgeReservation(tx, &history[i], room); err != nil {
				return err
			}
		}

		return tx.Delete(&models.Customer{}, "id = ?", id).Error
	})
}

// BatchDeleteRooms deletes many rooms with an eager guard: one room with
// active reservations aborts the whole batch before anything is removed.
// Returns how many rooms were deleted.
func (s *ReservationService) BatchDeleteRooms(ctx context.Context, ids []uuid.UUID) (int, error) {
	var active int64
	if err := s.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("room_id IN ? AND status IN ?", ids, activeStatuses()).
		Count(&active).Error; err != nil {
		return 0, err
	}
	if active > 0 {
		return 0, &GuardError{Message: fmt.Sprintf("operation cancelled: %d active reservations still reference the selected rooms", active)}
	}

	deleted := 0
	for _, id := range ids {
		if err := s.DeleteRoom(ctx, id); err != nil {
			if errors.As(err, new(*NotFoundError)) {
				continue
			}
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

// BatchDeleteCustomers mirrors BatchDeleteRooms for customers.
func (s *ReservationService) BatchDeleteCustomers(ctx context.Context, ids []uuid.UUID) (int, error) {
	var active int64
	if err := s.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("customer_id IN ? AND status IN ?", ids, activeStatuses()).
		Count(&active).Error; err != nil {
		return 0, err
	}
	if active > 0 {
		return 0, &GuardError{Message: fmt.Sprintf("operation cancelled: %d active reservations still reference the selected customers", active)}
	}

	deleted := 0
	for _, id := range ids {
		if err := s.DeleteCustomer(ctx, id); err != nil {
			if errors.As(err, new(*NotFoundError)) {
				continue
			}
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}
