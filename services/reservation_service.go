// services/reservation_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelpro-backend/models"
	"hotelpro-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationService owns the reservation lifecycle. Every operation runs
// inside a single database transaction covering the reservation write, the
// room-status recomputation and the ledger side effects, so a failure in
// any of them rolls the whole operation back.
type ReservationService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db, notifier: defaultNotifier()}
}

type CreateReservationInput struct {
	CustomerID      uuid.UUID
	RoomID          uuid.UUID
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumberOfGuests  int
	SpecialRequests string
	Status          models.ReservationStatus
}

type UpdateReservationInput struct {
	CustomerID      *uuid.UUID
	RoomID          *uuid.UUID
	CheckInDate     *time.Time
	CheckOutDate    *time.Time
	NumberOfGuests  *int
	SpecialRequests *string
	Status          *models.ReservationStatus
}

// BatchResult reports per-item outcomes for batch operations.
type BatchResult struct {
	Succeeded []uuid.UUID  `json:"succeeded"`
	Blocked   []BatchError `json:"blocked"`
}

type BatchError struct {
	ID     uuid.UUID `json:"id"`
	Reason string    `json:"reason"`
}

// Create validates and persists a new reservation, then brings the room
// status and the ledger in line with it.
func (s *ReservationService) Create(ctx context.Context, input CreateReservationInput) (*models.Reservation, error) {
	status := input.Status
	if status == "" {
		status = models.ReservationBooked
	}
	if status != models.ReservationBooked && status != models.ReservationCheckedIn {
		return nil, &ValidationError{Field: "status", Message: "new reservations must start as Booked or CheckedIn"}
	}

	var reservation *models.Reservation
	var customer models.Customer

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&customer, "id = ?", input.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "customer"}
			}
			return err
		}

		room, err := lockRoom(tx, input.RoomID)
		if err != nil {
			return err
		}

		r := &models.Reservation{
			ID:              uuid.New(),
			CustomerID:      customer.ID,
			RoomID:          room.ID,
			CheckInDate:     utils.BeginningOfDay(input.CheckInDate),
			CheckOutDate:    utils.BeginningOfDay(input.CheckOutDate),
			NumberOfGuests:  input.NumberOfGuests,
			SpecialRequests: input.SpecialRequests,
			Status:          status,
		}

		if err := s.validate(tx, r, room); err != nil {
			return err
		}
		if err := tx.Create(r).Error; err != nil {
			return err
		}
		if err := syncRoomStatus(tx, room); err != nil {
			return err
		}
		if err := s.recordIncome(tx, r, &customer, room); err != nil {
			return err
		}

		reservation = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.SendBookingConfirmation(&customer, reservation)
	return reservation, nil
}

// Update applies a partial edit and re-runs the full validation pipeline.
// Room and customer are frozen after creation; dates and guest counts stay
// editable while the reservation is active.
func (s *ReservationService) Update(ctx context.Context, id uuid.UUID, input UpdateReservationInput) (*models.Reservation, error) {
	var reservation *models.Reservation
	var refunded bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r models.Reservation
		if err := tx.First(&r, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "reservation"}
			}
			return err
		}

		room, err := lockRoom(tx, r.RoomID)
		if err != nil {
			return err
		}

		// Overdue check-ins roll forward before any other rule runs.
		normalizeOverdue(&r)
		prevStatus := r.Status

		if input.CustomerID != nil && *input.CustomerID != r.CustomerID {
			return &ValidationError{Field: "customerId", Message: "customer cannot be changed after creation"}
		}
		if input.RoomID != nil && *input.RoomID != r.RoomID {
			return &ValidationError{Field: "roomId", Message: "room cannot be changed after creation"}
		}

		datesTouched := input.CheckInDate != nil || input.CheckOutDate != nil || input.NumberOfGuests != nil
		if datesTouched && !r.Status.DatesEditable() {
			return &ValidationError{Field: "status", Message: fmt.Sprintf("a %s reservation can no longer be modified", r.Status)}
		}
		if input.CheckInDate != nil {
			r.CheckInDate = utils.BeginningOfDay(*input.CheckInDate)
		}
		if input.CheckOutDate != nil {
			r.CheckOutDate = utils.BeginningOfDay(*input.CheckOutDate)
		}
		if input.NumberOfGuests != nil {
			r.NumberOfGuests = *input.NumberOfGuests
		}
		if input.SpecialRequests != nil {
			r.SpecialRequests = *input.SpecialRequests
		}
		if input.Status != nil && *input.Status != r.Status {
			if err := checkTransition(r.Status, *input.Status); err != nil {
				return err
			}
			r.Status = *input.Status
		}

		if err := s.validate(tx, &r, room); err != nil {
			return err
		}
		if err := tx.Save(&r).Error; err != nil {
			return err
		}
		if err := syncRoomStatus(tx, room); err != nil {
			return err
		}
		if err := s.recordIncome(tx, &r, nil, room); err != nil {
			return err
		}
		if prevStatus != models.ReservationRefunded && r.Status == models.ReservationRefunded {
			if err := s.processRefund(tx, &r, room); err != nil {
				return err
			}
			refunded = true
		}

		reservation = &r
		return nil
	})
	if err != nil {
		return nil, err
	}

	if refunded {
		s.notifyRefund(ctx, reservation)
	}
	return reservation, nil
}

// Transition changes only the reservation status.
func (s *ReservationService) Transition(ctx context.Context, id uuid.UUID, next models.ReservationStatus) (*models.Reservation, error) {
	if !next.Valid() {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown reservation status %q", next)}
	}
	return s.Update(ctx, id, UpdateReservationInput{Status: &next})
}

// Delete removes a finished reservation. Active reservations are guarded;
// unprocessed refunds are settled first, the income entry is annotated and
// the room status recomputed, all inside one transaction.
func (s *ReservationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r models.Reservation
		if err := tx.First(&r, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "reservation"}
			}
			return err
		}
		if r.Status.Active() {
			return &GuardError{Message: fmt.Sprintf("reservation is %s; check out or refund it before deleting", r.Status)}
		}

		// The room reference must be captured before the row goes away.
		room, err := lockRoom(tx, r.RoomID)
		if err != nil {
			return err
		}

		if err := s.purgeReservation(tx, &r, room); err != nil {
			return err
		}
		return syncRoomStatus(tx, room)
	})
}

// BatchTransition applies one status change to many reservations. Refund
// batches are guarded eagerly: one checked-in selection aborts the whole
// batch before anything mutates. Otherwise each reservation commits in its
// own transaction and failures are reported per item.
func (s *ReservationService) BatchTransition(ctx context.Context, ids []uuid.UUID, target models.ReservationStatus) (*BatchResult, error) {
	if !target.Valid() {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown reservation status %q", target)}
	}

	if target == models.ReservationRefunded {
		var checkedIn int64
		if err := s.db.WithContext(ctx).Model(&models.Reservation{}).
			Where("id IN ? AND status = ?", ids, models.ReservationCheckedIn).
			Count(&checkedIn).Error; err != nil {
			return nil, err
		}
		if checkedIn > 0 {
			return nil, &GuardError{Message: fmt.Sprintf("operation cancelled: %d checked-in reservations cannot be refunded; check out first", checkedIn)}
		}
	}

	result := &BatchResult{}
	for _, id := range ids {
		if _, err := s.Transition(ctx, id, target); err != nil {
			result.Blocked = append(result.Blocked, BatchError{ID: id, Reason: err.Error()})
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}
	return result, nil
}

// BatchDelete deletes many reservations with an eager guard: any active
// selection aborts the whole batch.
func (s *ReservationService) BatchDelete(ctx context.Context, ids []uuid.UUID) (*BatchResult, error) {
	var active int64
	if err := s.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("id IN ? AND status IN ?", ids, []models.ReservationStatus{models.ReservationBooked, models.ReservationCheckedIn}).
		Count(&active).Error; err != nil {
		return nil, err
	}
	if active > 0 {
		return nil, &GuardError{Message: fmt.Sprintf("operation cancelled: %d active reservations cannot be deleted; check them out or refund them first", active)}
	}

	result := &BatchResult{}
	for _, id := range ids {
		if err := s.Delete(ctx, id); err != nil {
			result.Blocked = append(result.Blocked, BatchError{ID: id, Reason: err.Error()})
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}
	return result, nil
}

// lockRoom reads the room under a FOR UPDATE lock so concurrent bookings
// for the same room serialize before the conflict check runs. SQLite has
// no row locks and serializes writers on its own, so the clause is only
// emitted on postgres.
func lockRoom(tx *gorm.DB, id uuid.UUID) (*models.Room, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var room models.Room
	if err := q.First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "room"}
		}
		return nil, err
	}
	return &room, nil
}

// checkTransition enforces the state machine for an explicit status edit.
func checkTransition(from, to models.ReservationStatus) error {
	if !to.Valid() {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("unknown reservation status %q", to)}
	}
	if from == models.ReservationCheckedIn && to == models.ReservationRefunded {
		return &ValidationError{Field: "status", Message: "checked-in reservations cannot be refunded directly; check out first"}
	}
	if !from.CanTransitionTo(to) {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("cannot transition a %s reservation to %s", from, to)}
	}
	return nil
}

// normalizeOverdue silently checks out a reservation whose check-out date
// has passed while it was still checked in.
func normalizeOverdue(r *models.Reservation) {
	today := utils.BeginningOfDay(time.Now())
	if r.Status == models.ReservationCheckedIn && r.CheckOutDate.Before(today) {
		r.Status = models.ReservationCheckedOut
	}
}

func (s *ReservationService) notifyRefund(ctx context.Context, r *models.Reservation) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, "id = ?", r.CustomerID).Error; err != nil {
		return
	}
	s.notifier.SendRefundNotice(&customer, r)
}
