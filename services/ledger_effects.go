// services/ledger_effects.go
//
// Ledger side effects of the reservation lifecycle. Both effects are
// idempotent: the income_recorded / refund_recorded flags flip false->true
// at most once per reservation, and the flag update happens inside the
// same transaction as the ledger insert, so a partial failure rolls both
// back together.
package services

import (
	"errors"
	"fmt"
	"time"

	"hotelpro-backend/models"
	"hotelpro-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// reservationDescription is the human-readable audit line embedded in
// ledger entries created by the engine.
func reservationDescription(r *models.Reservation, customerName, roomNumber string) string {
	return fmt.Sprintf("reservation #%s|customer:%s|room:%s|%s to %s (%d nights)|guests:%d",
		r.ID, customerName, roomNumber,
		r.CheckInDate.Format("2006-01-02"), r.CheckOutDate.Format("2006-01-02"),
		r.Nights(), r.NumberOfGuests)
}

// recordIncome creates the room-income ledger entry for a paid reservation
// that has not been recorded yet. customer may be nil, in which case it is
// loaded inside the transaction.
func (s *ReservationService) recordIncome(tx *gorm.DB, r *models.Reservation, customer *models.Customer, room *models.Room) error {
	if r.IncomeRecorded || !r.PaidAmount.IsPositive() {
		return nil
	}
	if customer == nil {
		customer = &models.Customer{}
		if err := tx.First(customer, "id = ?", r.CustomerID).Error; err != nil {
			return err
		}
	}

	income := models.Income{
		ID:            uuid.New(),
		Date:          utils.BeginningOfDay(time.Now()),
		Amount:        r.PaidAmount,
		Source:        models.IncomeSourceRoom,
		Description:   reservationDescription(r, customer.Name, room.RoomNumber),
		ReservationID: &r.ID,
	}
	if err := tx.Create(&income).Error; err != nil {
		return err
	}

	// Column update, not Save: the full pipeline must not re-run for a
	// flag flip.
	if err := tx.Model(&models.Reservation{}).Where("id = ?", r.ID).
		UpdateColumn("income_recorded", true).Error; err != nil {
		return err
	}
	r.IncomeRecorded = true
	return nil
}

// processRefund settles a cancellation: full refund of the paid amount as
// an expense entry, an annotation on the original income entry, and the
// refund flags on the reservation. Guarded by refund_recorded so it runs
// at most once.
func (s *ReservationService) processRefund(tx *gorm.DB, r *models.Reservation, room *models.Room) error {
	if r.RefundRecorded || !r.PaidAmount.IsPositive() {
		return nil
	}

	var customer models.Customer
	if err := tx.First(&customer, "id = ?", r.CustomerID).Error; err != nil {
		return err
	}

	// Full-refund policy: no partial refunds, no cancellation fees.
	r.RefundAmount = r.PaidAmount

	expense := models.Expense{
		ID:            uuid.New(),
		Date:          utils.BeginningOfDay(time.Now()),
		Amount:        r.RefundAmount,
		Category:      models.ExpenseOther,
		Description:   "refund-" + reservationDescription(r, customer.Name, room.RoomNumber) + "|refund:" + r.RefundAmount.StringFixed(2),
		ReservationID: &r.ID,
	}
	if err := tx.Create(&expense).Error; err != nil {
		return err
	}

	if r.IncomeRecorded {
		if err := annotateIncome(tx, r.ID, "|[refunded "+r.RefundAmount.StringFixed(2)+"]"); err != nil {
			return err
		}
	}

	if err := tx.Model(&models.Reservation{}).Where("id = ?", r.ID).
		UpdateColumns(map[string]interface{}{
			"refund_recorded": true,
			"refund_amount":   r.RefundAmount,
		}).Error; err != nil {
		return err
	}
	r.RefundRecorded = true
	return nil
}

// annotateIncome appends an audit marker to the income entry of a
// reservation. Ledger entries are append-only: descriptions grow, rows are
// never deleted. A missing entry is not an error.
func annotateIncome(tx *gorm.DB, reservationID uuid.UUID, note string) error {
	var income models.Income
	err := tx.Where("source = ? AND reservation_id = ?", models.IncomeSourceRoom, reservationID).
		First(&income).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return tx.Model(&models.Income{}).Where("id = ?", income.ID).
		UpdateColumn("description", income.Description+note).Error
}
