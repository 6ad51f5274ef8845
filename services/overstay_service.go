// services/overstay_service.go
package services

import (
	"context"
	"log"
	"os"
	"time"

	"hotelpro-backend/models"
	"hotelpro-backend/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// OverstayService sweeps for reservations whose check-out date has passed
// while they were still checked in. The engine already rolls such rows
// forward lazily on every save; the sweep covers reservations nobody
// touches again.
type OverstayService struct {
	db     *gorm.DB
	engine *ReservationService
}

func NewOverstayService(db *gorm.DB) *OverstayService {
	return &OverstayService{db: db, engine: NewReservationService(db)}
}

func (s *OverstayService) StartScheduler() {
	c := cron.New()

	spec := os.Getenv("OVERSTAY_CRON")
	if spec == "" {
		// Every day at 2 AM
		spec = "0 2 * * *"
	}
	if _, err := c.AddFunc(spec, s.CheckOutOverdue); err != nil {
		log.Printf("Failed to schedule overstay sweep: %v", err)
		return
	}

	c.Start()
	log.Println("Overstay scheduler started")
}

// CheckOutOverdue transitions every overdue checked-in reservation to
// CheckedOut through the normal engine path, one transaction per
// reservation, so room status and ledger stay consistent.
func (s *OverstayService) CheckOutOverdue() {
	today := utils.BeginningOfDay(time.Now())

	var overdue []models.Reservation
	if err := s.db.
		Where("status = ? AND check_out_date < ?", models.ReservationCheckedIn, today).
		Find(&overdue).Error; err != nil {
		log.Printf("Overstay sweep query failed: %v", err)
		return
	}

	checkedOut := 0
	for _, r := range overdue {
		if _, err := s.engine.Transition(context.Background(), r.ID, models.ReservationCheckedOut); err != nil {
			log.Printf("Overstay sweep: reservation %s: %v", r.ID, err)
			continue
		}
		checkedOut++
	}
	if len(overdue) > 0 {
		log.Printf("Overstay sweep checked out %d of %d overdue reservations", checkedOut, len(overdue))
	}
}
