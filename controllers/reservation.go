// controllers/reservation.go
package controllers

import (
	"errors"
	"net/http"

	"hotelpro-backend/config"
	"hotelpro-backend/models"
	"hotelpro-backend/services"
	"hotelpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateReservationInput defines the expected JSON structure for creating a reservation
type CreateReservationInput struct {
	CustomerID      uuid.UUID `json:"customerId" binding:"required"`
	RoomID          uuid.UUID `json:"roomId" binding:"required"`
	CheckInDate     string    `json:"checkInDate" binding:"required"`
	CheckOutDate    string    `json:"checkOutDate" binding:"required"`
	NumberOfGuests  int       `json:"numberOfGuests" binding:"required"`
	SpecialRequests string    `json:"specialRequests"`
	Status          string    `json:"status" binding:"omitempty,oneof=Booked CheckedIn"`
}

// UpdateReservationInput defines the expected JSON structure for updating a reservation
type UpdateReservationInput struct {
	CustomerID      *uuid.UUID `json:"customerId"`
	RoomID          *uuid.UUID `json:"roomId"`
	CheckInDate     *string    `json:"checkInDate"`
	CheckOutDate    *string    `json:"checkOutDate"`
	NumberOfGuests  *int       `json:"numberOfGuests"`
	SpecialRequests *string    `json:"specialRequests"`
	Status          *string    `json:"status"`
}

// respondServiceError maps engine errors onto HTTP statuses: validation
// failures are 422, guard rejections 409, missing entities 404.
func respondServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	var gErr *services.GuardError
	var nErr *services.NotFoundError
	switch {
	case errors.As(err, &vErr):
		utils.RespondWithError(c, http.StatusUnprocessableEntity, vErr.Message)
	case errors.As(err, &gErr):
		utils.RespondWithError(c, http.StatusConflict, gErr.Message)
	case errors.As(err, &nErr):
		utils.RespondWithError(c, http.StatusNotFound, nErr.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

// CreateReservation creates a new reservation through the lifecycle engine
func CreateReservation(c *gin.Context) {
	var input CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	checkIn, err := utils.ParseDate(input.CheckInDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid check-in date, expected YYYY-MM-DD")
		return
	}
	checkOut, err := utils.ParseDate(input.CheckOutDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid check-out date, expected YYYY-MM-DD")
		return
	}

	engine := services.NewReservationService(config.DB)
	reservation, err := engine.Create(c.Request.Context(), services.CreateReservationInput{
		CustomerID:      input.CustomerID,
		RoomID:          input.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  input.NumberOfGuests,
		SpecialRequests: input.SpecialRequests,
		Status:          models.ReservationStatus(input.Status),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

// GetReservations retrieves reservations, optionally filtered by status,
// room or customer
func GetReservations(c *gin.Context) {
	query := config.DB.Preload("Customer").Preload("Room").Order("check_in_date DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if roomID := c.Query("roomId"); roomID != "" {
		query = query.Where("room_id = ?", roomID)
	}
	if customerID := c.Query("customerId"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reservations")
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// GetReservation retrieves a specific reservation by ID
func GetReservation(c *gin.Context) {
	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	var reservation models.Reservation
	if err := config.DB.Preload("Customer").Preload("Room").
		First(&reservation, "id = ?", reservationUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// GetReservationTransitions reports which status transitions and field
// edits the current state allows. The front end builds its menus from
// this instead of hard-coding the state machine.
func GetReservationTransitions(c *gin.Context) {
	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	var reservation models.Reservation
	if err := config.DB.First(&reservation, "id = ?", reservationUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	status := reservation.Status
	allowed := status.AllowedTransitions()
	if allowed == nil {
		allowed = []models.ReservationStatus{}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":             status,
		"allowedTransitions": allowed,
		"datesEditable":      status.DatesEditable(),
		"customerEditable":   !status.CustomerLocked(),
		"roomEditable":       !status.RoomLocked(),
		"deletable":          status.Terminal(),
	})
}

// UpdateReservation applies a partial edit through the lifecycle engine
func UpdateReservation(c *gin.Context) {
	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	var input UpdateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	update := services.UpdateReservationInput{
		CustomerID:      input.CustomerID,
		RoomID:          input.RoomID,
		NumberOfGuests:  input.NumberOfGuests,
		SpecialRequests: input.SpecialRequests,
	}
	if input.CheckInDate != nil {
		checkIn, err := utils.ParseDate(*input.CheckInDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid check-in date, expected YYYY-MM-DD")
			return
		}
		update.CheckInDate = &checkIn
	}
	if input.CheckOutDate != nil {
		checkOut, err := utils.ParseDate(*input.CheckOutDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid check-out date, expected YYYY-MM-DD")
			return
		}
		update.CheckOutDate = &checkOut
	}
	if input.Status != nil {
		status := models.ReservationStatus(*input.Status)
		update.Status = &status
	}

	engine := services.NewReservationService(config.DB)
	reservation, err := engine.Update(c.Request.Context(), reservationUUID, update)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// TransitionReservation changes only the reservation status
func TransitionReservation(c *gin.Context) {
	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	engine := services.NewReservationService(config.DB)
	reservation, err := engine.Transition(c.Request.Context(), reservationUUID, models.ReservationStatus(input.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// DeleteReservation deletes a finished reservation
func DeleteReservation(c *gin.Context) {
	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	engine := services.NewReservationService(config.DB)
	if err := engine.Delete(c.Request.Context(), reservationUUID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}

// BatchReservationAction runs a bulk check-in, check-out, cancellation or
// deletion over the selected reservations
func BatchReservationAction(c *gin.Context) {
	action := c.Param("action")

	var input struct {
		IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	engine := services.NewReservationService(config.DB)

	var result *services.BatchResult
	var err error
	switch action {
	case "checkin":
		result, err = engine.BatchTransition(c.Request.Context(), input.IDs, models.ReservationCheckedIn)
	case "checkout":
		result, err = engine.BatchTransition(c.Request.Context(), input.IDs, models.ReservationCheckedOut)
	case "cancel":
		result, err = engine.BatchTransition(c.Request.Context(), input.IDs, models.ReservationRefunded)
	case "delete":
		result, err = engine.BatchDelete(c.Request.Context(), input.IDs)
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown batch action: "+action)
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
