// controllers/room.go
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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateRoomInput defines the expected JSON structure for creating a room
type CreateRoomInput struct {
	RoomNumber  string          `json:"roomNumber" binding:"required"`
	RoomType    string          `json:"roomType" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Floor       int             `json:"floor"`
	Capacity    int             `json:"capacity" binding:"required"`
	Facilities  string          `json:"facilities"`
	Description string          `json:"description"`
}

// UpdateRoomInput defines the expected JSON structure for updating a room
type UpdateRoomInput struct {
	RoomNumber  *string          `json:"roomNumber"`
	RoomType    *string          `json:"roomType"`
	Price       *decimal.Decimal `json:"price"`
	Floor       *int             `json:"floor"`
	Capacity    *int             `json:"capacity"`
	Facilities  *string          `json:"facilities"`
	Description *string          `json:"description"`
}

// CreateRoom creates a new room
func CreateRoom(c *gin.Context) {
	var input CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateRoomNumber(input.RoomNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Room number must be three digits, e.g. 101")
		return
	}
	if !models.RoomType(input.RoomType).Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown room type: "+input.RoomType)
		return
	}
	if !input.Price.IsPositive() {
		utils.RespondWithError(c, http.StatusBadRequest, "Price must be positive")
		return
	}
	if input.Capacity < 1 {
		utils.RespondWithError(c, http.StatusBadRequest, "Capacity must be at least 1")
		return
	}

	// Unique room number check ahead of the DB constraint for a clean error
	var existing models.Room
	if err := config.DB.Where("room_number = ?", input.RoomNumber).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "A room with this number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	room := models.Room{
		ID:          uuid.New(),
		RoomNumber:  input.RoomNumber,
		RoomType:    models.RoomType(input.RoomType),
		Price:       input.Price,
		Floor:       input.Floor,
		Capacity:    input.Capacity,
		Facilities:  input.Facilities,
		Description: input.Description,
		Status:      models.RoomAvailable,
	}
	if err := config.DB.Create(&room).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create room")
		return
	}

	c.JSON(http.StatusCreated, room)
}

// GetRooms retrieves all rooms, optionally filtered by status or type
func GetRooms(c *gin.Context) {
	query := config.DB.Order("room_number")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if roomType := c.Query("type"); roomType != "" {
		query = query.Where("room_type = ?", roomType)
	}

	var rooms []models.Room
	if err := query.Find(&rooms).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve rooms")
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// GetRoom retrieves a specific room by ID
func GetRoom(c *gin.Context) {
	roomUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid room ID format")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, "id = ?", roomUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Room not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, room)
}

// UpdateRoom updates a room. Blocked while the room has active
// reservations.
func UpdateRoom(c *gin.Context) {
	roomUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid room ID format")
		return
	}

	var input UpdateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var room models.Room
	if err := config.DB.First(&room, "id = ?", roomUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Room not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	active, err := services.RoomHasActiveReservations(config.DB, room.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if active {
		utils.RespondWithError(c, http.StatusConflict, "Room "+room.RoomNumber+" has active reservations and cannot be modified")
		return
	}

	if input.RoomNumber != nil {
		if !utils.ValidateRoomNumber(*input.RoomNumber) {
			utils.RespondWithError(c, http.StatusBadRequest, "Room number must be three digits, e.g. 101")
			return
		}
		if room.RoomNumber != *input.RoomNumber {
			var existing models.Room
			if err := config.DB.Where("room_number = ?", *input.RoomNumber).First(&existing).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "A room with this number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		room.RoomNumber = *input.RoomNumber
	}
	if input.RoomType != nil {
		if !models.RoomType(*input.RoomType).Valid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown room type: "+*input.RoomType)
			return
		}
		room.RoomType = models.RoomType(*input.RoomType)
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			utils.RespondWithError(c, http.StatusBadRequest, "Price must be positive")
			return
		}
		room.Price = *input.Price
	}
	if input.Floor != nil {
		room.Floor = *input.Floor
	}
	if input.Capacity != nil {
		if *input.Capacity < 1 {
			utils.RespondWithError(c, http.StatusBadRequest, "Capacity must be at least 1")
			return
		}
		room.Capacity = *input.Capacity
	}
	if input.Facilities != nil {
		room.Facilities = *input.Facilities
	}
	if input.Description != nil {
		room.Description = *input.Description
	}

	if err := config.DB.Save(&room).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update room")
		return
	}

	c.JSON(http.StatusOK, room)
}

// SetRoomStatus toggles a room between Available and Maintenance. The
// derived statuses (Booked, Occupied) belong to the engine and cannot be
// set by hand.
func SetRoomStatus(c *gin.Context) {
	roomUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid room ID format")
		return
	}

	var input struct {
		Status string `json:"status" binding:"required,oneof=Available Maintenance"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var room models.Room
	if err := config.DB.First(&room, "id = ?", roomUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Room not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	active, err := services.RoomHasActiveReservations(config.DB, room.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if active {
		utils.RespondWithError(c, http.StatusConflict, "Room "+room.RoomNumber+" has active reservations; its status is managed by the reservation engine")
		return
	}

	room.Status = models.RoomStatus(input.Status)
	if err := config.DB.Model(&models.Room{}).Where("id = ?", room.ID).
		UpdateColumn("status", room.Status).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update room status")
		return
	}

	c.JSON(http.StatusOK, room)
}

// DeleteRoom deletes a room without active reservations. The room's
// reservation history is removed with it inside one transaction.
func DeleteRoom(c *gin.Context) {
	roomUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid room ID format")
		return
	}

	engine := services.NewReservationService(config.DB)
	if err := engine.DeleteRoom(c.Request.Context(), roomUUID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}

// BatchDeleteRooms deletes many rooms with an eager guard: one room with
// active reservations aborts the whole batch before anything is removed.
func BatchDeleteRooms(c *gin.Context) {
	var input struct {
		IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	engine := services.NewReservationService(config.DB)
	deleted, err := engine.BatchDeleteRooms(c.Request.Context(), input.IDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
