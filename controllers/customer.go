// controllers/customer.go
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

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name     string `json:"name" binding:"required"`
	IDNumber string `json:"idNumber" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Address  string `json:"address"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name     *string `json:"name"`
	IDNumber *string `json:"idNumber"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Address  *string `json:"address"`
}

// CreateCustomer creates a new customer
func CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Unique ID-number check ahead of the DB constraint for a clean error
	var existing models.Customer
	if err := config.DB.Where("id_number = ?", input.IDNumber).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "A customer with this ID number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	customer := models.Customer{
		ID:       uuid.New(),
		Name:     input.Name,
		IDNumber: input.IDNumber,
		Phone:    input.Phone,
		Email:    input.Email,
		Address:  input.Address,
	}
	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers
func GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Order("name").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func GetCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", customerUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer updates a customer. Blocked while the customer has a
// checked-in reservation.
func UpdateCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", customerUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	checkedIn, err := services.CustomerHasCheckedInReservations(config.DB, customer.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if checkedIn {
		utils.RespondWithError(c, http.StatusConflict, "Customer "+customer.Name+" is currently checked in and cannot be modified")
		return
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.IDNumber != nil {
		if customer.IDNumber != *input.IDNumber {
			var existing models.Customer
			if err := config.DB.Where("id_number = ?", *input.IDNumber).First(&existing).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another customer with this ID number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		customer.IDNumber = *input.IDNumber
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer deletes a customer without active reservations. The
// customer's reservation history is removed with it inside one transaction.
func DeleteCustomer(c *gin.Context) {
	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	engine := services.NewReservationService(config.DB)
	if err := engine.DeleteCustomer(c.Request.Context(), customerUUID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// BatchDeleteCustomers deletes many customers with an eager guard: one
// customer with active reservations aborts the whole batch.
func BatchDeleteCustomers(c *gin.Context) {
	var input struct {
		IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	engine := services.NewReservationService(config.DB)
	deleted, err := engine.BatchDeleteCustomers(c.Request.Context(), input.IDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
