// controllers/employee.go
package controllers

import (
	"errors"
	"net/http"

	"hotelpro-backend/config"
	"hotelpro-backend/models"
	"hotelpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateEmployeeInput struct {
	Name     string          `json:"name" binding:"required"`
	Position string          `json:"position" binding:"required"`
	Phone    string          `json:"phone"`
	Email    string          `json:"email" binding:"omitempty,email"`
	Address  string          `json:"address"`
	Salary   decimal.Decimal `json:"salary"`
	HireDate string          `json:"hireDate" binding:"required"`
	Status   string          `json:"status" binding:"omitempty,oneof=Active OnLeave Resigned"`
}

type UpdateEmployeeInput struct {
	Name     *string          `json:"name"`
	Position *string          `json:"position"`
	Phone    *string          `json:"phone"`
	Email    *string          `json:"email" binding:"omitempty,email"`
	Address  *string          `json:"address"`
	Salary   *decimal.Decimal `json:"salary"`
	HireDate *string          `json:"hireDate"`
	Status   *string          `json:"status" binding:"omitempty,oneof=Active OnLeave Resigned"`
}

func AddEmployee(c *gin.Context) {
	var input CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	hireDate, err := utils.ParseDate(input.HireDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid hire date, expected YYYY-MM-DD")
		return
	}

	status := models.EmployeeStatus(input.Status)
	if status == "" {
		status = models.EmployeeActive
	}

	employee := models.Employee{
		ID:       uuid.New(),
		Name:     input.Name,
		Position: input.Position,
		Phone:    input.Phone,
		Email:    input.Email,
		Address:  input.Address,
		Salary:   input.Salary,
		HireDate: hireDate,
		Status:   status,
	}
	if err := config.DB.Create(&employee).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func GetEmployees(c *gin.Context) {
	query := config.DB.Order("name")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var employees []models.Employee
	if err := query.Find(&employees).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve employees")
		return
	}

	c.JSON(http.StatusOK, employees)
}

func UpdateEmployee(c *gin.Context) {
	employeeUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	var input UpdateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, "id = ?", employeeUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Position != nil {
		employee.Position = *input.Position
	}
	if input.Phone != nil {
		employee.Phone = *input.Phone
	}
	if input.Email != nil {
		employee.Email = *input.Email
	}
	if input.Address != nil {
		employee.Address = *input.Address
	}
	if input.Salary != nil {
		employee.Salary = *input.Salary
	}
	if input.HireDate != nil {
		hireDate, err := utils.ParseDate(*input.HireDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid hire date, expected YYYY-MM-DD")
			return
		}
		employee.HireDate = hireDate
	}
	if input.Status != nil {
		employee.Status = models.EmployeeStatus(*input.Status)
	}

	if err := config.DB.Save(&employee).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update employee")
		return
	}

	c.JSON(http.StatusOK, employee)
}

func DeleteEmployee(c *gin.Context) {
	employeeUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	result := config.DB.Delete(&models.Employee{}, "id = ?", employeeUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete employee")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
