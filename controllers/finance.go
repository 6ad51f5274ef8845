// controllers/finance.go
//
// Manual ledger entries plus read access to the engine-generated ones.
// The ledger is append-only: there are no update or delete endpoints, and
// engine-created entries only ever gain description annotations.
package controllers

import (
	"net/http"

	"hotelpro-backend/config"
	"hotelpro-backend/models"
	"hotelpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateIncomeInput defines the expected JSON structure for a manual income entry
type CreateIncomeInput struct {
	Date        string          `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Source      string          `json:"source" binding:"required"`
	Description string          `json:"description"`
}

// CreateExpenseInput defines the expected JSON structure for a manual expense entry
type CreateExpenseInput struct {
	Date        string          `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
}

// CreateIncome records a manual income entry (food sales, misc income)
func CreateIncome(c *gin.Context) {
	var input CreateIncomeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	if !input.Amount.IsPositive() {
		utils.RespondWithError(c, http.StatusBadRequest, "Amount must be positive")
		return
	}
	if !models.IncomeSource(input.Source).Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown income source: "+input.Source)
		return
	}

	income := models.Income{
		ID:          uuid.New(),
		Date:        date,
		Amount:      input.Amount,
		Source:      models.IncomeSource(input.Source),
		Description: input.Description,
	}
	if err := config.DB.Create(&income).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create income entry")
		return
	}

	c.JSON(http.StatusCreated, income)
}

// GetIncomes retrieves income entries, optionally filtered by source,
// reservation or date range
func GetIncomes(c *gin.Context) {
	query := config.DB.Order("date DESC")

	if source := c.Query("source"); source != "" {
		query = query.Where("source = ?", source)
	}
	if reservationID := c.Query("reservationId"); reservationID != "" {
		query = query.Where("reservation_id = ?", reservationID)
	}
	if from := c.Query("from"); from != "" {
		date, err := utils.ParseDate(from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("date >= ?", date)
	}
	if to := c.Query("to"); to != "" {
		date, err := utils.ParseDate(to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("date <= ?", date)
	}

	var incomes []models.Income
	if err := query.Find(&incomes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve income entries")
		return
	}

	c.JSON(http.StatusOK, incomes)
}

// CreateExpense records a manual expense entry (salaries, maintenance,
// utilities)
func CreateExpense(c *gin.Context) {
	var input CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	if !input.Amount.IsPositive() {
		utils.RespondWithError(c, http.StatusBadRequest, "Amount must be positive")
		return
	}
	if !models.ExpenseCategory(input.Category).Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown expense category: "+input.Category)
		return
	}

	expense := models.Expense{
		ID:          uuid.New(),
		Date:        date,
		Amount:      input.Amount,
		Category:    models.ExpenseCategory(input.Category),
		Description: input.Description,
	}
	if err := config.DB.Create(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create expense entry")
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// GetExpenses retrieves expense entries, optionally filtered by category,
// reservation or date range
func GetExpenses(c *gin.Context) {
	query := config.DB.Order("date DESC")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if reservationID := c.Query("reservationId"); reservationID != "" {
		query = query.Where("reservation_id = ?", reservationID)
	}
	if from := c.Query("from"); from != "" {
		date, err := utils.ParseDate(from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("date >= ?", date)
	}
	if to := c.Query("to"); to != "" {
		date, err := utils.ParseDate(to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("date <= ?", date)
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expense entries")
		return
	}

	c.JSON(http.StatusOK, expenses)
}
