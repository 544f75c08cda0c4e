package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"attendpro-backend/ledger"
	"attendpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AttendanceController struct {
	ledger *ledger.Ledger
}

func NewAttendanceController(l *ledger.Ledger) *AttendanceController {
	return &AttendanceController{ledger: l}
}

// CreateAttendanceInput defines the expected JSON structure for a check-in.
// Customer and service arrive as ids; their names are captured by the ledger.
type CreateAttendanceInput struct {
	CustomerID string      `json:"customerId" binding:"required"`
	ServiceID  string      `json:"serviceId" binding:"required"`
	Amount     json.Number `json:"amount" binding:"required"`
	Date       *time.Time  `json:"date"`
	Status     string      `json:"status"`
}

// UpdateAttendanceInput carries amount and status only; the record's customer
// and service cannot be changed after creation.
type UpdateAttendanceInput struct {
	Amount *json.Number `json:"amount"`
	Status *string      `json:"status"`
}

func (ac *AttendanceController) Create(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	var input CreateAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	in := ledger.AttendanceInput{
		CustomerID: input.CustomerID,
		ServiceID:  input.ServiceID,
		Amount:     input.Amount.String(),
		Status:     input.Status,
	}
	if input.Date != nil {
		in.Date = *input.Date
	}

	record, err := ac.ledger.CreateAttendance(scope, in)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// List returns the full history, or the day-granularity range
// ?start=2006-01-02&end=2006-01-02 with an optional ?search= customer-name
// substring.
func (ac *AttendanceController) List(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	startParam := c.Query("start")
	endParam := c.Query("end")
	search := c.Query("search")

	if startParam == "" && endParam == "" && search == "" {
		records, err := ac.ledger.ListAttendance(scope)
		if err != nil {
			respondLedgerError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	start, end, err := parseDateRange(startParam, endParam)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	records, err := ac.ledger.FilterAttendance(scope, start, end, search)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (ac *AttendanceController) Get(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return
	}

	record, err := ac.ledger.GetAttendance(scope, id)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (ac *AttendanceController) Update(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return
	}

	var input UpdateAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	upd := ledger.AttendanceUpdate{Status: input.Status}
	if input.Amount != nil {
		amount := input.Amount.String()
		upd.Amount = &amount
	}

	record, err := ac.ledger.UpdateAttendance(scope, id, upd)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (ac *AttendanceController) Delete(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return
	}

	if err := ac.ledger.DeleteAttendance(scope, id); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}
