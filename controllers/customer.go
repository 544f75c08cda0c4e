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

type CustomerController struct {
	ledger *ledger.Ledger
}

func NewCustomerController(l *ledger.Ledger) *CustomerController {
	return &CustomerController{ledger: l}
}

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name            string      `json:"name" binding:"required"`
	Age             json.Number `json:"age" binding:"required"`
	Gender          string      `json:"gender" binding:"required"`
	Mobile          string      `json:"mobile" binding:"required"`
	Email           string      `json:"email"`
	Address         string      `json:"address"`
	JoiningDate     *time.Time  `json:"joiningDate"`
	ProfileImageRef string      `json:"profileImage"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name            *string      `json:"name"`
	Age             *json.Number `json:"age"`
	Gender          *string      `json:"gender"`
	Mobile          *string      `json:"mobile"`
	Email           *string      `json:"email"`
	Address         *string      `json:"address"`
	JoiningDate     *time.Time   `json:"joiningDate"`
	ProfileImageRef *string      `json:"profileImage"`
}

func (cc *CustomerController) Create(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	in := ledger.CustomerInput{
		Name:            input.Name,
		Age:             input.Age.String(),
		Gender:          input.Gender,
		Mobile:          input.Mobile,
		Email:           input.Email,
		Address:         input.Address,
		ProfileImageRef: input.ProfileImageRef,
	}
	if input.JoiningDate != nil {
		in.JoiningDate = *input.JoiningDate
	}

	customer, err := cc.ledger.CreateCustomer(scope, in)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// List supports ?search= substring filtering and ?sort=asc|desc name ordering.
func (cc *CustomerController) List(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	search := c.Query("search")
	order := ledger.SortOrder(c.DefaultQuery("sort", string(ledger.SortAsc)))

	customers, err := cc.ledger.SearchCustomers(scope, search, order)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

func (cc *CustomerController) Get(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	customer, err := cc.ledger.GetCustomer(scope, id)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (cc *CustomerController) Update(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	upd := ledger.CustomerUpdate{
		Name:            input.Name,
		Gender:          input.Gender,
		Mobile:          input.Mobile,
		Email:           input.Email,
		Address:         input.Address,
		JoiningDate:     input.JoiningDate,
		ProfileImageRef: input.ProfileImageRef,
	}
	if input.Age != nil {
		age := input.Age.String()
		upd.Age = &age
	}

	customer, err := cc.ledger.UpdateCustomer(scope, id, upd)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (cc *CustomerController) Delete(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	if err := cc.ledger.DeleteCustomer(scope, id); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
