package controllers

import (
	"net/http"

	"attendpro-backend/ledger"
	"attendpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryController struct {
	ledger *ledger.Ledger
}

func NewCategoryController(l *ledger.Ledger) *CategoryController {
	return &CategoryController{ledger: l}
}

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

func (cc *CategoryController) Create(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category, err := cc.ledger.CreateCategory(scope, input.Name)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (cc *CategoryController) List(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	categories, err := cc.ledger.ListCategories(scope)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (cc *CategoryController) Get(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	category, err := cc.ledger.GetCategory(scope, id)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// Update renames the category. Existing attendance records keep the name they
// captured at creation.
func (cc *CategoryController) Update(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category, err := cc.ledger.RenameCategory(scope, id, input.Name)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (cc *CategoryController) Delete(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	if err := cc.ledger.DeleteCategory(scope, id); err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
