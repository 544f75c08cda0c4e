package controllers

import (
	"net/http"

	"attendpro-backend/models"
	"attendpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileController struct {
	db *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{db: db}
}

type UpdateProfileInput struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	BusinessName *string `json:"businessName"`
	DigestOptIn  *bool   `json:"digestOptIn"`
	DigestPhone  *string `json:"digestPhone"`
}

func (pc *ProfileController) Get(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	var user models.User
	if err := pc.db.First(&user, "id = ?", scope.UserID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":         user.Name,
		"email":        user.Email,
		"phone":        user.Phone,
		"businessName": user.BusinessName,
		"digestOptIn":  user.DigestOptIn,
		"digestPhone":  user.DigestPhone,
	})
}

func (pc *ProfileController) Update(c *gin.Context) {
	scope, err := scopeFromContext(c)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	if err := pc.db.First(&user, "id = ?", scope.UserID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		user.Phone = *input.Phone
	}
	if input.BusinessName != nil {
		user.BusinessName = *input.BusinessName
	}
	if input.DigestOptIn != nil {
		user.DigestOptIn = *input.DigestOptIn
	}
	if input.DigestPhone != nil {
		if *input.DigestPhone != "" && !utils.ValidatePhone(*input.DigestPhone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		user.DigestPhone = *input.DigestPhone
	}

	if err := pc.db.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
