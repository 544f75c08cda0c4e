package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GenderMale        = "male"
	GenderFemale      = "female"
	GenderOther       = "other"
	GenderUnspecified = "unspecified"
)

type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name            string `gorm:"not null"`
	Age             int    `gorm:"not null"`
	Gender          string `gorm:"type:varchar(20);not null"`
	Mobile          string `gorm:"not null"`
	Email           string
	Address         string
	JoiningDate     time.Time
	ProfileImageRef string

	gorm.Model
}
