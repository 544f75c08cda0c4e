package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusWon  = "Won"
	StatusLost = "Lost"
)

// Attendance is one billable visit. CustomerName and ServiceName are captured
// at creation time so the transaction history stays accurate even after the
// referenced customer or category is renamed or deleted.
type Attendance struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null"`

	CustomerID   uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerName string    `gorm:"not null"`
	ServiceID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceName  string    `gorm:"not null"`

	Amount float64   `gorm:"type:decimal(10,2);not null"`
	Date   time.Time `gorm:"index;not null"`
	Status string    `gorm:"type:varchar(10)"` // "", "Won" or "Lost"

	gorm.Model
}
