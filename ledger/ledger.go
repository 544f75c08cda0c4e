// Package ledger implements the tenant-scoped customer, service category and
// attendance collections, the range/search queries over them, and the
// analytics view derived from attendance records.
package ledger

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Ledger struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Ledger {
	return &Ledger{db: db, log: log}
}
