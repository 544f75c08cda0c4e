package ledger

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrUnauthorized means no valid tenant scope was supplied. Ledger calls
	// fail closed; there is no default or shared partition.
	ErrUnauthorized = errors.New("unauthorized: no tenant scope")

	// ErrNotFound means the id is absent from the tenant's partition.
	ErrNotFound = errors.New("record not found")

	// ErrStoreUnavailable means the backing store could not be reached.
	// The ledger performs no retries itself.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError reports a missing or unparsable field on create/update.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// storeErr maps driver failures onto the ledger error taxonomy.
func storeErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
