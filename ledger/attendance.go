package ledger

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"attendpro-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AttendanceInput carries the fields for a check-in. Amount arrives as the raw
// string the caller typed; an unparsable amount is rejected, never coerced.
type AttendanceInput struct {
	CustomerID string
	ServiceID  string
	Amount     string
	Date       time.Time
	Status     string
}

// AttendanceUpdate deliberately carries only amount and status. The captured
// customer and service names are immutable once the record exists, so the
// transaction history stays accurate.
type AttendanceUpdate struct {
	Amount *string
	Status *string
}

// CreateAttendance resolves the referenced customer and category inside the
// tenant's partition and captures their names on the record.
func (l *Ledger) CreateAttendance(scope Scope, in AttendanceInput) (*models.Attendance, error) {
	if !scope.valid() {
		return nil, ErrUnauthorized
	}

	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	status, err := normalizeStatus(in.Status)
	if err != nil {
		return nil, err
	}

	customerID, err := uuid.Parse(in.CustomerID)
	if err != nil {
		return nil, invalidField("customerId", "required")
	}
	customer, err := l.GetCustomer(scope, customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, invalidField("customerId", "unknown customer")
		}
		return nil, err
	}

	serviceID, err := uuid.Parse(in.ServiceID)
	if err != nil {
		return nil, invalidField("serviceId", "required")
	}
	category, err := l.GetCategory(scope, serviceID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, invalidField("serviceId", "unknown service category")
		}
		return nil, err
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	record := &models.Attendance{
		ID:           uuid.New(),
		TenantID:     scope.TenantID,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		ServiceID:    category.ID,
		ServiceName:  category.Name,
		Amount:       amount,
		Date:         date,
		Status:       status,
	}
	if err := l.db.Create(record).Error; err != nil {
		return nil, storeErr(err)
	}

	l.log.Info("attendance marked",
		zap.String("tenant", scope.TenantID.String()),
		zap.String("customer", record.CustomerName),
		zap.Float64("amount", record.Amount))
	return record, nil
}

func (l *Ledger) GetAttendance(scope Scope, id uuid.UUID) (*models.Attendance, error) {
	if !scope.valid() {
		return nil, ErrUnauthorized
	}

	var record models.Attendance
	if err := l.db.Where("tenant_id = ? AND id = ?", scope.TenantID, id).
		First(&record).Error; err != nil {
		return nil, storeErr(err)
	}
	return &record, nil
}

// ListAttendance returns the tenant's attendance records in no guaranteed order.
func (l *Ledger) ListAttendance(scope Scope) ([]models.Attendance, error) {
	if !scope.valid() {
		return nil, ErrUnauthorized
	}

	var records []models.Attendance
	if err := l.db.Where("tenant_id = ?", scope.TenantID).
		Find(&records).Error; err != nil {
		return nil, storeErr(err)
	}
	return records, nil
}

func (l *Ledger) UpdateAttendance(scope Scope, id uuid.UUID, upd AttendanceUpdate) (*models.Attendance, error) {
	record, err := l.GetAttendance(scope, id)
	if err != nil {
		return nil, err
	}

	if err := applyAttendanceUpdate(record, upd); err != nil {
		return nil, err
	}

	if err := l.db.Save(record).Error; err != nil {
		return nil, storeErr(err)
	}
	return record, nil
}

func (l *Ledger) DeleteAttendance(scope Scope, id uuid.UUID) error {
	if !scope.valid() {
		return ErrUnauthorized
	}

	result := l.db.Where("tenant_id = ? AND id = ?", scope.TenantID, id).
		Delete(&models.Attendance{})
	if result.Error != nil {
		return storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func applyAttendanceUpdate(record *models.Attendance, upd AttendanceUpdate) error {
	if upd.Amount != nil {
		amount, err := parseAmount(*upd.Amount)
		if err != nil {
			return err
		}
		record.Amount = amount
	}
	if upd.Status != nil {
		status, err := normalizeStatus(*upd.Status)
		if err != nil {
			return err
		}
		record.Status = status
	}
	return nil
}

func parseAmount(raw string) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, invalidField("amount", "required")
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, invalidField("amount", "must be a number")
	}
	if amount < 0 {
		return 0, invalidField("amount", "must not be negative")
	}
	return amount, nil
}

func normalizeStatus(raw string) (string, error) {
	switch strings.TrimSpace(raw) {
	case "":
		return "", nil
	case models.StatusWon:
		return models.StatusWon, nil
	case models.StatusLost:
		return models.StatusLost, nil
	}
	return "", invalidField("status", "must be Won or Lost")
}
