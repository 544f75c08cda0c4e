package ledger

import (
	"time"

	"attendpro-backend/models"
	"attendpro-backend/utils"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SearchCustomers does a case-insensitive substring match on the customer name
// and orders results by name. An empty search returns the whole collection.
func (l *Ledger) SearchCustomers(scope Scope, search string, order SortOrder) ([]models.Customer, error) {
	if !scope.valid() {
		return nil, ErrUnauthorized
	}

	q := l.db.Where("tenant_id = ?", scope.TenantID)
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}

	direction := "ASC"
	if order == SortDesc {
		direction = "DESC"
	}

	var customers []models.Customer
	if err := q.Order("LOWER(name) " + direction).Find(&customers).Error; err != nil {
		return nil, storeErr(err)
	}
	return customers, nil
}

// FilterAttendance returns the records whose date falls inside [start, end],
// compared at day granularity: a record at 00:00 on the start day or 23:59 on
// the end day is in range. An optional case-insensitive substring narrows by
// the captured customer name. Every call reads the latest snapshot.
func (l *Ledger) FilterAttendance(scope Scope, start, end time.Time, search string) ([]models.Attendance, error) {
	if !scope.valid() {
		return nil, ErrUnauthorized
	}

	from := utils.BeginningOfDay(start)
	to := utils.EndOfDay(end)

	q := l.db.Where("tenant_id = ? AND date BETWEEN ? AND ?", scope.TenantID, from, to)
	if search != "" {
		q = q.Where("customer_name ILIKE ?", "%"+search+"%")
	}

	var records []models.Attendance
	if err := q.Order("date DESC").Find(&records).Error; err != nil {
		return nil, storeErr(err)
	}
	return records, nil
}
