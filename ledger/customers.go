package ledger

import (
	"strconv"
	"strings"
	"time"

	"attendpro-backend/models"
	"attendpro-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerInput carries the fields for creating a customer. Age arrives as the
// raw string the caller typed; parsing failures surface as ValidationError
// rather than being coerced.
type CustomerInput struct {
	Name            string
	Age             string
	Gender          string
	Mobile          string
	Email           string
	Address         string
	JoiningDate     time.Time
	ProfileImageRef string
}

// CustomerUpdate holds a partial update; nil fields are left untouched.
type CustomerUpdate struct {
	Name            *string
	Age             *string
	Gender          *string
	Mobile          *string
	Email           *string
	Address         *string
	JoiningDate     *time.Time
	ProfileImageRef *string
}

func (l *Ledger) CreateCustomer(scope Scope, in CustomerInput) (*models.Customer, error) {
	if !scope.valid() {
		return nil, ErrUnauthorized
	}

	customer, err := newCustomer(scope, in)
	if err != nil {
		return nil, err
	}

	if err := l.db.Create(customer).Error; err != nil {
		return nil, storeErr(err)
	}

	l.log.Info("customer created",
		zap.String("tenant", scope.TenantID.String()),
		zap.String("customer", customer.ID.String()))
	return customer, nil
}

func (l *Ledger) GetCustomer(scope Scope, id uuid.UUID) (*models.Customer, error) {
	if !scope.valid() {
		return nil, ErrUnauthorized
	}

	var customer models.Customer
	if err := l.db.Where("tenant_id = ? AND id = ?", scope.TenantID, id).
		First(&customer).Error; err != nil {
		return nil, storeErr(err)
	}
	return &customer, nil
}

// ListCustomers returns the tenant's customers in no guaranteed order.
func (l *Ledger) ListCustomers(scope Scope) ([]models.Customer, error) {
	if !scope.valid() {
		return nil, ErrUnauthorized
	}

	var customers []models.Customer
	if err := l.db.Where("tenant_id = ?", scope.TenantID).
		Find(&customers).Error; err != nil {
		return nil, storeErr(err)
	}
	return customers, nil
}

func (l *Ledger) CountCustomers(scope Scope) (int64, error) {
	if !scope.valid() {
		return 0, ErrUnauthorized
	}

	var count int64
	if err := l.db.Model(&models.Customer{}).
		Where("tenant_id = ?", scope.TenantID).
		Count(&count).Error; err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}

func (l *Ledger) UpdateCustomer(scope Scope, id uuid.UUID, upd CustomerUpdate) (*models.Customer, error) {
	customer, err := l.GetCustomer(scope, id)
	if err != nil {
		return nil, err
	}

	if err := applyCustomerUpdate(customer, upd); err != nil {
		return nil, err
	}

	if err := l.db.Save(customer).Error; err != nil {
		return nil, storeErr(err)
	}
	return customer, nil
}

// DeleteCustomer removes the customer only. Attendance records that captured
// this customer's name are left as they are and keep contributing to
// analytics under that name.
func (l *Ledger) DeleteCustomer(scope Scope, id uuid.UUID) error {
	if !scope.valid() {
		return ErrUnauthorized
	}

	result := l.db.Where("tenant_id = ? AND id = ?", scope.TenantID, id).
		Delete(&models.Customer{})
	if result.Error != nil {
		return storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func newCustomer(scope Scope, in CustomerInput) (*models.Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalidField("name", "required")
	}
	age, err := parseAge(in.Age)
	if err != nil {
		return nil, err
	}
	gender, err := normalizeGender(in.Gender)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Mobile) == "" {
		return nil, invalidField("mobile", "required")
	}
	if !utils.ValidatePhone(in.Mobile) {
		return nil, invalidField("mobile", "invalid phone number format")
	}

	joining := in.JoiningDate
	if joining.IsZero() {
		joining = time.Now()
	}

	return &models.Customer{
		ID:              uuid.New(),
		TenantID:        scope.TenantID,
		Name:            strings.TrimSpace(in.Name),
		Age:             age,
		Gender:          gender,
		Mobile:          in.Mobile,
		Email:           in.Email,
		Address:         in.Address,
		JoiningDate:     joining,
		ProfileImageRef: in.ProfileImageRef,
	}, nil
}

func applyCustomerUpdate(customer *models.Customer, upd CustomerUpdate) error {
	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return invalidField("name", "required")
		}
		customer.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Age != nil {
		age, err := parseAge(*upd.Age)
		if err != nil {
			return err
		}
		customer.Age = age
	}
	if upd.Gender != nil {
		gender, err := normalizeGender(*upd.Gender)
		if err != nil {
			return err
		}
		customer.Gender = gender
	}
	if upd.Mobile != nil {
		if !utils.ValidatePhone(*upd.Mobile) {
			return invalidField("mobile", "invalid phone number format")
		}
		customer.Mobile = *upd.Mobile
	}
	if upd.Email != nil {
		customer.Email = *upd.Email
	}
	if upd.Address != nil {
		customer.Address = *upd.Address
	}
	if upd.JoiningDate != nil {
		customer.JoiningDate = *upd.JoiningDate
	}
	if upd.ProfileImageRef != nil {
		customer.ProfileImageRef = *upd.ProfileImageRef
	}
	return nil
}

func parseAge(raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, invalidField("age", "required")
	}
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, invalidField("age", "must be a whole number")
	}
	if age < 0 {
		return 0, invalidField("age", "must not be negative")
	}
	return age, nil
}

func normalizeGender(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case models.GenderMale:
		return models.GenderMale, nil
	case models.GenderFemale:
		return models.GenderFemale, nil
	case models.GenderOther:
		return models.GenderOther, nil
	case models.GenderUnspecified:
		return models.GenderUnspecified, nil
	}
	if strings.TrimSpace(raw) == "" {
		return "", invalidField("gender", "required")
	}
	return "", invalidField("gender", "must be male, female, other or unspecified")
}
