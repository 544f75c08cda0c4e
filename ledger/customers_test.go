package ledger

import (
	"testing"
	"time"

	"attendpro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScope() Scope {
	id := uuid.New()
	return Scope{TenantID: id, UserID: id}
}

func TestNewCustomer(t *testing.T) {
	scope := testScope()
	customer, err := newCustomer(scope, CustomerInput{
		Name:   "Alice",
		Age:    "30",
		Gender: "male",
		Mobile: "123",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, customer.ID)
	assert.Equal(t, scope.TenantID, customer.TenantID)
	assert.Equal(t, "Alice", customer.Name)
	assert.Equal(t, 30, customer.Age)
	assert.Equal(t, models.GenderMale, customer.Gender)
	assert.False(t, customer.JoiningDate.IsZero())
}

func TestNewCustomerKeepsJoiningDate(t *testing.T) {
	joined := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	customer, err := newCustomer(testScope(), CustomerInput{
		Name:        "Bob",
		Age:         "41",
		Gender:      "other",
		Mobile:      "+919876543210",
		JoiningDate: joined,
	})

	require.NoError(t, err)
	assert.Equal(t, joined, customer.JoiningDate)
}

func TestNewCustomerValidation(t *testing.T) {
	valid := CustomerInput{Name: "Alice", Age: "30", Gender: "female", Mobile: "123"}

	tests := []struct {
		name      string
		mutate    func(*CustomerInput)
		wantField string
	}{
		{"missing name", func(in *CustomerInput) { in.Name = "  " }, "name"},
		{"missing age", func(in *CustomerInput) { in.Age = "" }, "age"},
		{"unparsable age", func(in *CustomerInput) { in.Age = "abc" }, "age"},
		{"negative age", func(in *CustomerInput) { in.Age = "-1" }, "age"},
		{"missing gender", func(in *CustomerInput) { in.Gender = "" }, "gender"},
		{"unknown gender", func(in *CustomerInput) { in.Gender = "robot" }, "gender"},
		{"missing mobile", func(in *CustomerInput) { in.Mobile = "" }, "mobile"},
		{"bad mobile", func(in *CustomerInput) { in.Mobile = "bad-phone" }, "mobile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			_, err := newCustomer(testScope(), in)

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.wantField, validation.Field)
		})
	}
}

func TestNormalizeGender(t *testing.T) {
	got, err := normalizeGender("Male")
	require.NoError(t, err)
	assert.Equal(t, models.GenderMale, got)

	got, err = normalizeGender("unspecified")
	require.NoError(t, err)
	assert.Equal(t, models.GenderUnspecified, got)
}

func TestApplyCustomerUpdate(t *testing.T) {
	customer := &models.Customer{Name: "Alice", Age: 30, Gender: models.GenderFemale, Mobile: "123"}

	name := "Alicia"
	age := "31"
	err := applyCustomerUpdate(customer, CustomerUpdate{Name: &name, Age: &age})

	require.NoError(t, err)
	assert.Equal(t, "Alicia", customer.Name)
	assert.Equal(t, 31, customer.Age)
	assert.Equal(t, "123", customer.Mobile)
}

func TestApplyCustomerUpdateRejectsBadAge(t *testing.T) {
	customer := &models.Customer{Name: "Alice", Age: 30}

	age := "many"
	err := applyCustomerUpdate(customer, CustomerUpdate{Age: &age})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "age", validation.Field)
	assert.Equal(t, 30, customer.Age)
}
