package ledger

import (
	"strings"

	"attendpro-backend/models"

	"github.com/google/uuid"
)

func (l *Ledger) CreateCategory(scope Scope, name string) (*models.ServiceCategory, error) {
	if !scope.valid() {
		return nil, ErrUnauthorized
	}
	if strings.TrimSpace(name) == "" {
		return nil, invalidField("name", "required")
	}

	category := &models.ServiceCategory{
		ID:       uuid.New(),
		TenantID: scope.TenantID,
		Name:     strings.TrimSpace(name),
	}
	if err := l.db.Create(category).Error; err != nil {
		return nil, storeErr(err)
	}
	return category, nil
}

func (l *Ledger) GetCategory(scope Scope, id uuid.UUID) (*models.ServiceCategory, error) {
	if !scope.valid() {
		return nil, ErrUnauthorized
	}

	var category models.ServiceCategory
	if err := l.db.Where("tenant_id = ? AND id = ?", scope.TenantID, id).
		First(&category).Error; err != nil {
		return nil, storeErr(err)
	}
	return &category, nil
}

func (l *Ledger) ListCategories(scope Scope) ([]models.ServiceCategory, error) {
	if !scope.valid() {
		return nil, ErrUnauthorized
	}

	var categories []models.ServiceCategory
	if err := l.db.Where("tenant_id = ?", scope.TenantID).
		Find(&categories).Error; err != nil {
		return nil, storeErr(err)
	}
	return categories, nil
}

// RenameCategory changes the category name for future attendance records only.
// Records created under the old name keep it.
func (l *Ledger) RenameCategory(scope Scope, id uuid.UUID, name string) (*models.ServiceCategory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalidField("name", "required")
	}

	category, err := l.GetCategory(scope, id)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(name)
	if err := l.db.Save(category).Error; err != nil {
		return nil, storeErr(err)
	}
	return category, nil
}

// DeleteCategory does not touch attendance records created under this
// category's name.
func (l *Ledger) DeleteCategory(scope Scope, id uuid.UUID) error {
	if !scope.valid() {
		return ErrUnauthorized
	}

	result := l.db.Where("tenant_id = ? AND id = ?", scope.TenantID, id).
		Delete(&models.ServiceCategory{})
	if result.Error != nil {
		return storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
