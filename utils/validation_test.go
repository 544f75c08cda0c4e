package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"+919876543210", "123", "9876543210", "+1 (555) 123-4567"}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{"", "abc", "0123456789", "+"}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}
