package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	date, ok := IsValidDate("2025-01-15")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, 15, date.Day())

	_, ok = IsValidDate("15/01/2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestIsValidUUID(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidUUID("0193e4a2-5b7c-4d3e-8f1a-9b2c3d4e5f60"))
	assert.True(t, IsValidUUID("0193E4A2-5B7C-4D3E-8F1A-9B2C3D4E5F60"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestValidationErrorsToMap(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "email", Message: "invalid email format"},
		{Field: "date_start", Message: "must be YYYY-MM-DD"},
	}

	assert.Equal(t, "email: invalid email format; date_start: must be YYYY-MM-DD", errs.Error())
	assert.Equal(t, map[string]string{
		"email":      "invalid email format",
		"date_start": "must be YYYY-MM-DD",
	}, errs.ToMap())
}
