package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("w42"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("worker@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2025-03-10")
	assert.True(t, ok)
	assert.Equal(t, "2025-03-10", d.Format("2006-01-02"))

	_, ok = IsValidDate("10-03-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "worker_id", Message: "worker_id is required"},
		{Field: "password", Message: "password is required"},
	}

	assert.Equal(t, "worker_id: worker_id is required; password: password is required", errs.Error())
	assert.Equal(t, map[string]string{
		"worker_id": "worker_id is required",
		"password":  "password is required",
	}, errs.ToMap())
}
