package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	res := NewResult(FormLogin, []string{"email", "password", "pin_key"})

	assert.True(t, res.OK())
	assert.Equal(t, FormLogin, res.Form())
	assert.Equal(t, []string{"email", "password", "pin_key"}, res.Fields())
	assert.Empty(t, res.Errors())

	res.Set("password", Invalid(ViolationRequiredFieldMissing, "Password is a required field"))
	res.Set("unknown", Invalid(ViolationFormatMismatch, "ignored"))

	assert.False(t, res.OK())
	assert.Equal(t, map[string]string{"password": "Password is a required field"}, res.Errors())
	assert.Equal(t, map[string]Violation{"password": ViolationRequiredFieldMissing}, res.Violations())
	assert.Len(t, res.All(), 3)

	_, ok := res.Get("unknown")
	assert.False(t, ok)

	email, ok := res.Get("email")
	assert.True(t, ok)
	assert.True(t, email.IsValid())
}

func TestResult_FieldsIsACopy(t *testing.T) {
	res := NewResult(FormLogin, []string{"email"})
	fields := res.Fields()
	fields[0] = "changed"

	assert.Equal(t, []string{"email"}, res.Fields())
}
