package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormNameFromString(t *testing.T) {
	tests := []struct {
		in      string
		want    FormName
		wantErr error
	}{
		{in: "Registration", want: FormRegistration},
		{in: "register", want: FormRegistration},
		{in: " LOGIN ", want: FormLogin},
		{in: "profile", wantErr: ErrUnknownForm},
		{in: "", wantErr: ErrUnknownForm},
	}

	for _, tt := range tests {
		got, err := FormNameFromString(tt.in)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestViolationFromRule(t *testing.T) {
	tests := map[string]Violation{
		"required":        ViolationRequiredFieldMissing,
		"notblank":        ViolationRequiredFieldMissing,
		"email":           ViolationFormatMismatch,
		"phone":           ViolationFormatMismatch,
		"runelen":         ViolationLengthOutOfRange,
		"denychars":       ViolationForbiddenCharacter,
		"personname":      ViolationForbiddenCharacter,
		"complexpassword": ViolationComplexityRequirementNotMet,
		"eqcsfield":       ViolationFieldMismatch,
	}

	for tag, want := range tests {
		assert.Equal(t, want, ViolationFromRule(tag), tag)
	}
}

func TestViolation_MarshalText(t *testing.T) {
	b, err := json.Marshal(map[string]Violation{"phone": ViolationFormatMismatch})
	require.NoError(t, err)
	assert.JSONEq(t, `{"phone":"FormatMismatch"}`, string(b))
	assert.Equal(t, "Unknown", Violation(42).String())
}
