// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scrollfeed/internal/platform/apperr"
	"github.com/taibuivan/scrollfeed/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "dryden", false},
		{"empty_string", "", true},
		{"whitespace_counts", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("username", tt.value, "Missing username")

			if tt.hasError {
				ae := apperr.As(v.Err())
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, "username", ae.Details[0].Field)
			} else {
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestLength counts UTF-16 code units, not bytes or runes.
*/
func TestLength(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "Bob", 3},
		{"accented", "żółw", 4},
		{"emoji", "😀", 2},
		{"mixed", "ab😀😀", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.Length(tt.value))
		})
	}
}

/*
TestValidator_LengthBounds applies the bounds in UTF-16 units.
*/
func TestValidator_LengthBounds(t *testing.T) {
	// Multi-byte but single-unit characters
	assert.NoError(t, validate.FailFast().MinLen("username", "żółw", 4, "too short").MaxLen("username", "żółw", 4, "too long").Err())

	// Two emoji reach a minimum of 3
	assert.NoError(t, validate.FailFast().MinLen("username", "😀😀", 3, "too short").Err())

	// Two emoji exceed a maximum of 3
	err := validate.FailFast().MaxLen("username", "😀😀", 3, "too long").Err()
	require.Error(t, err)
	assert.Equal(t, "too long", apperr.MessageOf(err))
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "", "Missing username"). // Fails
		MinLen("username", "", 3, "Username too short"). // Fails
		Custom("confirmation", true, "Mismatch").         // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
	assert.Equal(t, "Validation failed", ae.Message)
}

/*
TestValidator_FailFast keeps only the first failure and uses it as the message.
*/
func TestValidator_FailFast(t *testing.T) {
	err := validate.FailFast().
		Required("username", "", "Missing username").
		MinLen("username", "", 3, "Username too short").
		Custom("password", true, "Missing password").
		Err()

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Missing username", ae.Message)
	assert.Len(t, ae.Details, 1)
}

/*
TestValidator_FailFast_Passes returns nil when nothing fails.
*/
func TestValidator_FailFast_Passes(t *testing.T) {
	err := validate.FailFast().
		Required("username", "Xyz", "Missing username").
		MinLen("username", "Xyz", 3, "Username too short").
		MaxLen("username", "Xyz", 32, "Username too long").
		Err()

	assert.NoError(t, err)
}
