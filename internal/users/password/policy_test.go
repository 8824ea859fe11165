// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scrollfeed/internal/platform/apperr"
	"github.com/taibuivan/scrollfeed/internal/users/password"
)

/*
TestValidate_RuleOrder pins the reason reported for each rule, including
inputs that break several rules at once.
*/
func TestValidate_RuleOrder(t *testing.T) {
	tests := []struct {
		name     string
		password string
		identity string
		want     string
	}{
		// Length comes first, whatever the content
		{"empty", "", "", password.ReasonTooShort},
		{"short_and_banned", "qwerty", "", password.ReasonTooShort},
		{"short_but_strong", "Ab1!Ab1", "", password.ReasonTooShort},
		{"too_long", strings.Repeat("aB3!", 33), "", password.ReasonTooLong},
		{"emoji_count_double_over_limit", "aB3" + strings.Repeat("😀", 63), "", password.ReasonTooLong},
		{"emoji_count_double_far_over_limit", "aB3" + strings.Repeat("😀", 65), "", password.ReasonTooLong},

		// Banned substrings, case-insensitive, "password" before "qwerty"
		{"contains_password", "Password1!", "", password.ReasonContainsPassword},
		{"contains_password_upper", "MYPASSWORD1!a", "", password.ReasonContainsPassword},
		{"contains_qwerty", "MyQWERTY12!", "", password.ReasonContainsQwerty},
		{"both_banned", "qwertyPassword1!", "", password.ReasonContainsPassword},

		// Identity overlap runs before the class scan
		{"identity_in_password", "Ab3!ab3!", "ab3", password.ReasonContainsUsername},
		{"identity_in_password_case", "Ab3!ab3!", "AB3", password.ReasonContainsUsername},
		{"banned_before_identity", "Password1!", "zzz", password.ReasonContainsPassword},

		// Class priority: lower, upper, digit, special
		{"only_upper", "ABCDEFGH", "", password.ReasonMissingLowercase},
		{"upper_and_digit", "ABCDEFG1", "", password.ReasonMissingLowercase},
		{"only_lower", "abcdefgh", "", password.ReasonMissingUppercase},
		{"only_digits_and_special", "1234567!", "", password.ReasonMissingLowercase},
		{"no_digit", "Abcdefg!", "", password.ReasonMissingDigit},
		{"no_special", "Abcdefg1", "", password.ReasonMissingSpecial},
		{"space_is_not_special", "Abc def1", "", password.ReasonMissingSpecial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := password.Validate(tt.password, tt.identity)

			assert.False(t, result.Accepted)
			assert.Equal(t, tt.want, result.Reason)
		})
	}
}

/*
TestValidate_UsernameContainsPassword documents the reverse overlap rule:
a password that appears inside the username is rejected even though it
passes every other rule.
*/
func TestValidate_UsernameContainsPassword(t *testing.T) {
	const candidate = "Abcdef1!"

	// Without an identity the password is fine
	require.True(t, password.Validate(candidate, "").Accepted)

	result := password.Validate(candidate, "xxABCDEF1!yy")
	assert.False(t, result.Accepted)
	assert.Equal(t, password.ReasonUsernameContains, result.Reason)
}

/*
TestValidate_Accepts checks passwords that satisfy every rule.
*/
func TestValidate_Accepts(t *testing.T) {
	tests := []struct {
		name     string
		password string
		identity string
	}{
		{"minimal", "Xyz12!ab", ""},
		{"unrelated_identity", "Xyz12!ab", "Bob"},
		{"space_plus_special", "Abc def1!", ""},
		{"non_ascii_is_special", "Abcdefg1é", ""},
		{"max_length", strings.Repeat("aB3!", 32), ""},
		{"max_length_with_emoji", "aB3!" + strings.Repeat("😀", 62), ""},
		{"emoji_reach_minimum", "aB3!😀😀", ""},
		{"identity_ignored_when_empty", "Ab3!ab3!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := password.Validate(tt.password, tt.identity)

			assert.True(t, result.Accepted)
			assert.Equal(t, password.ReasonAcceptable, result.Reason)
			assert.NoError(t, result.Err())
		})
	}
}

/*
TestValidate_ASCIIClasses confirms that letters and digits outside ASCII only
ever count as special characters.
*/
func TestValidate_ASCIIClasses(t *testing.T) {
	// É is not an uppercase letter for the policy
	assert.Equal(t, password.ReasonMissingUppercase, password.Validate("abcdefg1É", "").Reason)

	// ١ (Arabic-Indic one) is not a digit for the policy
	assert.Equal(t, password.ReasonMissingDigit, password.Validate("Abcdefg١", "").Reason)
}

/*
TestValidate_LengthInUTF16Units counts characters outside the Basic
Multilingual Plane as two, so four emoji meet the minimum length.
*/
func TestValidate_LengthInUTF16Units(t *testing.T) {
	result := password.Validate("😀😀😀😀", "")

	assert.NotEqual(t, password.ReasonTooShort, result.Reason)
	assert.Equal(t, password.ReasonMissingLowercase, result.Reason)

	// Three emoji are six units
	assert.Equal(t, password.ReasonTooShort, password.Validate("😀😀😀", "").Reason)
}

/*
TestValidate_ShortAlwaysRejected sweeps every length below the minimum with
content that would otherwise pass.
*/
func TestValidate_ShortAlwaysRejected(t *testing.T) {
	const strong = "Zq9#Zq9#"

	for length := 0; length < password.MinLength; length++ {
		result := password.Validate(strong[:length], "")
		assert.Equal(t, password.ReasonTooShort, result.Reason, "length %d", length)
	}
}

/*
TestValidate_StrongAlwaysAccepted sweeps the allowed length range with
passwords holding every class and no banned word.
*/
func TestValidate_StrongAlwaysAccepted(t *testing.T) {
	const seed = "aB3!"

	for length := password.MinLength; length <= password.MaxLength; length++ {
		candidate := strings.Repeat(seed, length/len(seed)+1)[:length]
		assert.True(t, password.Validate(candidate, "").Accepted, "length %d", length)
	}
}

/*
TestResult_Err maps a rejection onto the validation error taxonomy.
*/
func TestResult_Err(t *testing.T) {
	err := password.Validate("short", "").Err()

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, password.ReasonTooShort, ae.Message)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, "password", ae.Details[0].Field)
}
