// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scrollfeed/internal/platform/apperr"
)

/*
TestAs_TraversesWrappedChain verifies that rejections survive fmt.Errorf wrapping.
*/
func TestAs_TraversesWrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("auth_service_login_failed: %w", apperr.Unauthorized("Incorrect password"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
	assert.Equal(t, http.StatusUnauthorized, ae.HTTPStatus)
	assert.True(t, apperr.IsAppError(wrapped))
}

/*
TestMessageOf hides causes that are not part of the taxonomy.
*/
func TestMessageOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"conflict", apperr.Conflict("Account name already in use"), "Account name already in use"},
		{"not_found", apperr.NotFound("Account"), "Account not found"},
		{"raw_error", errors.New("dial tcp: connection refused"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.MessageOf(tt.err))
		})
	}
}

/*
TestInternal_KeepsCause ensures the cause is reachable for logging.
*/
func TestInternal_KeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := apperr.Internal(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
}
