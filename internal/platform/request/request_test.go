// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scrollfeed/internal/platform/apperr"
	requestutil "github.com/taibuivan/scrollfeed/internal/platform/request"
	"github.com/taibuivan/scrollfeed/internal/platform/validate"
)

/*
TestIntParam reads a chi route parameter and rejects non-integers with a
validation error naming the parameter.
*/
func TestIntParam(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    int
		wantErr bool
	}{
		{"positive", "/posts/7", 7, false},
		{"zero", "/posts/0", 0, false},
		{"negative", "/posts/-2", -2, false},
		{"word", "/posts/seven", 0, true},
		{"decimal", "/posts/1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got    int
				gotErr error
				raw    string
			)

			router := chi.NewRouter()
			router.Get("/posts/{postIndex}", func(writer http.ResponseWriter, request *http.Request) {
				raw = requestutil.Param(request, "postIndex")
				got, gotErr = requestutil.IntParam(request, "postIndex")
			})
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, strings.TrimPrefix(tt.path, "/posts/"), raw)
			if tt.wantErr {
				ae := apperr.As(gotErr)
				require.NotNil(t, ae)
				assert.Equal(t, "postIndex", ae.Details[0].Field)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestDecodeJSON maps malformed bodies to the invalid JSON error.
*/
func TestDecodeJSON(t *testing.T) {
	var target struct {
		Username string `json:"username"`
	}

	ok := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"Bob"}`))
	require.NoError(t, requestutil.DecodeJSON(ok, &target))
	assert.Equal(t, "Bob", target.Username)

	bad := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":`))
	assert.Equal(t, validate.ErrInvalidJSON, requestutil.DecodeJSON(bad, &target))
}
