// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scrollfeed/internal/users/auth"
	"github.com/taibuivan/scrollfeed/internal/users/password"
)

func post(t *testing.T, handler http.Handler, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(recorder, request)

	var decoded map[string]any
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder, decoded
}

/*
TestHandler_Flow walks register, session, logout and login over HTTP.
*/
func TestHandler_Flow(t *testing.T) {
	f := newFixture(t, nil)
	router := auth.NewHandler(f.service).Routes()

	// 1. Register
	recorder, body := post(t, router, "/register", `{"username":"Bob","password":"Xyz12!ab","confirmation":"Xyz12!ab"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["ok"])
	assert.Equal(t, auth.MsgRegistrationOK, data["message"])
	assert.Equal(t, "Bob", data["username"])

	// 2. Session
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/session", nil))
	assert.JSONEq(t, `{"data":{"username":"Bob","authenticated":true}}`, recorder.Body.String())

	// 3. Logout
	recorder, _ = post(t, router, "/logout", "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	// 4. Wrong password, then the right one
	recorder, body = post(t, router, "/login", `{"username":"Bob","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, auth.MsgIncorrectPassword, body["error"])

	recorder, body = post(t, router, "/login", `{"username":"Bob","password":"Xyz12!ab"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, auth.MsgLoginOK, body["data"].(map[string]any)["message"])
}

/*
TestHandler_RegisterRejections renders the first failing check.
*/
func TestHandler_RegisterRejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"bad_json", `{"username":`, http.StatusBadRequest, "Invalid JSON payload"},
		{"too_short", `{"username":"Bo"}`, http.StatusBadRequest, auth.MsgUsernameTooShort},
		{"policy", `{"username":"Bob","password":"abcdefgh","confirmation":"abcdefgh"}`, http.StatusBadRequest, password.ReasonMissingUppercase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := auth.NewHandler(newFixture(t, nil).service).Routes()

			recorder, body := post(t, router, "/register", tt.body)
			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

/*
TestHandler_ValidatePassword always answers 200.
*/
func TestHandler_ValidatePassword(t *testing.T) {
	router := auth.NewHandler(newFixture(t, nil).service).Routes()

	recorder, body := post(t, router, "/password/validate", `{"password":"Password1!"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, map[string]any{
		"accepted": false,
		"message":  password.ReasonContainsPassword,
	}, body["data"])
}
