// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"

	"github.com/taibuivan/scrollfeed/internal/platform/apperr"
	"github.com/taibuivan/scrollfeed/internal/platform/ctxutil"
	"github.com/taibuivan/scrollfeed/internal/platform/respond"
)

// IdentityProvider reports the signed-in username of the running instance.
//
// # Why an interface?
//
// Defining IdentityProvider here keeps middleware free of the users
// packages, and lets tests inject a fixed identity.
type IdentityProvider interface {
	CurrentIdentity() (string, bool)
}

// RequireIdentity blocks requests while nobody is signed in.
//
// # Flow
//  1. Ask the [IdentityProvider] for the current username.
//  2. If absent, abort with HTTP 401 and message.
//  3. Otherwise inject the username with [ctxutil.WithIdentity].
func RequireIdentity(provider IdentityProvider, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			username, ok := provider.CurrentIdentity()
			if !ok {
				respond.Error(writer, request, apperr.Unauthorized(message))
				return
			}

			ctx := ctxutil.WithIdentity(request.Context(), username)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
