// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/scrollfeed/internal/platform/apperr"
	"github.com/taibuivan/scrollfeed/internal/platform/ctxutil"
	"github.com/taibuivan/scrollfeed/internal/platform/middleware"
	requestutil "github.com/taibuivan/scrollfeed/internal/platform/request"
	"github.com/taibuivan/scrollfeed/internal/platform/respond"
)

// MsgSignInToLike is returned when a like is attempted without a session.
const MsgSignInToLike = "Sign in to like posts"

// IdentityProvider exposes the identity of the current session.
type IdentityProvider interface {
	CurrentIdentity() (string, bool)
}

// Handler implements the HTTP layer for the feed's like button.
type Handler struct {
	accountService *Service
	identity       IdentityProvider
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service, identity IdentityProvider) *Handler {
	return &Handler{accountService: service, identity: identity}
}

// Routes returns a [chi.Router] configured with the feed endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Every feed endpoint needs a signed-in identity
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireIdentity(handler.identity, MsgSignInToLike))
		r.Get("/likes", handler.listLikes)
		r.Post("/posts/{postIndex}/like", handler.toggleLike)
	})

	return router
}

// likesResponse is the liked set of the session identity.
type likesResponse struct {
	Username string `json:"username"`
	Likes    []int  `json:"likes"`
}

/*
GET /api/v1/feed/likes.

Response:
  - 200: likesResponse
  - 401: Sign in to like posts
*/
func (handler *Handler) listLikes(writer http.ResponseWriter, request *http.Request) {
	username, ok := ctxutil.GetIdentity(request.Context())
	if !ok {
		respond.Error(writer, request, apperr.Unauthorized(MsgSignInToLike))
		return
	}

	likes, err := handler.accountService.Likes(request.Context(), username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, likesResponse{Username: username, Likes: likes})
}

// toggleLikeResponse reports the new state of one post.
type toggleLikeResponse struct {
	PostIndex int   `json:"post_index"`
	Liked     bool  `json:"liked"`
	Likes     []int `json:"likes"`
}

/*
POST /api/v1/feed/posts/{postIndex}/like.

Description: Likes the post, or unlikes it when already liked.

Response:
  - 200: toggleLikeResponse
  - 400: Non-integer or negative post index
  - 401: Sign in to like posts
  - 404: The session names an account that no longer exists
*/
func (handler *Handler) toggleLike(writer http.ResponseWriter, request *http.Request) {
	username, ok := ctxutil.GetIdentity(request.Context())
	if !ok {
		respond.Error(writer, request, apperr.Unauthorized(MsgSignInToLike))
		return
	}

	postIndex, err := requestutil.IntParam(request, "postIndex")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.accountService.ToggleLike(request.Context(), username, postIndex)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, toggleLikeResponse{
		PostIndex: postIndex,
		Liked:     account.HasLiked(postIndex),
		Likes:     account.Likes,
	})
}
