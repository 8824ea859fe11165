// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/scrollfeed/internal/platform/request"
	"github.com/taibuivan/scrollfeed/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements the sign-in form endpoints.
//
// Rejections are rendered through [respond.Error], so the error envelope's
// "error" field carries the same message the forms display.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST /password/validate : Runs the password policy.
//   - POST /register          : Creates an account and signs it in.
//   - POST /login             : Signs an existing account in.
//   - POST /logout            : Signs out.
//   - GET  /session           : Reports the signed-in identity.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/password/validate", handler.validatePassword)
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Get("/session", handler.session)

	return router
}

// # Request Payloads

type validatePasswordRequest struct {
	Password string `json:"password"`
	Username string `json:"username"`
}

type registerRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// # Response Payloads

type resultResponse struct {
	Result
	Username string `json:"username"`
}

type sessionResponse struct {
	Username      string `json:"username"`
	Authenticated bool   `json:"authenticated"`
}

/*
POST /api/v1/auth/password/validate.

Description: Live feedback for the sign-up form. A rejected password is
still a successful request.

Response:
  - 200: password.Result
  - 400: ErrInvalidJSON
*/
func (handler *Handler) validatePassword(writer http.ResponseWriter, request *http.Request) {
	var input validatePasswordRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, handler.authService.ValidatePassword(input.Password, input.Username))
}

/*
POST /api/v1/auth/register.

Request:
  - Body: registerRequest (Username, Password, Confirmation)

Response:
  - 201: resultResponse
  - 400: First failing form or password policy check
  - 409: Account name already in use
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err := handler.authService.Register(request.Context(), RegisterInput{
		Username:     input.Username,
		Password:     input.Password,
		Confirmation: input.Confirmation,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, resultResponse{
		Result:   ResultOf(nil, MsgRegistrationOK),
		Username: input.Username,
	})
}

/*
POST /api/v1/auth/login.

Request:
  - Body: loginRequest (Username, Password)

Response:
  - 200: resultResponse
  - 401: Account does not exist, or Incorrect password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err := handler.authService.Login(request.Context(), LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, resultResponse{
		Result:   ResultOf(nil, MsgLoginOK),
		Username: input.Username,
	})
}

/*
POST /api/v1/auth/logout.

Response:
  - 204: No Content, also when nobody was signed in
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if err := handler.authService.Logout(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// GET /api/v1/auth/session.
func (handler *Handler) session(writer http.ResponseWriter, _ *http.Request) {
	username, authenticated := handler.authService.CurrentIdentity()
	respond.OK(writer, sessionResponse{Username: username, Authenticated: authenticated})
}
