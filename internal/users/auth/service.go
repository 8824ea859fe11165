// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements registration, sign-in and sign-out for scrollfeed.

Every check produces the exact message the UI renders, and the first failing
check wins. Rejections are [apperr.AppError] values; [ResultOf] folds an
outcome into the (ok, message) pair shown to the user.

Architecture:

  - Service: Register, Login, Logout and the current identity.
  - Session: the single signed-in username, mirrored to storage.
  - CredentialChecker: how passwords are stored and compared. Plaintext by
    default, bcrypt when configured.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/scrollfeed/internal/platform/apperr"
	"github.com/taibuivan/scrollfeed/internal/platform/validate"
	"github.com/taibuivan/scrollfeed/internal/users/account"
	"github.com/taibuivan/scrollfeed/internal/users/password"
)

// Service implements the account use cases of the feed.
type Service struct {
	accountStore *account.Store
	session      *Session
	credentials  CredentialChecker
	logger       *slog.Logger
}

// NewService constructs a new [Service]. A nil credentials value selects
// [PlainCredentials].
func NewService(store *account.Store, session *Session, credentials CredentialChecker, logger *slog.Logger) *Service {
	if credentials == nil {
		credentials = PlainCredentials{}
	}
	return &Service{
		accountStore: store,
		session:      session,
		credentials:  credentials,
		logger:       logger,
	}
}

// # Registration Flow

// RegisterInput holds the fields of the sign-up form.
type RegisterInput struct {
	Username     string
	Password     string
	Confirmation string
}

/*
Register validates the sign-up form, creates the account and signs it in.

Description: Checks run in a fixed order and stop at the first failure:
username shape, availability, password presence, confirmation, then the
password policy. Nothing is written unless every check passes.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - error: ValidationError or Conflict carrying the UI message, or storage failures
*/
func (service *Service) Register(context context.Context, input RegisterInput) error {

	// ── 1. Username Shape ─────────────────────────────────────────────────

	err := validate.FailFast().
		Required(FieldUsername, input.Username, MsgMissingUsername).
		MinLen(FieldUsername, input.Username, UsernameMinLength, MsgUsernameTooShort).
		MaxLen(FieldUsername, input.Username, UsernameMaxLength, MsgUsernameTooLong).
		Err()
	if err != nil {
		return err
	}

	// ── 2. Availability ───────────────────────────────────────────────────

	if _, exists := service.accountStore.Get(context, input.Username); exists {
		return apperr.Conflict(MsgUsernameTaken)
	}

	// ── 3. Password Fields ────────────────────────────────────────────────

	err = validate.FailFast().
		Required(FieldPassword, input.Password, MsgMissingPassword).
		Required(FieldConfirmation, input.Confirmation, MsgMissingConfirmation).
		Custom(FieldConfirmation, input.Confirmation != input.Password, MsgConfirmationMismatch).
		Err()
	if err != nil {
		return err
	}

	// ── 4. Password Policy ────────────────────────────────────────────────

	if err := password.Validate(input.Password, input.Username).Err(); err != nil {
		return err
	}

	// ── 5. Persist & Sign In ──────────────────────────────────────────────

	sealed, err := service.credentials.Seal(input.Password)
	if err != nil {
		return fmt.Errorf("auth_service_register_failed: %w", err)
	}

	if err := service.accountStore.Save(context, input.Username, account.New(sealed)); err != nil {
		return fmt.Errorf("auth_service_register_failed: %w", err)
	}

	if err := service.session.Establish(context, input.Username); err != nil {
		return fmt.Errorf("auth_service_register_failed: %w", err)
	}

	service.logger.Info("account_registered", slog.String("username", input.Username))
	return nil
}

// # Authentication Flow

// LoginInput holds the fields of the sign-in form.
type LoginInput struct {
	Username string
	Password string
}

/*
Login signs an existing account in.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - error: Unauthorized carrying the UI message, or storage failures
*/
func (service *Service) Login(context context.Context, input LoginInput) error {
	stored, found := service.accountStore.Get(context, input.Username)
	if !found {
		return apperr.Unauthorized(MsgAccountNotFound)
	}

	if !service.credentials.Matches(stored.Password, input.Password) {
		return apperr.Unauthorized(MsgIncorrectPassword)
	}

	if err := service.session.Establish(context, input.Username); err != nil {
		return fmt.Errorf("auth_service_login_failed: %w", err)
	}

	service.logger.Info("account_signed_in", slog.String("username", input.Username))
	return nil
}

// Logout signs the current identity out. Logging out while signed out is a no-op.
func (service *Service) Logout(context context.Context) error {
	if err := service.session.Clear(context); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}
	return nil
}

// CurrentIdentity returns the signed-in username, if any.
func (service *Service) CurrentIdentity() (string, bool) {
	return service.session.Current()
}

// ValidatePassword runs the password policy without registering anything.
func (service *Service) ValidatePassword(candidate, username string) password.Result {
	return password.Validate(candidate, username)
}

// # Results

// Result is the (ok, message) pair rendered next to the sign-in forms.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// ResultOf folds the outcome of Register or Login into a [Result]. A nil err
// yields success; any other error yields its user-facing message.
func ResultOf(err error, success string) Result {
	if err == nil {
		return Result{OK: true, Message: success}
	}
	return Result{OK: false, Message: apperr.MessageOf(err)}
}

// Compile-time assertion that Service can gate the like endpoints.
var _ account.IdentityProvider = (*Service)(nil)
