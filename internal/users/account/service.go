// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/taibuivan/scrollfeed/internal/platform/apperr"
	"github.com/taibuivan/scrollfeed/internal/platform/validate"
)

// # Messages

const (
	MsgNegativePostIndex = "Post index must not be negative"
	fieldPostIndex       = "post_index"
)

// # Service Layer

// Service manages the liked-post set of each account.
type Service struct {
	store  *Store
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(store *Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

/*
ToggleLike flips the liked state of postIndex for username and persists it.

Parameters:
  - context: context.Context
  - username: string
  - postIndex: int (position of the post in the feed)

Returns:
  - *Account: The updated account
  - error: apperr.NotFound for unknown accounts, validation or storage failures
*/
func (service *Service) ToggleLike(context context.Context, username string, postIndex int) (*Account, error) {
	// ── 1. Input ──────────────────────────────────────────────────────────

	if err := validate.FailFast().Custom(fieldPostIndex, postIndex < 0, MsgNegativePostIndex).Err(); err != nil {
		return nil, err
	}

	// ── 2. Load ───────────────────────────────────────────────────────────

	account, found := service.store.Get(context, username)
	if !found {
		return nil, apperr.NotFound("Account")
	}

	// ── 3. Mutate & Persist ───────────────────────────────────────────────

	liked := account.ToggleLike(postIndex)
	if err := service.store.Save(context, username, account); err != nil {
		return nil, fmt.Errorf("account_service_toggle_like_failed: %w", err)
	}

	service.logger.Debug("post_like_toggled",
		slog.String("username", username),
		slog.Int("post_index", postIndex),
		slog.Bool("liked", liked),
	)

	return account, nil
}

// Likes returns the liked post indices of username in ascending order.
func (service *Service) Likes(context context.Context, username string) ([]int, error) {
	account, found := service.store.Get(context, username)
	if !found {
		return nil, apperr.NotFound("Account")
	}

	likes := slices.Clone(account.Likes)
	slices.Sort(likes)
	return likes, nil
}

// IsLiked reports whether username has liked postIndex. Unknown accounts
// have liked nothing.
func (service *Service) IsLiked(context context.Context, username string, postIndex int) bool {
	account, found := service.store.Get(context, username)
	return found && account.HasLiked(postIndex)
}
