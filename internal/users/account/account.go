// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account owns the account directory: every registered username and
the credential and liked posts stored with it.

# Architecture

  - Entities: [Account], [Directory].
  - Persistence: the whole directory is one JSON blob, read and rewritten as
    a unit through [DirectoryRepository].
  - Likes: [Service] toggles liked posts for a username and persists the result.

Passwords are stored exactly as handed over by the credential layer. With the
default plain scheme that is the password itself.
*/
package account

import (
	"slices"
)

// # Domain Entities

// Account is a single registered user.
type Account struct {
	// Password is the stored credential as produced at registration.
	Password string `json:"password"`

	// Likes is the set of liked post indices. No duplicates, order irrelevant.
	Likes []int `json:"likes"`
}

// Directory maps case-sensitive usernames to accounts.
type Directory map[string]*Account

// New returns a fresh account with no likes.
func New(password string) *Account {
	return &Account{Password: password, Likes: []int{}}
}

// # Likes

// HasLiked reports whether postIndex is in the liked set.
func (account *Account) HasLiked(postIndex int) bool {
	return slices.Contains(account.Likes, postIndex)
}

// ToggleLike removes postIndex from the liked set when present and adds it
// otherwise. It reports whether the post is liked afterwards.
func (account *Account) ToggleLike(postIndex int) bool {
	if index := slices.Index(account.Likes, postIndex); index != -1 {
		account.Likes = slices.Delete(account.Likes, index, index+1)
		return false
	}
	account.Likes = append(account.Likes, postIndex)
	return true
}

// normalize restores the set invariants on data read from storage: a nil
// slice becomes empty and duplicates are dropped.
func (account *Account) normalize() {
	if account.Likes == nil {
		account.Likes = []int{}
		return
	}
	seen := make(map[int]struct{}, len(account.Likes))
	unique := account.Likes[:0]
	for _, postIndex := range account.Likes {
		if _, dup := seen[postIndex]; dup {
			continue
		}
		seen[postIndex] = struct{}{}
		unique = append(unique, postIndex)
	}
	account.Likes = unique
}

// clone returns a deep copy so callers never share the stored slice.
func (account *Account) clone() *Account {
	likes := slices.Clone(account.Likes)
	if likes == nil {
		likes = []int{}
	}
	return &Account{Password: account.Password, Likes: likes}
}
