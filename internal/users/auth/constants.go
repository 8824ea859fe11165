// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Username Constraints

const (
	// UsernameMinLength is the shortest accepted username, in characters.
	UsernameMinLength = 3

	// UsernameMaxLength is the longest accepted username, in characters.
	UsernameMaxLength = 32
)

// # Messages
//
// Each rejection carries exactly one of these strings as its message.

const (
	MsgMissingUsername      = "Missing username"
	MsgUsernameTooShort     = "Username too short"
	MsgUsernameTooLong      = "Username too long"
	MsgUsernameTaken        = "Account name already in use"
	MsgMissingPassword      = "Missing password"
	MsgMissingConfirmation  = "Missing password confirmation"
	MsgConfirmationMismatch = "Confirmation does not match password"

	MsgAccountNotFound   = "Account does not exist"
	MsgIncorrectPassword = "Incorrect password"
	MsgRegistrationOK    = "Registration Successful"
	MsgLoginOK           = "Login Successful"
)

// # Field Names

const (
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldConfirmation = "confirmation"
)
