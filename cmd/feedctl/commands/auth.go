// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/scrollfeed/internal/users/auth"
)

func validateCmd(state *app) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "validate <password>",
		Short: "Check a password against the policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := state.auth.ValidatePassword(args[0], username)
			if err := result.Err(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Reason)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username the password must not overlap with")
	return cmd
}

func registerCmd(state *app) *cobra.Command {
	var password, confirmation string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create an account and sign in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			err := state.auth.Register(cmd.Context(), auth.RegisterInput{
				Username:     username,
				Password:     password,
				Confirmation: confirmation,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, auth.MsgRegistrationOK)
			fmt.Fprintf(out, "Thank you for signing up, %s\n", username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "new password")
	cmd.Flags().StringVarP(&confirmation, "confirm", "c", "", "password confirmation")
	return cmd
}

func loginCmd(state *app) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Sign in to an existing account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			err := state.auth.Login(cmd.Context(), auth.LoginInput{Username: username, Password: password})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, auth.MsgLoginOK)
			fmt.Fprintf(out, "Thank you for signing in, %s\n", username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func logoutCmd(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.auth.Logout(cmd.Context())
		},
	}
}

func whoamiCmd(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the signed-in username",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, ok := state.auth.CurrentIdentity()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), username)
			return nil
		},
	}
}
