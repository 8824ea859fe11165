// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taibuivan/scrollfeed/internal/platform/validate"
	"github.com/taibuivan/scrollfeed/internal/users/account"
	"github.com/taibuivan/scrollfeed/pkg/pointer"
)

func likeCmd(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "like <postIndex>",
		Short: "Like a post, or unlike it when already liked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := state.signedIn()
			if err != nil {
				return err
			}

			postIndex, err := strconv.Atoi(args[0])
			if err != nil {
				return validate.RequiredError("post_index", "Post index must be an integer")
			}

			updated, err := state.feed.ToggleLike(cmd.Context(), username, postIndex)
			if err != nil {
				return err
			}

			if updated.HasLiked(postIndex) {
				fmt.Fprintf(cmd.OutOrStdout(), "Liked post %d\n", postIndex)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Unliked post %d\n", postIndex)
			}
			return nil
		},
	}
}

func likesCmd(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "likes",
		Short: "List the liked posts of the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := state.signedIn()
			if err != nil {
				return err
			}

			likes, err := state.feed.Likes(cmd.Context(), username)
			if err != nil {
				return err
			}
			for _, postIndex := range likes {
				fmt.Fprintln(cmd.OutOrStdout(), postIndex)
			}
			return nil
		},
	}
}

// debugDump mirrors what the feed page prints on its debug key.
type debugDump struct {
	CurrentUser    *string           `json:"current_user"`
	CurrentAccount *account.Account  `json:"current_account"`
	Accounts       account.Directory `json:"accounts"`
}

func debugCmd(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Dump the session and every stored account as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dump := debugDump{Accounts: state.accounts.All(cmd.Context())}

			if username, ok := state.auth.CurrentIdentity(); ok {
				dump.CurrentUser = pointer.To(username)
				if current, found := state.accounts.Get(cmd.Context(), username); found {
					dump.CurrentAccount = current
				}
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(dump)
		},
	}
}
