// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package commands implements the feedctl command tree.
package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/taibuivan/scrollfeed/internal/platform/apperr"
	"github.com/taibuivan/scrollfeed/internal/platform/config"
	"github.com/taibuivan/scrollfeed/internal/platform/constants"
	"github.com/taibuivan/scrollfeed/internal/platform/ctxutil"
	"github.com/taibuivan/scrollfeed/internal/platform/storage"
	"github.com/taibuivan/scrollfeed/internal/users/account"
	"github.com/taibuivan/scrollfeed/internal/users/auth"
)

// app holds the services one invocation runs against.
type app struct {
	home    string
	backend string
	debug   bool

	storage  *storage.Backend
	accounts *account.Store
	auth     *auth.Service
	feed     *account.Service
}

// NewRoot builds the feedctl command tree.
func NewRoot() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	state := &app{}

	root := &cobra.Command{
		Use:           "feedctl",
		Short:         "Manage scrollfeed accounts, sessions and likes",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.open(cmd)
		},
	}

	root.PersistentFlags().StringVar(&state.home, "home", "", "state dir (default ~/.scrollfeed)")
	root.PersistentFlags().StringVar(&state.backend, "backend", config.BackendFile, "storage backend (file, sqlite, redis, postgres, mongo)")
	root.PersistentFlags().BoolVar(&state.debug, "debug", false, "log storage events to stderr")

	root.AddCommand(
		validateCmd(state),
		registerCmd(state),
		loginCmd(state),
		logoutCmd(state),
		whoamiCmd(state),
		likeCmd(state),
		likesCmd(state),
		debugCmd(state),
	)

	// cobra skips post-run hooks when RunE fails, so each command closes
	// the backend itself.
	for _, sub := range root.Commands() {
		if sub.RunE != nil {
			sub.RunE = state.closing(sub.RunE)
		}
	}
	return root, state
}

// open resolves --home, connects the backend and restores the session.
// A failure after the backend is connected closes it again.
func (state *app) open(cmd *cobra.Command) (err error) {
	defer func() {
		if err != nil {
			state.close()
		}
	}()

	if state.home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		state.home = filepath.Join(dir, "."+constants.AppName)
	}
	if err := os.MkdirAll(state.home, 0o700); err != nil {
		return err
	}

	level := slog.LevelWarn
	if state.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	// Connection URLs and the credential scheme come from the environment,
	// file locations from --home.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.StorageBackend = state.backend
	cfg.StoragePath = filepath.Join(state.home, "storage.json")
	cfg.SQLitePath = filepath.Join(state.home, "storage.db")
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := ctxutil.WithLogger(cmd.Context(), logger)
	cmd.SetContext(ctx)

	state.storage, err = storage.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}

	credentials, err := auth.NewCredentialChecker(cfg.CredentialScheme)
	if err != nil {
		return err
	}

	session := auth.NewSession(state.storage.Store)
	session.Restore(ctx)

	state.accounts = account.NewStore(account.NewKVDirectory(state.storage.Store))
	state.auth = auth.NewService(state.accounts, session, credentials, logger)
	state.feed = account.NewService(state.accounts, logger)
	return nil
}

// closing wraps run so the backend is released however run returns.
func (state *app) closing(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer state.close()
		return run(cmd, args)
	}
}

func (state *app) close() {
	if state.storage != nil {
		state.storage.Close()
		state.storage = nil
	}
}

// signedIn returns the session identity or the rejection shown when absent.
func (state *app) signedIn() (string, error) {
	username, ok := state.auth.CurrentIdentity()
	if !ok {
		return "", apperr.Unauthorized(account.MsgSignInToLike)
	}
	return username, nil
}
