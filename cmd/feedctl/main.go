// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command feedctl drives the scrollfeed account system from a terminal.
//
// State lives under --home (default ~/.scrollfeed) in the same key layout
// the API server uses, so both can share one storage.json.
package main

import (
	"fmt"
	"os"

	"github.com/taibuivan/scrollfeed/cmd/feedctl/commands"
	"github.com/taibuivan/scrollfeed/internal/platform/apperr"
)

func main() {
	if err := commands.NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, apperr.MessageOf(err))
		os.Exit(1)
	}
}
