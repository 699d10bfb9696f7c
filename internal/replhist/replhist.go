//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package replhist locates the file the REPL's line editor persists its
// history to.
package replhist

import (
	"os"
	"path/filepath"
)

// DefaultPath returns the history file path: $XDG_STATE_HOME/lispy/history,
// falling back to $HOME/.local/state/lispy/history, or "" if neither the
// environment variable nor the user's home directory can be determined (in
// which case the line editor keeps history in memory only for the session).
func DefaultPath() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".local", "state")
	}
	histDir := filepath.Join(dir, "lispy")
	if err := os.MkdirAll(histDir, 0o755); err != nil {
		return ""
	}
	return filepath.Join(histDir, "history")
}
