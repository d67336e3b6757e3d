package tui

import "github.com/keyflow/keyflow/internal/theme"

// ThemeMsg carries a theme store snapshot into the event loop.
type ThemeMsg theme.State
