package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	kferrors "github.com/keyflow/keyflow/internal/errors"
	"github.com/keyflow/keyflow/internal/theme"
)

func newThemeCmd() *cobra.Command {
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and change the theme preference",
		Long: `Inspect and change the persisted theme preference without
launching the shell. With no subcommand, prints the current state.`,
		Args: cobra.NoArgs,
		RunE: runThemeGet,
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Print the current theme state",
		Args:  cobra.NoArgs,
		RunE:  runThemeGet,
	}

	setCmd := &cobra.Command{
		Use:   "set <light|dark|system>",
		Short: "Set the theme preference",
		Args:  cobra.ExactArgs(1),
		RunE:  runThemeSet,
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle",
		Short: "Flip between light and dark",
		Long: `Flip to the opposite of the currently resolved scheme. When the
preference is 'system', toggling pins the explicit opposite of whatever
the system currently resolves to.`,
		Args: cobra.NoArgs,
		RunE: runThemeToggle,
	}

	themeCmd.AddCommand(getCmd, setCmd, toggleCmd)
	return themeCmd
}

func runThemeGet(cmd *cobra.Command, args []string) error {
	store := theme.FromContext(cmd.Context())
	printThemeState(cmd, store.Snapshot())
	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	store := theme.FromContext(cmd.Context())
	pref := theme.Preference(args[0])

	if !theme.ValidPreference(args[0]) {
		return fmt.Errorf("%w: %q", kferrors.ErrUnknownTheme, args[0])
	}
	if !selectable(store, pref) {
		return kferrors.ErrSystemDisabled
	}

	store.SetTheme(pref)
	printThemeState(cmd, store.Snapshot())
	return nil
}

func runThemeToggle(cmd *cobra.Command, args []string) error {
	store := theme.FromContext(cmd.Context())
	store.Toggle()
	printThemeState(cmd, store.Snapshot())
	return nil
}

func selectable(store *theme.Store, pref theme.Preference) bool {
	for _, p := range store.Themes() {
		if p == pref {
			return true
		}
	}
	return false
}

func printThemeState(cmd *cobra.Command, state theme.State) {
	out := cmd.OutOrStdout()
	label := color.New(color.FgCyan, color.Bold)
	value := color.New(color.FgWhite)

	names := make([]string, len(state.Themes))
	for i, p := range state.Themes {
		names[i] = string(p)
	}

	_, _ = label.Fprint(out, "Theme:    ")
	_, _ = value.Fprintln(out, state.Theme)
	_, _ = label.Fprint(out, "System:   ")
	_, _ = value.Fprintln(out, state.System)
	_, _ = label.Fprint(out, "Resolved: ")
	_, _ = value.Fprintln(out, state.Resolved)
	_, _ = label.Fprint(out, "Themes:   ")
	_, _ = value.Fprintln(out, strings.Join(names, ", "))
}
