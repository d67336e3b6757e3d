package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/keyflow/keyflow/internal/config"
	"github.com/keyflow/keyflow/internal/theme"
	"github.com/keyflow/keyflow/internal/tui"
)

var (
	// Flag variables
	themeFlag  string
	configFile string
	noPersist  bool
	minimal    bool
)

var rootCmd = &cobra.Command{
	Use:   "keyflow",
	Short: "A terminal typing practice shell",
	Long: `keyflow is a terminal typing practice shell with Solo and Friend
modes and a light/dark theme that follows your OS colour scheme.

The theme preference is persisted between runs. Set it explicitly with
--theme, with the 'theme set' subcommand, or with the 't' key inside
the shell; 'system' follows the operating system.

CONFIGURATION FILE

keyflow can be configured via a TOML file. By default, it looks for
.keyflow/config.toml in the working directory. Use --config to specify
a different path.`,
	Args:              cobra.NoArgs,
	Version:           "0.1.0",
	PersistentPostRun: teardownStore,
	RunE:              runShell,
}

func init() {
	// Assigned here rather than in the literal to avoid an
	// initialization cycle (setupStore refers to rootCmd).
	rootCmd.PersistentPreRunE = setupStore

	rootCmd.AddCommand(newThemeCmd())

	rootCmd.PersistentFlags().StringVarP(&themeFlag, "theme", "t", "", "Theme preference: light, dark, or system (overrides the persisted preference)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file (default: .keyflow/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&noPersist, "no-persist", false, "Keep the theme preference in memory only")
	rootCmd.PersistentFlags().BoolVar(&minimal, "minimal", false, "Print a status line instead of the TUI")
}

// buildConfig resolves the effective configuration from defaults, the
// optional config file, and flags (highest precedence).
func buildConfig() (*config.Config, error) {
	cfg := config.NewConfig()

	var fileConfig *config.FileConfig
	var err error
	if configFile != "" {
		fileConfig, err = config.LoadFileConfigFrom(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configFile, err)
		}
		if fileConfig == nil {
			return nil, fmt.Errorf("config file not found: %s", configFile)
		}
	} else {
		workingDir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		fileConfig, err = config.LoadFileConfig(workingDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}
	fileConfig.Apply(cfg)

	if themeFlag != "" {
		cfg.Theme = themeFlag
	}
	if noPersist {
		cfg.NoPersist = true
	}
	if minimal {
		cfg.Minimal = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// buildStore assembles the theme store from the configured capabilities.
func buildStore(cfg *config.Config, interactive bool) (*theme.Store, error) {
	var storage theme.Storage
	if cfg.NoPersist {
		storage = theme.NewMemStorage()
	} else {
		storage = theme.NewFileStorage(cfg.StatePath)
	}

	var source theme.SystemSource
	if cfg.SchemeFile != "" {
		fileSource, err := theme.NewFileSource(cfg.SchemeFile)
		if err != nil {
			return nil, fmt.Errorf("failed to watch scheme file %s: %w", cfg.SchemeFile, err)
		}
		source = fileSource
	} else {
		scheme, ok := theme.DetectScheme()
		source = theme.NewStaticSource(scheme, ok)
	}

	var surface theme.Surface
	if interactive {
		surface = theme.NewTermSurface(os.Stdout)
	} else {
		surface = theme.NewMemSurface()
	}

	return theme.New(cfg.ThemeOptions(), storage, source, surface), nil
}

// setupStore builds and activates the theme store and scopes it into
// the command context for every subcommand.
func setupStore(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	interactive := cmd == rootCmd && shouldUseTUI()
	store, err := buildStore(cfg, interactive)
	if err != nil {
		return err
	}
	store.Activate()
	applyThemeFlag(store)

	cmd.SetContext(theme.NewContext(cmd.Context(), store))
	return nil
}

// applyThemeFlag pins an explicitly requested preference over whatever
// was persisted. The flag value is already validated by buildConfig.
func applyThemeFlag(store *theme.Store) {
	if themeFlag != "" {
		store.SetTheme(theme.Preference(themeFlag))
	}
}

// teardownStore deactivates the store on every exit path.
func teardownStore(cmd *cobra.Command, args []string) {
	if store, ok := theme.StoreFromContext(cmd.Context()); ok {
		store.Deactivate()
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	store := theme.FromContext(cmd.Context())

	if !shouldUseTUI() {
		printStatusLine(cmd, store.Snapshot())
		return nil
	}

	program := tui.New(store)
	return program.Run()
}

// printStatusLine prints a one-line summary for non-interactive runs.
func printStatusLine(cmd *cobra.Command, state theme.State) {
	out := cmd.OutOrStdout()
	label := color.New(color.FgCyan, color.Bold)
	_, _ = label.Fprint(out, "keyflow")
	_, _ = fmt.Fprintf(out, " theme=%s resolved=%s system=%s\n", state.Theme, state.Resolved, state.System)
}

// shouldUseTUI determines whether to use the TUI based on flags and environment.
func shouldUseTUI() bool {
	// Explicit minimal flag disables TUI
	if minimal {
		return false
	}

	// CI environment disables TUI
	if os.Getenv("CI") != "" {
		return false
	}

	// Non-interactive terminal disables TUI
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}

	return true
}
