// Package main implements colormixer, a terminal utility that blends two
// palette colors and names them in English or Russian.
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/sdahlbac/colormixer/colormix"
)

// Application constants
const (
	// ExitCodeSuccess indicates successful program execution
	ExitCodeSuccess = 0
	// ExitCodeError indicates an error occurred during execution
	ExitCodeError = 1

	// Environment variables
	EnvLanguage = "COLORMIXER_LANG"
	EnvDebug    = "DEBUG"
)

// Application errors
var (
	ErrUnknownColor = errors.New("unknown color")
)

// cliFlags holds the values bound to the root command's flags.
type cliFlags struct {
	lang       string
	first      string
	second     string
	configPath string
}

// main is the entry point of the application
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitCodeError)
	}
}

// run executes the command tree
func run() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	cmd := &cobra.Command{
		Use:   "colormixer",
		Short: "Pick two palette colors and see their blend",
		Long: `colormixer shows two colors picked from a fixed palette
(Red, Green, Blue, Yellow, Purple) and the color halfway between them.
Labels can be switched between English and Russian.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}
			return runTUI(settings)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.lang, "lang", "", "label language: en or ru")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config.toml")
	cmd.Flags().StringVar(&flags.first, "first", "", "initial first color (palette name)")
	cmd.Flags().StringVar(&flags.second, "second", "", "initial second color (palette name)")

	cmd.AddCommand(
		paletteCmd(flags),
		mixCmd(flags),
		nameCmd(flags),
	)

	return cmd
}

func paletteCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the palette colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}

			out := termenv.NewOutput(cmd.OutOrStdout())
			for _, e := range colormix.Entries() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-12s %s\n",
					termSwatch(out, e.Color), e.Name(settings.Language), e.Color.Hex())
			}
			return nil
		},
	}
}

func mixCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mix FIRST SECOND",
		Short: "Print the midpoint blend of two colors",
		Long: `Print the midpoint blend of two colors.
Colors are palette names in either language (e.g. Red, Синий) or hex codes.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}

			a, err := resolveColor(args[0])
			if err != nil {
				return err
			}
			b, err := resolveColor(args[1])
			if err != nil {
				return err
			}

			mixed := colormix.Midpoint(a, b)
			lang := settings.Language
			out := termenv.NewOutput(cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "%s + %s = %s %s (%s)\n",
				colormix.NameFor(a, lang),
				colormix.NameFor(b, lang),
				termSwatch(out, mixed),
				mixed.Hex(),
				colormix.NameFor(mixed, lang))
			return nil
		},
	}
}

func nameCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "name HEX",
		Short: "Print the palette name of a hex color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}

			c, err := colormix.ParseHex(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), colormix.NameFor(c, settings.Language))
			return nil
		},
	}
}

// loadSettings reads the config file and applies flags that were set explicitly.
func loadSettings(cmd *cobra.Command, flags *cliFlags) (Settings, error) {
	cfg, err := LoadConfig(flags.configPath)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("lang") {
		cfg.Language = flags.lang
	}
	if cmd.Flags().Changed("first") {
		cfg.First = flags.first
	}
	if cmd.Flags().Changed("second") {
		cfg.Second = flags.second
	}

	return cfg.Settings()
}

// resolveColor accepts a palette name in either language or a hex code.
func resolveColor(arg string) (colormix.Color, error) {
	if e, ok := colormix.ByName(arg); ok {
		return e.Color, nil
	}
	c, err := colormix.ParseHex(arg)
	if err != nil {
		return colormix.Color{}, fmt.Errorf("%w: %q is neither a palette name nor a hex code", ErrUnknownColor, arg)
	}
	return c, nil
}

// runTUI starts the interactive mixer
func runTUI(settings Settings) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	defer closeLog()

	app := NewApp(settings, logger)

	program := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI application: %w", err)
	}

	return nil
}
