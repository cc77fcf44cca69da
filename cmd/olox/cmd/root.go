package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aemreaydin/olox/internal/config"
	"github.com/aemreaydin/olox/internal/diag"
)

// sysexits-style process exit codes.
const (
	exitOK     = 0
	exitData   = 65 // EX_DATAERR: source failed to scan or parse
	exitIO     = 74 // EX_IOERR: input could not be read
	exitConfig = 78 // EX_CONFIG: configuration file was invalid
)

var (
	cfgFile string
	noColor bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "olox [script]",
	Short: "Olox language front end",
	Long: `olox scans and parses Olox source text and prints the resulting
expression tree. Run it with a script to process a file, or without
arguments to get an interactive prompt.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			os.Exit(runFile(args[0]))
		}
		os.Exit(runREPL())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./olox.toml, then the user config dir)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig resolves configuration for the current invocation. A
// config file that exists but cannot be parsed aborts the process.
func loadConfig() *config.Config {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "olox: %v\n", err)
		os.Exit(exitConfig)
	}
	return cfg
}

// colorEnabled resolves the effective color mode for out, honoring the
// --no-color flag ahead of the configured mode.
func colorEnabled(cfg *config.Config, out *os.File) bool {
	if noColor {
		return false
	}
	return cfg.ColorEnabled(isatty.IsTerminal(out.Fd()))
}

// newFormatter builds the stderr diagnostic formatter.
func newFormatter(cfg *config.Config) *diag.Formatter {
	return diag.NewFormatter(os.Stderr, diag.WithColor(colorEnabled(cfg, os.Stderr)))
}
