package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aemreaydin/olox/internal/ast"
	"github.com/aemreaydin/olox/internal/diag"
	"github.com/aemreaydin/olox/internal/lexer"
	"github.com/aemreaydin/olox/internal/parser"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Scan and parse a source file",
	Long: `run reads the file, scans and parses it, and prints the expression
tree. Every lexical error found in the pass is reported; a parse is
attempted only on a cleanly scanned file.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runFile(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runFile processes one source file: scan, parse, render. The returned
// value is the process exit code.
func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "olox: cannot read %s: %v\n", path, err)
		return exitIO
	}

	cfg := loadConfig()
	f := newFormatter(cfg)
	f.AddSource(path, string(src))

	sc := lexer.New(string(src), lexer.WithFilename(path))
	tokens := sc.ScanTokens()

	if len(sc.Errors) > 0 {
		f.FormatAll(scanDiagnostics(sc.Errors))
		return exitData
	}

	expr, parseErr := parser.New(tokens).Parse()
	if parseErr != nil {
		var pe *parser.ParseError
		if errors.As(parseErr, &pe) {
			f.Format(pe.ToDiagnostic())
		} else {
			fmt.Fprintln(os.Stderr, parseErr)
		}
		return exitData
	}

	fmt.Println(ast.Render(expr))
	if verbose {
		fmt.Printf("%d tokens, %d nodes\n", len(tokens), ast.Count(expr))
	}
	return exitOK
}

// scanDiagnostics maps collected scan errors onto diagnostics,
// preserving their order.
func scanDiagnostics(errs []lexer.ScanError) []diag.Diagnostic {
	ds := make([]diag.Diagnostic, 0, len(errs))
	for _, e := range errs {
		ds = append(ds, e.ToDiagnostic())
	}
	return ds
}
