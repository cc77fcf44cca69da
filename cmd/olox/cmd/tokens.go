package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aemreaydin/olox/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Scan a script and dump its token stream",
	Long: `tokens scans a script and prints every token the scanner produced,
comments included, one per line with its source position and literal
payload. Lexical errors are reported after the dump.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(dumpTokens(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

// dumpTokens scans path and prints the full token stream. The returned
// value is the process exit code.
func dumpTokens(path string) int {
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

	printTokens(os.Stdout, tokens)

	if len(sc.Errors) > 0 {
		f.FormatAll(scanDiagnostics(sc.Errors))
		return exitData
	}
	return exitOK
}

// printTokens writes one line per token: position, kind, quoted lexeme
// and, when the scanner materialized one, the literal payload.
func printTokens(w io.Writer, tokens []lexer.Token) {
	for _, tok := range tokens {
		pos := fmt.Sprintf("%d:%d", tok.Span.Line, tok.Span.Column)
		if tok.Literal.IsAbsent() {
			fmt.Fprintf(w, "%-8s %-10s %q\n", pos, tok.Type, tok.Lexeme)
			continue
		}
		fmt.Fprintf(w, "%-8s %-10s %q -> %s\n", pos, tok.Type, tok.Lexeme, tok.Literal)
	}
}
