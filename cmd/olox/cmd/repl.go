package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/aemreaydin/olox/internal/ast"
	"github.com/aemreaydin/olox/internal/lexer"
	"github.com/aemreaydin/olox/internal/parser"
)

const replHelp = `
REPL commands:
  :help    Show this help
  :tokens  Toggle token echo for each line
  :quit    Exit the REPL
`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive prompt",
	Long: `repl reads lines from an interactive prompt and runs one scan, parse
and render cycle per line. Lines are independent of each other; nothing
carries over between them.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runREPL())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runREPL drives the interactive loop until EOF or :quit. The returned
// value is the process exit code.
func runREPL() int {
	cfg := loadConfig()
	color := colorEnabled(cfg, os.Stdout)

	banner := "olox " + Version + "\nCtrl+C clears the line, Ctrl+D exits. Type :help for commands."
	fmt.Println(paint(bannerStyle, banner, color))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath := cfg.REPL.HistoryFile; histPath != "" {
		if fh, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(fh)
			_ = fh.Close()
		}
		defer func() {
			if fh, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(fh)
				_ = fh.Close()
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	showTokens := false

	for {
		line, err := ln.Prompt(cfg.REPL.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return exitOK
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		input := strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit", ":q":
				return exitOK
			case ":help":
				fmt.Print(replHelp)
			case ":tokens":
				showTokens = !showTokens
				if showTokens {
					fmt.Println("token echo on")
				} else {
					fmt.Println("token echo off")
				}
			default:
				fmt.Println("unknown command. Type :help for the list.")
			}
			continue
		}

		ln.AppendHistory(input)
		evalLine(input, showTokens, color)
	}
}

// evalLine runs one scan+parse+render cycle over a single line of
// input. Errors surface in their compact one-line form.
func evalLine(src string, showTokens, color bool) {
	sc := lexer.New(src, lexer.WithFilename("<repl>"))
	tokens := sc.ScanTokens()

	if showTokens {
		printTokens(os.Stdout, tokens)
	}

	if len(sc.Errors) > 0 {
		for _, e := range sc.Errors {
			fmt.Fprintln(os.Stderr, paint(errorLineStyle, e.ToDiagnostic().OneLine(), color))
		}
		return
	}

	expr, err := parser.New(tokens).Parse()
	if err != nil {
		var pe *parser.ParseError
		if errors.As(err, &pe) {
			fmt.Fprintln(os.Stderr, paint(errorLineStyle, pe.ToDiagnostic().OneLine(), color))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return
	}

	fmt.Println(ast.Render(expr))
}
