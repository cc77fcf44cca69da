package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Formatter renders diagnostics in a Rust-style format with source
// code snippets and caret underlines.
type Formatter struct {
	out         io.Writer
	color       bool
	sourceCache map[string]string // cache of source text by filename
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithColor toggles styled output. Off by default so piped and
// buffered output stays plain.
func WithColor(on bool) FormatterOption {
	return func(f *Formatter) {
		f.color = on
	}
}

// NewFormatter creates a diagnostic formatter writing to out.
func NewFormatter(out io.Writer, opts ...FormatterOption) *Formatter {
	f := &Formatter{
		out:         out,
		sourceCache: make(map[string]string),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AddSource seeds the source cache, letting the formatter print
// snippets for input that never touched disk.
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

// LoadSource loads source code for a file (cached).
func (f *Formatter) LoadSource(filename string) (string, error) {
	if filename == "" {
		return "", nil
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, nil
}

// Format writes the diagnostic with a source snippet when the source is
// reachable, falling back to the location-only form when it is not.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	src, err := f.LoadSource(d.Span.Filename)
	if err != nil || src == "" || !d.Span.IsValid() {
		if d.Span.IsValid() {
			fmt.Fprintf(f.out, "  --> %s\n", d.Span)
		}
		f.printFooter(d)
		return
	}

	f.printSnippet(src, d)
	f.printFooter(d)
}

// FormatAll writes each diagnostic in order, blank-line separated.
func (f *Formatter) FormatAll(ds []Diagnostic) {
	for i, d := range ds {
		if i > 0 {
			fmt.Fprintln(f.out)
		}
		f.Format(d)
	}
}

// printHeader prints the severity header (error[CODE]: message).
func (f *Formatter) printHeader(d Diagnostic) {
	severity := d.Severity
	if severity == "" {
		severity = SeverityError
	}
	head := string(severity)
	if d.Code != "" {
		head += "[" + string(d.Code) + "]"
	}
	fmt.Fprintf(f.out, "%s: %s\n", f.paint(headerStyle(severity), head), d.Message)
}

// printSnippet prints the span's source line with a caret underline.
// Spans that continue past the line end underline to the end of the
// line only.
func (f *Formatter) printSnippet(src string, d Diagnostic) {
	lines := strings.Split(src, "\n")
	if d.Span.Line > len(lines) {
		fmt.Fprintf(f.out, "  --> %s\n", d.Span)
		return
	}
	lineContent := lines[d.Span.Line-1]
	runes := []rune(lineContent)

	col := d.Span.Column - 1
	width := d.Span.Width()
	if col < 0 {
		col = 0
	}
	if col >= len(runes) {
		col = len(runes)
		width = 1
	} else if col+width > len(runes) {
		width = len(runes) - col
	}

	lineNum := fmt.Sprintf("%d", d.Span.Line)
	pad := strings.Repeat(" ", len(lineNum))
	bar := f.paint(gutterStyle, "|")

	underline := strings.Repeat("^", width)
	if d.Label != "" {
		underline += " " + d.Label
	}

	fmt.Fprintf(f.out, "  --> %s\n", d.Span)
	fmt.Fprintf(f.out, " %s %s\n", pad, bar)
	fmt.Fprintf(f.out, " %s %s %s\n", f.paint(gutterStyle, lineNum), bar, lineContent)
	fmt.Fprintf(f.out, " %s %s %s%s\n", pad, bar, strings.Repeat(" ", col), f.paint(underlineStyle, underline))
	fmt.Fprintf(f.out, " %s %s\n", pad, bar)
}

// printFooter prints notes and help text.
func (f *Formatter) printFooter(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.out, "  = note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(f.out, "help: %s\n", d.Help)
	}
}

func (f *Formatter) paint(style lipgloss.Style, s string) string {
	if !f.color {
		return s
	}
	return style.Render(s)
}
