// Package cli implements the whylang command-line interface.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/robinvdvleuten/whylang/loader"
	"github.com/robinvdvleuten/whylang/output"
	"github.com/robinvdvleuten/whylang/telemetry"
	"github.com/robinvdvleuten/whylang/text"
)

const stdinName = "<stdin>"

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D7D7", Dark: "#00D7D7"})
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		formatted,
	)
}

// promptYesNo prompts the user with a yes/no question.
// Returns false by default if stdin is not a terminal.
func promptYesNo(question string) (bool, error) {
	if !isTerminal() {
		return false, nil
	}

	var confirm bool

	form := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Value(&confirm)

	err := form.Run()
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	return confirm, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// startTelemetry enables timing collection when --telemetry is set. The
// returned function ends the root timer and prints the report to stderr; it
// is safe to call more than once.
func startTelemetry(ctx *kong.Context, globals *Globals, name string) (context.Context, func()) {
	runCtx := context.Background()
	if !globals.Telemetry {
		return runCtx, func() {}
	}

	collector := telemetry.NewTimingCollector()
	runCtx = telemetry.WithCollector(runCtx, collector)

	root := collector.Start(name)
	runCtx = telemetry.WithRootTimer(runCtx, root)

	var once sync.Once
	return runCtx, func() {
		once.Do(func() {
			root.End()
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
		})
	}
}

// reportError renders err against doc on stderr, followed by a one-line
// summary, and returns the CommandError the command should exit with.
func reportError(ctx *kong.Context, doc *text.Document, err error, summary string) error {
	_, _ = fmt.Fprintln(ctx.Stderr, NewErrorRenderer(doc).Render(err))
	_, _ = fmt.Fprintln(ctx.Stderr)
	printError(ctx.Stderr, summary)
	return NewCommandError(1)
}

// position returns the 1-based line and character column of offset.
func position(doc *text.Document, offset int) (line, column int) {
	line, col := doc.Position(offset)
	return line + 1, utf8.RuneCount(doc.Content()[offset-col:offset]) + 1
}

// FileOrStdin accepts either a file path or "-" for stdin.
// For stdin: Filename="<stdin>", Contents populated.
// For files: Filename set, Contents nil (read by loader).
type FileOrStdin struct {
	Filename string
	Contents []byte
}

// Decode implements kong.MapperValue.
func (f *FileOrStdin) Decode(ctx *kong.DecodeContext) error {
	var filename string
	if err := ctx.Scan.PopValueInto("filename", &filename); err != nil {
		return err
	}

	if filename == "-" || filename == "" {
		return f.readStdin()
	}

	if _, err := os.Stat(filename); err != nil {
		return err
	}
	f.Filename = filename
	f.Contents = nil

	return nil
}

// EnsureContents populates Contents from stdin if Filename is empty.
func (f *FileOrStdin) EnsureContents() error {
	if f.Filename == "" {
		return f.readStdin()
	}
	return nil
}

func (f *FileOrStdin) readStdin() error {
	contents, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read from stdin: %w", err)
	}
	f.Filename = stdinName
	f.Contents = contents
	return nil
}

// Document reads the input without parsing it.
func (f *FileOrStdin) Document(ctx context.Context, ldr *loader.Loader) (*text.Document, error) {
	if f.Filename == stdinName {
		return ldr.LoadBytes(stdinName, f.Contents)
	}
	return ldr.LoadDocument(ctx, f.Filename)
}

// Load reads and parses the input.
func (f *FileOrStdin) Load(ctx context.Context, ldr *loader.Loader) (*loader.Result, error) {
	if f.Filename == stdinName {
		return ldr.LoadReader(ctx, stdinName, bytes.NewReader(f.Contents))
	}
	return ldr.Load(ctx, f.Filename)
}
