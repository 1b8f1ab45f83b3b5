package cli

import (
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/whylang/loader"
	"github.com/robinvdvleuten/whylang/output"
	"github.com/robinvdvleuten/whylang/telemetry"
	"github.com/robinvdvleuten/whylang/tokenizer"
)

// TokensCmd shows lexical tokens from an input file.
type TokensCmd struct {
	File FileOrStdin `help:"Input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

// Run executes the tokens command.
func (cmd *TokensCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, reportTelemetry := startTelemetry(ctx, globals, fmt.Sprintf("tokens %s", filepath.Base(cmd.File.Filename)))
	defer reportTelemetry()

	doc, err := cmd.File.Document(runCtx, loader.New())
	if err != nil {
		return err
	}

	styles := output.NewStyles(ctx.Stdout)
	content := doc.Content()

	timer := telemetry.StartTimer(runCtx, "tokenizer.all")
	defer timer.End()

	count := 0
	defer func() { timer.Measure(len(content), count) }()

	// Format: KIND line:col "text" value
	for tok, err := range tokenizer.New(content).All() {
		if err != nil {
			return reportError(ctx, doc, err, "tokenize error")
		}

		count++
		line, column := position(doc, tok.Span.Start)
		location := fmt.Sprintf("%-7s", fmt.Sprintf("%d:%d", line, column))

		_, _ = fmt.Fprintf(ctx.Stdout, "%s %s %q",
			styleKind(styles, tok.Kind, fmt.Sprintf("%-10s", tok.Kind)),
			styles.Dim(location),
			tok.Text(content))
		if tok.Value.Kind() != tokenizer.NoValue {
			_, _ = fmt.Fprintf(ctx.Stdout, " %#v", tok.Value)
		}
		_, _ = fmt.Fprintln(ctx.Stdout)
	}

	return nil
}

// styleKind colors s according to the token kind it describes.
func styleKind(styles *output.Styles, kind tokenizer.Kind, s string) string {
	switch {
	case kind == tokenizer.NUMBER:
		return styles.Number(s)
	case kind == tokenizer.IDENTIFIER:
		return styles.Identifier(s)
	case kind == tokenizer.KEYWORD:
		return styles.Keyword(s)
	case kind.IsOperator():
		return styles.Operator(s)
	}
	return styles.Warning(s)
}
