package cli

import (
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/whylang/ast"
	"github.com/robinvdvleuten/whylang/errors"
	"github.com/robinvdvleuten/whylang/loader"
)

type CheckCmd struct {
	File   FileOrStdin `help:"Input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Format string      `help:"Error output format." enum:"pretty,text,json" default:"pretty"`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, reportTelemetry := startTelemetry(ctx, globals, fmt.Sprintf("check %s", filepath.Base(cmd.File.Filename)))
	defer reportTelemetry()

	result, err := cmd.File.Load(runCtx, loader.New())
	if err != nil {
		if result == nil {
			return err
		}

		switch cmd.Format {
		case "json":
			_, _ = fmt.Fprintln(ctx.Stdout, errors.NewJSONFormatter(result.Document).FormatAll([]error{err}))
			return NewCommandError(1)
		case "text":
			_, _ = fmt.Fprintln(ctx.Stderr, errors.NewTextFormatter(result.Document).Format(err))
			return NewCommandError(1)
		}
		return reportError(ctx, result.Document, err, "parse error")
	}

	if cmd.Format == "json" {
		_, _ = fmt.Fprintln(ctx.Stdout, "[]")
		return nil
	}

	operators := 0
	ast.Walk(result.Expression, func(e ast.Expression) bool {
		if _, ok := e.(*ast.Binary); ok {
			operators++
		}
		return true
	})

	printSuccess(ctx.Stdout, fmt.Sprintf("Check passed (%d operators, depth %d)", operators, ast.Depth(result.Expression)))

	return nil
}
