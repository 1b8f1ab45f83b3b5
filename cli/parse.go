package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/robinvdvleuten/whylang/ast"
	"github.com/robinvdvleuten/whylang/loader"
)

type ParseCmd struct {
	File   FileOrStdin `help:"Input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Format string      `help:"Tree output format." enum:"sexpr,infix,repr" default:"sexpr" short:"f"`
	Indent bool        `help:"Start nested s-expressions on their own line."`
	Output string      `help:"Write the tree to this file instead of stdout." short:"o" type:"path"`
	Force  bool        `help:"Overwrite the output file without confirmation." short:"F"`
}

func (cmd *ParseCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, reportTelemetry := startTelemetry(ctx, globals, fmt.Sprintf("parse %s", filepath.Base(cmd.File.Filename)))
	defer reportTelemetry()

	result, err := cmd.File.Load(runCtx, loader.New())
	if err != nil {
		if result == nil {
			return err
		}
		return reportError(ctx, result.Document, err, "parse error")
	}

	var buf bytes.Buffer
	if err := cmd.render(&buf, result.Expression); err != nil {
		return err
	}
	buf.WriteByte('\n')

	if cmd.Output == "" {
		_, err := ctx.Stdout.Write(buf.Bytes())
		return err
	}

	return cmd.writeOutput(ctx, buf.Bytes())
}

func (cmd *ParseCmd) render(buf *bytes.Buffer, expr ast.Expression) error {
	switch cmd.Format {
	case "infix":
		buf.WriteString(expr.String())
	case "repr":
		buf.WriteString(repr.String(expr, repr.Indent("  ")))
	default:
		var opts []ast.SexprOption
		if cmd.Indent {
			opts = append(opts, ast.WithIndent())
		}
		return ast.NewSexprWriter(buf, opts...).WriteExpression(expr)
	}
	return nil
}

// writeOutput writes data to the output file, asking before replacing an
// existing file unless --force is set.
func (cmd *ParseCmd) writeOutput(ctx *kong.Context, data []byte) error {
	if _, err := os.Stat(cmd.Output); err == nil && !cmd.Force {
		confirmed, err := promptYesNo(fmt.Sprintf("File %q already exists. Overwrite it?", cmd.Output))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed {
			return fmt.Errorf("refusing to overwrite %s (use --force)", cmd.Output)
		}
	} else if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to access output file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cmd.Output), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(cmd.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Wrote %s", pathStyle.Render(cmd.Output)))
	return nil
}
