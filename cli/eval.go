package cli

import (
	stdErrors "errors"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/whylang/ast"
	"github.com/robinvdvleuten/whylang/output"
	"github.com/robinvdvleuten/whylang/parser"
	"github.com/robinvdvleuten/whylang/text"
)

const exprName = "<expr>"

type EvalCmd struct {
	Expression string `help:"Expression to evaluate, e.g. '40 + 2 * 3'." arg:""`
	Places     int32  `help:"Round the result to this many decimal places (negative keeps full precision)." default:"-1"`
}

func (cmd *EvalCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, reportTelemetry := startTelemetry(ctx, globals, "eval")
	defer reportTelemetry()

	doc := text.NewDocument(exprName, []byte(cmd.Expression))
	expr, err := parser.ParseBytes(runCtx, doc.Path(), doc.Content())
	if err != nil {
		return reportError(ctx, doc, err, "parse error")
	}

	value, err := ast.Evaluate(expr)
	if stdErrors.Is(err, ast.ErrDivisionByZero) {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	} else if err != nil {
		return err
	}

	result := value.String()
	if cmd.Places >= 0 {
		result = value.StringFixed(cmd.Places)
	}

	_, _ = fmt.Fprintln(ctx.Stdout, output.NewStyles(ctx.Stdout).Number(result))
	return nil
}
