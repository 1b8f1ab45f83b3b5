package cli

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"github.com/peterh/liner"

	"github.com/robinvdvleuten/whylang/ast"
	"github.com/robinvdvleuten/whylang/output"
	"github.com/robinvdvleuten/whylang/parser"
	"github.com/robinvdvleuten/whylang/text"
	"github.com/robinvdvleuten/whylang/tokenizer"
)

const replHelp = `Enter an expression to evaluate it, or one of:
  :tokens EXPR   show the tokens of EXPR
  :tree EXPR     show the s-expression of EXPR
  :help          show this help
  :quit          leave the prompt`

var replCommands = []string{":help", ":quit", ":tokens ", ":tree "}

type ReplCmd struct {
	History string `help:"History file (defaults to the XDG data directory)." type:"path"`
}

func (cmd *ReplCmd) Run(ctx *kong.Context, globals *Globals) error {
	history := cmd.History
	if history == "" {
		history = filepath.Join(xdg.DataHome, "whylang", "history")
	}

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetCompleter(complete)

	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), 0755); err != nil {
			_, _ = fmt.Fprintln(ctx.Stderr, err)
		}
		if f, err := os.Create(history); err == nil {
			if _, err := line.WriteHistory(f); err != nil {
				_, _ = fmt.Fprintln(ctx.Stderr, err)
			}
			_ = f.Close()
		}
		_ = line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		if _, err := line.ReadHistory(f); err != nil {
			_, _ = fmt.Fprintln(ctx.Stderr, err)
		}
		_ = f.Close()
	}

	session := newReplSession(ctx.Stdout, ctx.Stderr)
	for {
		input, err := line.Prompt("> ")
		if stdErrors.Is(err, io.EOF) || stdErrors.Is(err, liner.ErrPromptAborted) {
			_, _ = fmt.Fprintln(ctx.Stdout)
			return nil
		} else if err != nil {
			return err
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		runCtx, reportTelemetry := startTelemetry(ctx, globals, "eval")
		quit := session.handle(runCtx, input)
		reportTelemetry()
		if quit {
			return nil
		}
	}
}

// complete offers REPL commands and keywords matching the word being typed.
func complete(input string) []string {
	var candidates []string
	if strings.HasPrefix(input, ":") {
		for _, c := range replCommands {
			if strings.HasPrefix(c, input) {
				candidates = append(candidates, c)
			}
		}
		return candidates
	}

	i := strings.LastIndexAny(input, " \t(),+-*/=") + 1
	head, word := input[:i], input[i:]
	if word == "" {
		return nil
	}
	for _, k := range tokenizer.Keywords() {
		if strings.HasPrefix(k, word) {
			candidates = append(candidates, head+k)
		}
	}
	return candidates
}

// replSession evaluates prompt input. It holds no state between lines.
type replSession struct {
	stdout io.Writer
	stderr io.Writer
	styles *output.Styles
}

func newReplSession(stdout, stderr io.Writer) *replSession {
	return &replSession{
		stdout: stdout,
		stderr: stderr,
		styles: output.NewStyles(stdout),
	}
}

// handle processes one line of input and reports whether the session
// should end.
func (s *replSession) handle(ctx context.Context, input string) bool {
	input = strings.TrimSpace(input)
	command, rest, _ := strings.Cut(input, " ")

	switch command {
	case "":
		return false
	case ":quit", ":q":
		return true
	case ":help":
		_, _ = fmt.Fprintln(s.stdout, replHelp)
	case ":tokens":
		s.tokens(rest)
	case ":tree":
		if expr, ok := s.parse(ctx, rest); ok {
			_, _ = fmt.Fprintln(s.stdout, ast.Sexpr(expr))
		}
	default:
		if strings.HasPrefix(command, ":") {
			_, _ = fmt.Fprintf(s.stderr, "unknown command %s, type :help for help\n", command)
			return false
		}
		s.eval(ctx, input)
	}
	return false
}

func (s *replSession) parse(ctx context.Context, input string) (ast.Expression, bool) {
	doc := text.NewDocument(exprName, []byte(input))
	expr, err := parser.ParseBytes(ctx, doc.Path(), doc.Content())
	if err != nil {
		_, _ = fmt.Fprintln(s.stderr, NewErrorRenderer(doc).Render(err))
		return nil, false
	}
	return expr, true
}

func (s *replSession) eval(ctx context.Context, input string) {
	expr, ok := s.parse(ctx, input)
	if !ok {
		return
	}

	value, err := ast.Evaluate(expr)
	if err != nil {
		printError(s.stderr, err.Error())
		return
	}
	_, _ = fmt.Fprintln(s.stdout, s.styles.Number(value.String()))
}

func (s *replSession) tokens(input string) {
	source := []byte(input)
	for tok, err := range tokenizer.New(source).All() {
		if err != nil {
			_, _ = fmt.Fprintln(s.stderr, NewErrorRenderer(text.NewDocument(exprName, source)).Render(err))
			return
		}
		_, _ = fmt.Fprintf(s.stdout, "%s %q\n", styleKind(s.styles, tok.Kind, tok.Kind.String()), tok.Text(source))
	}
}
