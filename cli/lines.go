package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/whylang/loader"
	"github.com/robinvdvleuten/whylang/output"
)

// LinesCmd prints the line map of an input file. Offsets, lines and columns
// are shown 0-based, exactly as the line map reports them.
type LinesCmd struct {
	File    FileOrStdin `help:"Input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Offsets []int       `help:"Byte offsets to map to a line and column." name:"offset" short:"O" sep:","`
}

func (cmd *LinesCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, reportTelemetry := startTelemetry(ctx, globals, fmt.Sprintf("lines %s", filepath.Base(cmd.File.Filename)))
	defer reportTelemetry()

	doc, err := cmd.File.Document(runCtx, loader.New())
	if err != nil {
		return err
	}

	for _, offset := range cmd.Offsets {
		if offset < 0 || offset > len(doc.Content()) {
			return fmt.Errorf("offset %d is outside the input (%d bytes)", offset, len(doc.Content()))
		}
	}

	styles := output.NewStyles(ctx.Stdout)
	lineMap := doc.LineMap()

	breaks := make([]string, 0, len(lineMap.LineBreaks()))
	for _, b := range lineMap.LineBreaks() {
		breaks = append(breaks, strconv.Itoa(b))
	}
	_, _ = fmt.Fprintf(ctx.Stdout, "%s [%s]\n", styles.Keyword("breaks"), strings.Join(breaks, " "))

	content := doc.Content()
	for line := 0; line < lineMap.LineCount(); line++ {
		bounds := lineMap.LineBounds(line, content)
		_, _ = fmt.Fprintf(ctx.Stdout, "%4d %s %q\n",
			line,
			styles.Dim(fmt.Sprintf("%-9s", bounds)),
			bounds.Text(content))
	}

	for _, offset := range cmd.Offsets {
		line, column := lineMap.MapOffset(offset)
		_, _ = fmt.Fprintf(ctx.Stdout, "%s %d -> %d:%d\n", styles.Keyword("offset"), offset, line, column)
	}

	return nil
}
