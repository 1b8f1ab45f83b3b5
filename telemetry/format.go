package telemetry

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/robinvdvleuten/whylang/output"
)

// slowOperation marks timings that are highlighted in styled reports.
const slowOperation = 100 * time.Millisecond

// formatTimingTree writes a pass and its nested passes as an outline:
//
//	parse input.why: 3ms
//	├─ load input.why: 1ms (1.2 KiB)
//	└─ parser.parse input.why: 2ms (1.2 KiB, 340 tokens)
func formatTimingTree(w io.Writer, root *pass, styles *output.Styles) {
	name := root.name
	if styles != nil {
		name = styles.Keyword(name)
	}
	_, _ = fmt.Fprintf(w, "%s: %s%s\n", name, formatDuration(root.elapsed()), formatInput(root))

	for i, p := range root.nested {
		formatNode(w, p, "", i == len(root.nested)-1, styles)
	}
}

func formatNode(w io.Writer, p *pass, prefix string, isLast bool, styles *output.Styles) {
	duration := p.elapsed()

	branch, extension := "├─ ", "│  "
	if isLast {
		branch, extension = "└─ ", "   "
	}

	if styles != nil {
		timing := styles.Timing(formatDuration(duration), duration >= slowOperation)
		_, _ = fmt.Fprintf(w, "%s%s: %s%s\n", styles.Dim(prefix+branch), p.name, timing, styles.Dim(formatInput(p)))
	} else {
		_, _ = fmt.Fprintf(w, "%s%s%s: %s%s\n", prefix, branch, p.name, formatDuration(duration), formatInput(p))
	}

	for i, child := range p.nested {
		formatNode(w, child, prefix+extension, i == len(p.nested)-1, styles)
	}
}

// formatInput describes the input measured on p, or returns "" if nothing
// was measured.
func formatInput(p *pass) string {
	var parts []string
	if p.bytes > 0 {
		parts = append(parts, humanize.IBytes(uint64(p.bytes)))
	}
	switch {
	case p.tokens == 1:
		parts = append(parts, "1 token")
	case p.tokens > 1:
		parts = append(parts, fmt.Sprintf("%s tokens", humanize.Comma(int64(p.tokens))))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// formatDuration shows milliseconds below one second and seconds above.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
