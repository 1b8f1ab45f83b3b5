package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robinvdvleuten/whylang/errors"
	"github.com/robinvdvleuten/whylang/text"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// ErrorRenderer renders errors with terminal styling and source context.
type ErrorRenderer struct {
	doc *text.Document
}

// NewErrorRenderer creates a renderer resolving error locations against doc.
func NewErrorRenderer(doc *text.Document) *ErrorRenderer {
	return &ErrorRenderer{doc: doc}
}

// Render formats a single error with styling and context.
func (r *ErrorRenderer) Render(err error) string {
	d, ok := errors.Locate(r.doc, err)
	if !ok {
		return errorStyle.Render(err.Error())
	}

	var buf strings.Builder

	location := fmt.Sprintf("%s:%d:%d", d.Path, d.Line, d.Column)
	buf.WriteString(pathStyle.Render(location))
	buf.WriteString(": ")
	buf.WriteString(errorStyle.Render(d.Message))
	buf.WriteString("\n\n")

	padding, marker := d.Caret()
	buf.WriteString("   ")
	buf.WriteString(errContextStyle.Render(d.Source))
	buf.WriteString("\n   ")
	buf.WriteString(padding)
	buf.WriteString(errCaretStyle.Render(marker))

	return buf.String()
}

// RenderAll formats multiple errors, separating them with blank lines.
func (r *ErrorRenderer) RenderAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var buf strings.Builder
	for i, err := range errs {
		buf.WriteString(r.Render(err))

		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}

	return buf.String()
}
