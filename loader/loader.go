// Package loader reads source files into documents and parses them into
// expression trees.
//
// Example usage:
//
//	ldr := loader.New(loader.WithMaxBytes(1 << 20))
//	result, err := ldr.Load(ctx, "input.why")
//	if err != nil {
//		// err is a read error or a *parser.ParseError
//	}
//	fmt.Println(result.Expression)
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/robinvdvleuten/whylang/ast"
	"github.com/robinvdvleuten/whylang/parser"
	"github.com/robinvdvleuten/whylang/telemetry"
	"github.com/robinvdvleuten/whylang/text"
)

// DefaultMaxBytes is the input size limit used when none is configured.
const DefaultMaxBytes = 16 << 20

// ErrTooLarge is returned when an input exceeds the configured size limit.
var ErrTooLarge = errors.New("input too large")

// Loader reads and parses source files.
//
// Configure the loader using functional options passed to New:
//
//	loader := New(WithMaxBytes(1024))
type Loader struct {
	// MaxBytes is the largest input accepted, in bytes. Zero or less
	// disables the limit.
	MaxBytes int64
}

// Option configures how files are loaded.
type Option func(*Loader)

// WithMaxBytes limits the size of loaded inputs. n <= 0 removes the limit.
func WithMaxBytes(n int64) Option {
	return func(l *Loader) {
		l.MaxBytes = n
	}
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{MaxBytes: DefaultMaxBytes}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Result is a loaded document together with the expression parsed from it.
type Result struct {
	// Root is the absolute path of the loaded file, or the name given to
	// LoadReader.
	Root       string
	Document   *text.Document
	Expression ast.Expression
}

// Load reads filename and parses its single expression. A parse failure
// returns the *parser.ParseError together with a Result holding the
// document, so callers can render the error against the source.
func (l *Loader) Load(ctx context.Context, filename string) (*Result, error) {
	doc, err := l.LoadDocument(ctx, filename)
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for %s: %w", filename, err)
	}

	return l.parse(ctx, root, doc)
}

// LoadReader reads r under the given name and parses its single expression.
func (l *Loader) LoadReader(ctx context.Context, name string, r io.Reader) (*Result, error) {
	doc, err := l.readDocument(ctx, name, r)
	if err != nil {
		return nil, err
	}
	return l.parse(ctx, name, doc)
}

// LoadDocument reads filename without parsing it.
func (l *Loader) LoadDocument(ctx context.Context, filename string) (*text.Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	defer func() { _ = f.Close() }()

	return l.readDocument(ctx, filename, f)
}

// LoadBytes wraps data in a document, enforcing the size limit.
func (l *Loader) LoadBytes(name string, data []byte) (*text.Document, error) {
	if l.MaxBytes > 0 && int64(len(data)) > l.MaxBytes {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)", name, ErrTooLarge, l.MaxBytes)
	}
	return text.NewDocument(name, data), nil
}

func (l *Loader) readDocument(ctx context.Context, name string, r io.Reader) (*text.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timer := telemetry.StartTimer(ctx, fmt.Sprintf("load %s", filepath.Base(name)))
	defer timer.End()

	if l.MaxBytes > 0 {
		// One extra byte tells an input at the limit apart from one over it.
		r = io.LimitReader(r, l.MaxBytes+1)
	}

	doc, err := text.ReadDocument(name, r)
	if err != nil {
		return nil, err
	}
	timer.Measure(len(doc.Content()), 0)
	return l.LoadBytes(name, doc.Content())
}

func (l *Loader) parse(ctx context.Context, root string, doc *text.Document) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Root: root, Document: doc}
	expr, err := parser.ParseBytes(ctx, doc.Path(), doc.Content())
	if err != nil {
		return result, err
	}
	result.Expression = expr
	return result, nil
}
