package text

import (
	"fmt"
	"io"
	"sync"
)

// Document is a source buffer loaded into memory together with the path it
// came from. The content is never modified after construction, so the line
// map is computed at most once, on first use, and shared by all callers.
type Document struct {
	path    string
	content []byte
	lineMap func() *LineMap
}

// NewDocument creates a Document. The content slice must not be modified
// afterwards.
func NewDocument(path string, content []byte) *Document {
	d := &Document{path: path, content: content}
	d.lineMap = sync.OnceValue(func() *LineMap {
		return ParseLineMap(d.content)
	})
	return d
}

// ReadDocument reads all of r into a new Document.
func ReadDocument(path string, r io.Reader) (*Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return NewDocument(path, content), nil
}

// Path returns the path the document was loaded from.
func (d *Document) Path() string { return d.path }

// Content returns the document text. The slice must not be modified.
func (d *Document) Content() []byte { return d.content }

// LineMap returns the document's line map, parsing it on the first call.
func (d *Document) LineMap() *LineMap { return d.lineMap() }

// Position maps a byte offset to a 0-based line and column.
func (d *Document) Position(offset int) (line, column int) {
	return d.LineMap().MapOffset(offset)
}

// Line returns the content of a 0-based line without its terminator.
func (d *Document) Line(line int) string {
	return d.LineMap().LineBounds(line, d.content).Text(d.content)
}
