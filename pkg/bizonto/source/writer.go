package source

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cognicore/bizonto/pkg/bizonto/internalerr"
)

// Table headers for the emitted files.
var (
	ConceptHeader   = []string{"id", "label", "kind", "domain", "source", "related"}
	StatementHeader = []string{"task_id", "verb", "object", "preposition", "complement", "source"}
)

// Writer emits a headed TSV table.
type Writer struct {
	w      *csv.Writer
	fields int
	rows   int
}

// NewWriter writes header to w and returns a writer for the rows.
func NewWriter(w io.Writer, header []string) (*Writer, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: empty header", internalerr.ErrInvalidInput)
	}
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return &Writer{w: cw, fields: len(header)}, nil
}

// Write appends one row. The row must have one value per header column.
func (w *Writer) Write(values ...string) error {
	if len(values) != w.fields {
		return fmt.Errorf("%w: row has %d fields, header has %d", internalerr.ErrInvalidInput, len(values), w.fields)
	}
	if err := w.w.Write(values); err != nil {
		return err
	}
	w.rows++
	return nil
}

// Rows returns the number of rows written, excluding the header.
func (w *Writer) Rows() int {
	return w.rows
}

// Flush writes buffered rows and reports any write error.
func (w *Writer) Flush() error {
	w.w.Flush()
	return w.w.Error()
}
