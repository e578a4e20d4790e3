// Package source reads classification rows from tab-separated files and
// writes the entity and relationship tables.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/bizonto/pkg/bizonto/internalerr"
)

// Row maps header names to cell values.
type Row map[string]string

// Reader reads rows of a headed TSV file. Cells are trimmed and HTML
// entities or markup found in some exports ("Farm &amp; Ranch",
// "<i>in vitro</i>") are reduced to plain text.
type Reader struct {
	r      *csv.Reader
	header []string
}

// NewReader reads the header line of r.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", internalerr.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
	}
	return &Reader{r: cr, header: header}, nil
}

// Header returns the column names.
func (r *Reader) Header() []string {
	out := make([]string, len(r.header))
	copy(out, r.header)
	return out
}

// Has reports whether the header contains column.
func (r *Reader) Has(column string) bool {
	for _, h := range r.header {
		if strings.EqualFold(h, column) {
			return true
		}
	}
	return false
}

// Next returns the next row, or io.EOF. Short rows leave the missing
// columns empty.
func (r *Reader) Next() (Row, error) {
	for {
		record, err := r.r.Read()
		if err != nil {
			return nil, err
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		row := make(Row, len(r.header))
		for i, h := range r.header {
			if i < len(record) {
				row[h] = cleanCell(record[i])
			} else {
				row[h] = ""
			}
		}
		return row, nil
	}
}

// ReadRows returns the non-empty values of column in file order.
func ReadRows(r io.Reader, column string) ([]string, error) {
	reader, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	name := ""
	for _, h := range reader.header {
		if strings.EqualFold(h, column) {
			name = h
			break
		}
	}
	if name == "" {
		return nil, fmt.Errorf("%w: %q", internalerr.ErrMissingColumn, column)
	}

	var out []string
	for {
		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if v := row[name]; v != "" {
			out = append(out, v)
		}
	}
}

func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case strings.Contains(s, "<"):
		return stripHTML(s)
	case strings.Contains(s, "&"):
		return html.UnescapeString(s)
	}
	return s
}

func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.Join(strings.Fields(buf.String()), " ")
}
