package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVBuilder accumulates a flat delimited document: a preamble of quoted
// section lines, a blank separator line, then a single data block with an
// explicit header row. CSV has no styling or footer concept; totals must be
// supplied as ordinary data rows by the caller.
type CSVBuilder struct {
	sections []string
	columns  []string
	rows     [][]string
}

func NewCSVBuilder() *CSVBuilder {
	return &CSVBuilder{}
}

// AddSection queues a preamble line (title, subtitle) emitted before the data
// block. It is not a CSV header.
func (b *CSVBuilder) AddSection(line string) {
	b.sections = append(b.sections, line)
}

// AddData appends rows under the given column order. The first call fixes the
// header; later calls must pass the same column count.
func (b *CSVBuilder) AddData(columns []string, rows [][]string) {
	if b.columns == nil {
		b.columns = columns
	}
	b.rows = append(b.rows, rows...)
}

// Bytes serializes the document.
func (b *CSVBuilder) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	for _, line := range b.sections {
		buf.WriteString(`"` + strings.ReplaceAll(line, `"`, `""`) + `"` + "\n")
	}
	if len(b.sections) > 0 {
		buf.WriteString("\n")
	}

	w := csv.NewWriter(&buf)
	w.UseCRLF = false
	if len(b.columns) > 0 {
		if err := w.Write(b.columns); err != nil {
			return nil, fmt.Errorf("csv header: %w", err)
		}
	}
	for _, row := range b.rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}
	return buf.Bytes(), nil
}
