package store

import "time"

// ExportRecord is one row of the export history table. It records metadata
// about a generated document, never the document bytes themselves.
type ExportRecord struct {
	ID          string
	ReportType  string
	Format      string
	Status      string
	FileName    string
	RecordCount int
	ByteSize    int
	DurationMS  int64
	Error       string
	RequestedAt time.Time
}

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)
