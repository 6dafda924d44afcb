package api

import (
	"time"

	"github.com/Bhautik-2004/FMS-sub001/pkg/models/domain"
)

// ExportRequest is the body of POST /api/v1/reports/{type}/export. Rows arrive
// pre-aggregated from the caller and are laid out verbatim.
type ExportRequest struct {
	Parameters domain.ReportParameters `json:"parameters"`
	Rows       []domain.ReportRow      `json:"rows"`
}

type ExportRecord struct {
	ID          string    `json:"id"`
	ReportType  string    `json:"report_type"`
	Format      string    `json:"format"`
	Status      string    `json:"status"`
	FileName    string    `json:"file_name"`
	RecordCount int       `json:"record_count"`
	ByteSize    int       `json:"byte_size"`
	DurationMS  int64     `json:"duration_ms"`
	Error       string    `json:"error,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

// ReportTypeDef describes one entry of the report-type catalog.
type ReportTypeDef struct {
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Formats []string `json:"formats"`
}
