package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Bhautik-2004/FMS-sub001/pkg/models/store"
)

// Store persists export history records. Only metadata is stored, the
// generated document bytes never touch the database.
type Store interface {
	Add(ctx context.Context, record store.ExportRecord) error
	List(ctx context.Context, limit int) ([]store.ExportRecord, error)
}

type historyStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &historyStore{db: db}, nil
}

func (h *historyStore) Add(ctx context.Context, record store.ExportRecord) error {
	query := `
		INSERT INTO export_history (
			id, report_type, format, status, file_name,
			record_count, byte_size, duration_ms, error, requested_at
		) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		)`

	_, err := h.db.ExecContext(ctx, query,
		record.ID,
		record.ReportType,
		record.Format,
		record.Status,
		record.FileName,
		record.RecordCount,
		record.ByteSize,
		record.DurationMS,
		record.Error,
		record.RequestedAt,
	)
	if err != nil {
		return fmt.Errorf("insert export record: %w", err)
	}
	return nil
}

func (h *historyStore) List(ctx context.Context, limit int) ([]store.ExportRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, report_type, format, status, file_name,
			record_count, byte_size, duration_ms, error, requested_at
		FROM export_history
		ORDER BY requested_at DESC
		LIMIT ?
	`
	rows, err := h.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query export history: %w", err)
	}
	defer rows.Close()
	return scanExportRows(rows)
}

func scanExportRows(rows *sql.Rows) ([]store.ExportRecord, error) {
	records := make([]store.ExportRecord, 0)
	for rows.Next() {
		var (
			r           store.ExportRecord
			fileName    sql.NullString
			errMsg      sql.NullString
			requestedAt time.Time
		)
		if err := rows.Scan(
			&r.ID,
			&r.ReportType,
			&r.Format,
			&r.Status,
			&fileName,
			&r.RecordCount,
			&r.ByteSize,
			&r.DurationMS,
			&errMsg,
			&requestedAt,
		); err != nil {
			return nil, err
		}
		r.FileName = fileName.String
		r.Error = errMsg.String
		r.RequestedAt = requestedAt
		records = append(records, r)
	}
	return records, rows.Err()
}
