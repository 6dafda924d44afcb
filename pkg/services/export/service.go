package export

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Bhautik-2004/FMS-sub001/pkg/models/domain"
	"github.com/Bhautik-2004/FMS-sub001/pkg/models/store"
	"github.com/Bhautik-2004/FMS-sub001/pkg/reports"
	"github.com/Bhautik-2004/FMS-sub001/pkg/store/sqlite/history"
)

// Service compiles report documents and records an export history entry for
// every attempt. History writes are best-effort: a failed audit write is
// logged and never fails the export itself.
type Service interface {
	Export(
		ctx context.Context,
		reportType domain.ReportType,
		format domain.ReportFormat,
		rows []domain.ReportRow,
		params domain.ReportParameters,
	) (domain.Document, error)
	History(ctx context.Context, limit int) ([]store.ExportRecord, error)
}

type exportService struct {
	history history.Store
}

func NewService(historyStore history.Store) Service {
	return &exportService{history: historyStore}
}

func (s *exportService) Export(
	ctx context.Context,
	reportType domain.ReportType,
	format domain.ReportFormat,
	rows []domain.ReportRow,
	params domain.ReportParameters,
) (domain.Document, error) {
	logger := zerolog.Ctx(ctx)
	requestedAt := time.Now()

	started := time.Now()
	doc, err := reports.Generate(reportType, format, rows, params)
	elapsed := time.Since(started)

	record := store.ExportRecord{
		ID:          uuid.NewString(),
		ReportType:  string(reportType),
		Format:      string(format),
		DurationMS:  elapsed.Milliseconds(),
		RequestedAt: requestedAt,
	}
	if err != nil {
		record.Status = store.StatusFailed
		record.Error = err.Error()
	} else {
		record.Status = store.StatusCompleted
		record.FileName = doc.FileName
		record.RecordCount = doc.RecordCount
		record.ByteSize = len(doc.Data)
	}

	s.record(ctx, record)

	if err != nil {
		return domain.Document{}, err
	}

	logger.Info().
		Str("report_type", string(reportType)).
		Str("format", string(format)).
		Int("records", doc.RecordCount).
		Int("bytes", len(doc.Data)).
		Dur("elapsed", elapsed).
		Msg("report exported")

	return doc, nil
}

func (s *exportService) History(ctx context.Context, limit int) ([]store.ExportRecord, error) {
	return s.history.List(ctx, limit)
}

func (s *exportService) record(ctx context.Context, record store.ExportRecord) {
	if s.history == nil {
		return
	}
	if err := s.history.Add(ctx, record); err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str("report_type", record.ReportType).
			Msg("failed to record export history")
	}
}
